// Package cmd implements the CLI application to rebuild a depot's history
// from order confirmation documents.
package cmd

import (
	"flag"
	"os"
	"runtime"

	"github.com/google/subcommands"

	"github.com/kellerb/depot"
	"github.com/kellerb/depot/boerse"
	"github.com/kellerb/depot/document"
)

// Register the subcommands.
// A main package calls Register() to declare subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&ordersCmd{}, "documents")

	c.Register(&reportCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&pricesCmd{}, "market data")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var documentsDir = flag.String("documents", "documents", "Path to the folder containing order confirmation PDFs")
var workers = flag.Int("workers", runtime.NumCPU(), "Number of documents to extract in parallel")
var mic = flag.String("mic", boerse.DefaultMIC, "Market identifier code to quote prices from")

// OpenRepository runs the ingestion stage on the documents folder: scan,
// extract, parse, aggregate. Any unreadable document fails the whole run.
func OpenRepository() (*depot.Repository, error) {
	orders, err := document.ParseDirectory(*documentsDir, *workers)
	if err != nil {
		return nil, err
	}
	orders, err = depot.Aggregate(orders)
	if err != nil {
		return nil, err
	}
	return depot.NewRepository(orders)
}

// NewQuoter returns the price source for reports. The endpoint and request
// salt can be overridden through the environment, mostly for tests.
func NewQuoter() *boerse.Client {
	return boerse.NewClient(os.Getenv("BOERSE_BASE_URL"), os.Getenv("BOERSE_SALT"), *mic)
}
