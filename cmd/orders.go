package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"

	"github.com/kellerb/depot/renderer"
)

// ordersCmd holds the flags for the 'orders' subcommand.
type ordersCmd struct{}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list the orders parsed from the documents folder" }
func (*ordersCmd) Usage() string {
	return `dpc orders [-documents <dir>]

  Scans the documents folder, parses every order confirmation, and lists the
  resulting orders. Same-day orders on the same instrument are shown merged,
  exactly as the reports consume them.
`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := OpenRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Orders(slices.Collect(repo.Orders(""))))
	fmt.Fprintf(os.Stderr, "%d orders on %d instruments, %s\n", repo.Len(), len(repo.ISINs()), repo.Range())
	return subcommands.ExitSuccess
}
