package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kellerb/depot"
	"github.com/kellerb/depot/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	outputFile string
	overview   bool
	pretty     bool
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "display the depot's reconstructed daily history, priced at market"
}
func (*reportCmd) Usage() string {
	return `dpc report [-documents <dir>] [-o <file>] [-overview] [-pretty]

  Rebuilds every instrument's daily position from the order confirmations,
  prices it through Börse Frankfurt, and renders a markdown report.

Usage Examples:
# Render the report for the terminal.
$ dpc report -pretty

# Write the raw markdown to a file.
$ dpc report -o report.md
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Write the markdown report to a file instead of stdout")
	f.BoolVar(&c.overview, "overview", true, "Include the account-wide overview section")
	f.BoolVar(&c.pretty, "pretty", false, "Render markdown for the terminal")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := OpenRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	quoter := NewQuoter()
	defer quoter.Close()

	report, err := depot.NewReport(repo, quoter, c.overview)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	md := renderer.Markdown(report)

	switch {
	case c.outputFile != "":
		if err := os.WriteFile(c.outputFile, []byte(md), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", c.outputFile)
	case c.pretty:
		printMarkdown(md)
	default:
		fmt.Print(md)
	}
	return subcommands.ExitSuccess
}
