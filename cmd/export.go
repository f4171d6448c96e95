package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/kellerb/depot"
	"github.com/kellerb/depot/renderer"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	outputDir string
}

func (*exportCmd) Name() string { return "export" }
func (*exportCmd) Synopsis() string {
	return "export each instrument's priced daily series as CSV"
}
func (*exportCmd) Usage() string {
	return `dpc export [-documents <dir>] [-o <dir>]

  Writes one CSV file per instrument, <ISIN>.csv, with the daily share count,
  cost basis, close and end-of-day value. The files are meant for plotting.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", ".", "Directory to write the CSV files into")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := OpenRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	quoter := NewQuoter()
	defer quoter.Close()

	report, err := depot.NewReport(repo, quoter, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory %q: %v\n", c.outputDir, err)
		return subcommands.ExitFailure
	}

	for _, inst := range report.Instruments {
		name := filepath.Join(c.outputDir, inst.ISIN+".csv")
		if err := c.write(name, inst); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting %s: %v\n", inst.ISIN, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Exported %s\n", name)
	}
	return subcommands.ExitSuccess
}

func (c *exportCmd) write(name string, inst *depot.InstrumentReport) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return renderer.CSV(f, inst)
}
