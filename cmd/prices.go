package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kellerb/depot"
	"github.com/kellerb/depot/date"
)

// pricesCmd holds the flags for the 'prices' subcommand.
type pricesCmd struct {
	from string
	to   string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "fetch the daily close history for an instrument" }
func (*pricesCmd) Usage() string {
	return `dpc prices [-from <date>] [-to <date>] <ISIN>

  Fetches the daily close series for one instrument from Börse Frankfurt and
  prints it. Days without trading carry the previous close forward.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First day of the range (defaults to 30 days ago)")
	f.StringVar(&c.to, "to", "", "Last day of the range (defaults to today)")
}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one ISIN argument\n")
		return subcommands.ExitUsageError
	}
	isin := f.Arg(0)
	if err := depot.ValidateISIN(isin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	rng, err := c.parseRange()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	quoter := NewQuoter()
	defer quoter.Close()

	name, err := quoter.Name(isin)
	if err != nil {
		name = isin
	}
	quotes, err := quoter.Prices(isin, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s (%s) %s\n", name, isin, rng)
	for day, px := range quotes.Values() {
		fmt.Printf("%s %s\n", day, depot.Eur(px))
	}
	return subcommands.ExitSuccess
}

func (c *pricesCmd) parseRange() (date.Range, error) {
	from, to := date.Today().Add(-30), date.Today()
	var err error
	if c.from != "" {
		if from, err = date.Parse(c.from); err != nil {
			return date.Range{}, err
		}
	}
	if c.to != "" {
		if to, err = date.Parse(c.to); err != nil {
			return date.Range{}, err
		}
	}
	return date.NewRange(from, to)
}
