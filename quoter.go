package depot

import "github.com/kellerb/depot/date"

// Quoter supplies external market data for an instrument. Implementations
// return a close-price history already expanded to daily granularity over the
// requested range, indexed on the same calendar the timelines use.
type Quoter interface {
	// Prices returns the daily close prices of the instrument covering rng.
	Prices(isin string, rng date.Range) (*date.History[float64], error)
	// Name returns a display name for the instrument, used for labeling only.
	Name(isin string) (string, error)
}
