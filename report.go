package depot

import (
	"fmt"
	"log"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/kellerb/depot/date"
)

// InstrumentReport carries everything a consumer needs to plot one
// instrument: the display title, the invested-history series and the external
// price series. An explicit structure, so downstream rendering never guesses
// at keys.
type InstrumentReport struct {
	ISIN    string
	Name    string
	Series  *DailySeries
	Prices  *date.History[float64]
	Summary Summary
}

// Report is the full output of the pipeline over one repository.
type Report struct {
	Range       date.Range
	Instruments []*InstrumentReport

	// Account-wide overview, populated when requested: end-of-day value and
	// invested amount summed across instruments.
	Value    *date.History[float64]
	Invested *date.History[float64]
}

// Summary condenses one instrument's position at the end of the range.
type Summary struct {
	Invested   float64 // cumulative amount paid
	Value      float64 // end-of-day value at the last day
	Gain       float64 // Value - Invested
	GainRatio  float64 // Gain / Invested
	Volatility float64 // annualized from daily close returns
}

// NewReport runs the reporting stage: one timeline per instrument, expanded
// over the repository's global range, priced through the quoter.
func NewReport(r *Repository, q Quoter, overview bool) (*Report, error) {
	rng := r.Range()
	report := &Report{Range: rng}

	series := make([]*DailySeries, 0, len(r.ISINs()))
	prices := make(map[string]*date.History[float64])

	for _, isin := range r.ISINs() {
		tl, err := r.Timeline(isin)
		if err != nil {
			return nil, err
		}
		daily := tl.Daily(rng)

		quotes, err := q.Prices(isin, rng)
		if err != nil {
			return nil, fmt.Errorf("pricing %s: %w", isin, err)
		}

		name, err := q.Name(isin)
		if err != nil {
			// The name only labels the report; a lookup failure must not
			// fail a run whose numbers are complete.
			log.Printf("no display name for %s (using the ISIN): %v", isin, err)
			name = isin
		}

		report.Instruments = append(report.Instruments, &InstrumentReport{
			ISIN:    isin,
			Name:    name,
			Series:  daily,
			Prices:  quotes,
			Summary: newSummary(rng, daily, quotes),
		})
		series = append(series, daily)
		prices[isin] = quotes
	}

	if overview {
		report.Value, report.Invested = Overview(rng, series, prices)
	}
	return report, nil
}

// tradingDaysPerYear annualizes daily return volatility.
const tradingDaysPerYear = 252

func newSummary(rng date.Range, s *DailySeries, quotes *date.History[float64]) Summary {
	var sum Summary

	pt, ok := s.At(rng.To)
	if !ok {
		return sum
	}
	sum.Invested = pt.Shares * pt.CostBasis
	if px, ok := quotes.ValueAsOf(rng.To); ok {
		sum.Value = pt.Shares * px
	}
	sum.Gain = sum.Value - sum.Invested
	if sum.Invested != 0 {
		sum.GainRatio = sum.Gain / sum.Invested
	}

	var returns []float64
	prev := math.NaN()
	for _, px := range quotes.Values() {
		if !math.IsNaN(prev) && prev != 0 {
			returns = append(returns, px/prev-1)
		}
		prev = px
	}
	if len(returns) >= 2 {
		if sd, err := stats.StandardDeviationSample(returns); err == nil {
			sum.Volatility = sd * math.Sqrt(tradingDaysPerYear)
		}
	}
	return sum
}
