package depot

import (
	"iter"

	"github.com/kellerb/depot/date"
)

// Timeline is the sparse running position of one instrument: one point per
// trade date, carrying cumulative shares and the average cost basis after
// that trade.
type Timeline struct {
	ISIN   string
	shares date.History[float64] // cumulative shares at each trade date
	basis  date.History[float64] // running average cost basis at each trade date
}

// Inception returns the date of the first trade.
func (t *Timeline) Inception() date.Date {
	day, _ := t.shares.First()
	return day
}

// Position returns the shares held and the cost basis as of a day, carrying
// the last trade forward. It returns false for days strictly before the first
// trade: the instrument did not exist in the account then.
func (t *Timeline) Position(day date.Date) (shares, basis float64, ok bool) {
	shares, ok = t.shares.ValueAsOf(day)
	if !ok {
		return 0, 0, false
	}
	basis, _ = t.basis.ValueAsOf(day)
	return shares, basis, true
}

// Point is one day of a daily position series.
type Point struct {
	Day       date.Date
	Shares    float64
	CostBasis float64
}

// DailySeries is a position series with one point per calendar day, from the
// instrument's first trade (or the start of the requested range, whichever is
// later) to the end of the range. Days before the first trade have no point.
type DailySeries struct {
	ISIN   string
	points []Point // contiguous daily points
}

// Daily reconciles the sparse trade events against the daily calendar of rng:
// each day gets the most recent position at or before it. Shares are
// monotonically non-decreasing since the model is purchase-only.
func (t *Timeline) Daily(rng date.Range) *DailySeries {
	s := &DailySeries{ISIN: t.ISIN}
	for day := range rng.Days() {
		shares, basis, ok := t.Position(day)
		if !ok {
			continue
		}
		s.points = append(s.points, Point{Day: day, Shares: shares, CostBasis: basis})
	}
	return s
}

// Len returns the number of days in the series.
func (s *DailySeries) Len() int { return len(s.points) }

// At returns the point of a given day. It returns false for days outside the
// series, in particular any day before the instrument's first trade.
func (s *DailySeries) At(day date.Date) (Point, bool) {
	if len(s.points) == 0 {
		return Point{}, false
	}
	i := day.Sub(s.points[0].Day) // points are one per day, contiguous
	if i < 0 || i >= len(s.points) {
		return Point{}, false
	}
	return s.points[i], true
}

// Points returns an iterator over the series in chronological order.
func (s *DailySeries) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range s.points {
			if !yield(p) {
				return
			}
		}
	}
}

// Overview sums instrument series into the account-wide history: for every
// day of rng, the end-of-day value (shares × close) and the invested amount
// (shares × cost basis) added up across instruments. A day absent from an
// instrument's series contributes zero to both sums; this is the one place
// absence deliberately means zero instead of propagating.
func Overview(rng date.Range, series []*DailySeries, prices map[string]*date.History[float64]) (value, invested *date.History[float64]) {
	value = new(date.History[float64])
	invested = new(date.History[float64])
	for day := range rng.Days() {
		var v, inv float64
		for _, s := range series {
			pt, ok := s.At(day)
			if !ok {
				continue
			}
			inv += pt.Shares * pt.CostBasis
			if quotes := prices[s.ISIN]; quotes != nil {
				if px, ok := quotes.ValueAsOf(day); ok {
					v += pt.Shares * px
				}
			}
		}
		value.Append(day, v)
		invested.Append(day, inv)
	}
	return value, invested
}
