package date

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range [from, to], or an error if to is before from.
func NewRange(from, to Date) (Range, error) {
	if to.Before(from) {
		return Range{}, fmt.Errorf("invalid range: %s is before %s", to, from)
	}
	return Range{From: from, To: to}, nil
}

// Contains reports whether day is included in the range (boundaries included).
func (r Range) Contains(day Date) bool { return !day.Before(r.From) && !day.After(r.To) }

// Len returns the number of calendar days in the range, boundaries included.
func (r Range) Len() int {
	n := 0
	for d := r.From; !d.After(r.To); d = d.Add(1) {
		n++
	}
	return n
}

// Days returns an iterator over every calendar day in the range, in
// chronological order, boundaries included. This is the daily grid that
// sparse histories are reconciled against.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// String formats the range in its standard "from..to" form.
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
