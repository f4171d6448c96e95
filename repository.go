package depot

import (
	"fmt"
	"iter"
	"sort"

	"github.com/kellerb/depot/date"
)

// Repository holds the aggregated orders of the whole account, in
// chronological order. It is built once and read-only thereafter.
type Repository struct {
	orders []Order  // sorted by day ascending, ties in insertion order
	isins  []string // distinct instruments, sorted
}

// NewRepository builds a repository from aggregated orders.
//
// An empty order set is an error, not a silently empty report.
func NewRepository(orders []Order) (*Repository, error) {
	if len(orders) == 0 {
		return nil, ErrEmptyPortfolio
	}

	sorted := make([]Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Day.Before(sorted[j].Day) })

	seen := make(map[string]bool)
	isins := make([]string, 0)
	for _, o := range sorted {
		if !seen[o.ISIN] {
			seen[o.ISIN] = true
			isins = append(isins, o.ISIN)
		}
	}
	sort.Strings(isins)

	return &Repository{orders: sorted, isins: isins}, nil
}

// Len returns the number of orders held.
func (r *Repository) Len() int { return len(r.orders) }

// Orders returns an iterator over all orders in chronological order,
// optionally filtered to one instrument (empty isin means all).
func (r *Repository) Orders(isin string) iter.Seq[Order] {
	return func(yield func(Order) bool) {
		for _, o := range r.orders {
			if isin != "" && o.ISIN != isin {
				continue
			}
			if !yield(o) {
				return
			}
		}
	}
}

// Oldest returns the execution date of the earliest order.
func (r *Repository) Oldest() date.Date { return r.orders[0].Day }

// Newest returns the execution date of the latest order.
func (r *Repository) Newest() date.Date { return r.orders[len(r.orders)-1].Day }

// Range returns the global [Oldest, Newest] range. All instrument timelines
// are built over this shared calendar so they can be summed day by day.
func (r *Repository) Range() date.Range { return date.Range{From: r.Oldest(), To: r.Newest()} }

// ISINs returns the distinct instruments held, sorted.
func (r *Repository) ISINs() []string {
	out := make([]string, len(r.isins))
	copy(out, r.isins)
	return out
}

// Timeline computes the running position of one instrument: cumulative shares
// and average cost basis at each of its trade dates.
func (r *Repository) Timeline(isin string) (*Timeline, error) {
	t := &Timeline{ISIN: isin}
	var cumShares, cumTotal float64
	for o := range r.Orders(isin) {
		cumShares += o.Shares
		cumTotal += o.Total
		t.shares.Append(o.Day, cumShares)
		t.basis.Append(o.Day, cumTotal/cumShares)
	}
	if t.shares.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstrument, isin)
	}
	return t, nil
}
