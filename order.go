package depot

import (
	"fmt"
	"regexp"

	"github.com/kellerb/depot/date"
)

// OrderType classifies how a purchase was placed.
type OrderType int

const (
	// LumpSum is a single manually placed purchase.
	LumpSum OrderType = iota
	// SavingsPlan is an automatically executed periodic purchase.
	SavingsPlan
)

func (t OrderType) String() string {
	switch t {
	case LumpSum:
		return "lump-sum"
	case SavingsPlan:
		return "savings-plan"
	default:
		return "unknown"
	}
}

// ParseOrderType parses a string into an OrderType.
func ParseOrderType(s string) (OrderType, error) {
	switch s {
	case "lump-sum":
		return LumpSum, nil
	case "savings-plan":
		return SavingsPlan, nil
	default:
		return 0, fmt.Errorf("unknown order type: %q", s)
	}
}

// isinRegex checks for the basic ISIN structure: 2 letters, 9 alphanumeric, 1 digit.
var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// ValidateISIN checks that a string is a structurally valid ISIN (ISO 6166).
// It validates the format only, not the check digit.
func ValidateISIN(isin string) error {
	if len(isin) != 12 {
		return fmt.Errorf("invalid ISIN length: must be 12 characters, got %d", len(isin))
	}
	if !isinRegex.MatchString(isin) {
		return fmt.Errorf("invalid ISIN format: must be 2 uppercase letters, 9 alphanumeric chars, and 1 digit")
	}
	return nil
}

// Order is one purchase of an instrument, the immutable unit of the domain
// model. Price per share is always derived from Total and Shares, never
// stored on its own.
type Order struct {
	Type   OrderType
	Day    date.Date // day the trade settled
	ISIN   string
	Shares float64 // > 0
	Total  float64 // gross amount paid, > 0
}

// NewOrder validates and builds an Order.
func NewOrder(typ OrderType, day date.Date, isin string, shares, total float64) (Order, error) {
	if err := ValidateISIN(isin); err != nil {
		return Order{}, err
	}
	if day.IsZero() {
		return Order{}, fmt.Errorf("order %s: execution date is missing", isin)
	}
	if shares == 0 {
		return Order{}, fmt.Errorf("order %s on %s: %w", isin, day, ErrZeroQuantity)
	}
	if shares < 0 {
		return Order{}, fmt.Errorf("order %s on %s: share quantity %v must be positive", isin, day, shares)
	}
	if total <= 0 {
		return Order{}, fmt.Errorf("order %s on %s: total %v must be positive", isin, day, total)
	}
	return Order{Type: typ, Day: day, ISIN: isin, Shares: shares, Total: total}, nil
}

// Price returns the price paid per share.
func (o Order) Price() float64 { return o.Total / o.Shares }

// Key identifies the economic event an order belongs to. Two orders with the
// same key describe the same purchase, whatever their other fields say.
type Key struct {
	ISIN string
	Day  date.Date
}

// Key returns the identity key of the order.
func (o Order) Key() Key { return Key{ISIN: o.ISIN, Day: o.Day} }

// Merge combines two orders describing the same economic event into one,
// summing shares and totals. The merged order is classified as a lump-sum:
// a purchase large enough to be split across confirmation lines was placed
// manually.
func Merge(a, b Order) (Order, error) {
	if a.Key() != b.Key() {
		return Order{}, fmt.Errorf("cannot merge orders %s/%s and %s/%s: different economic events",
			a.ISIN, a.Day, b.ISIN, b.Day)
	}
	return NewOrder(LumpSum, a.Day, a.ISIN, a.Shares+b.Shares, a.Total+b.Total)
}
