package depot

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Eur formats an amount as euros with the ISO currency formatter.
// All order totals in the confirmations are euro amounts.
func Eur(v float64) string {
	cur := *money.New(0, money.EUR).Currency()
	dec := decimal.NewFromFloat(v).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Percent formats a ratio (1.0 == 100%) with two decimals and a sign.
func Percent(v float64) string {
	d := decimal.NewFromFloat(v * 100).Round(2)
	if d.IsPositive() {
		return "+" + d.String() + "%"
	}
	return d.String() + "%"
}
