package depot

import (
	"testing"

	"github.com/kellerb/depot/date"
)

func mustOrder(t *testing.T, typ OrderType, day date.Date, isin string, shares, total float64) Order {
	t.Helper()
	o, err := NewOrder(typ, day, isin, shares, total)
	if err != nil {
		t.Fatalf("NewOrder(%s, %s): %v", isin, day, err)
	}
	return o
}

func TestAggregate(t *testing.T) {
	d2 := date.New(2023, 1, 2)
	d3 := date.New(2023, 1, 3)

	orders := []Order{
		mustOrder(t, SavingsPlan, d2, "DE0001234567", 1.0, 10.0),
		mustOrder(t, SavingsPlan, d3, "DE0001234567", 4.0, 40.0),
		mustOrder(t, SavingsPlan, d2, "DE0001234567", 2.0, 20.0),
		mustOrder(t, SavingsPlan, d2, "IE00B4L5Y983", 1.0, 70.0),
	}

	got, err := Aggregate(orders)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Aggregate() returned %d orders want 3", len(got))
	}

	// first-occurrence order of keys is preserved
	merged := got[0]
	if merged.Key() != (Key{ISIN: "DE0001234567", Day: d2}) {
		t.Fatalf("got[0].Key() = %v want DE0001234567/%s", merged.Key(), d2)
	}
	if merged.Shares != 3.0 || merged.Total != 30.0 {
		t.Errorf("merged = %v shares, %v total want 3.0, 30.0", merged.Shares, merged.Total)
	}
	if merged.Price() != 10.0 {
		t.Errorf("merged.Price() = %v want 10.0", merged.Price())
	}
	if merged.Type != LumpSum {
		t.Errorf("merged.Type = %v want %v", merged.Type, LumpSum)
	}

	// single-member keys pass through unchanged
	if got[1] != orders[1] {
		t.Errorf("got[1] = %+v want unchanged %+v", got[1], orders[1])
	}
	if got[2] != orders[3] {
		t.Errorf("got[2] = %+v want unchanged %+v", got[2], orders[3])
	}
}

func TestAggregateInputOrderIrrelevant(t *testing.T) {
	d := date.New(2023, 1, 2)
	a := mustOrder(t, SavingsPlan, d, "DE0001234567", 1.0, 10.0)
	b := mustOrder(t, LumpSum, d, "DE0001234567", 2.0, 20.0)

	x, err := Aggregate([]Order{a, b})
	if err != nil {
		t.Fatal(err)
	}
	y, err := Aggregate([]Order{b, a})
	if err != nil {
		t.Fatal(err)
	}
	if x[0] != y[0] {
		t.Errorf("Aggregate is input-order dependent: %+v != %+v", x[0], y[0])
	}
}

func TestAggregateEmpty(t *testing.T) {
	got, err := Aggregate(nil)
	if err != nil {
		t.Fatalf("Aggregate(nil) error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Aggregate(nil) = %d orders want 0", len(got))
	}
}
