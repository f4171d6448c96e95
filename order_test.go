package depot

import (
	"errors"
	"testing"

	"github.com/kellerb/depot/date"
)

func TestNewOrder(t *testing.T) {
	day := date.New(2023, 1, 2)

	o, err := NewOrder(SavingsPlan, day, "DE0001234567", 2.5, 50)
	if err != nil {
		t.Fatalf("NewOrder() error = %v want nil", err)
	}
	if got := o.Price(); got != 20 {
		t.Errorf("Price() = %v want 20", got)
	}

	tests := []struct {
		name   string
		isin   string
		shares float64
		total  float64
	}{
		{"short isin", "DE123", 1, 10},
		{"lowercase isin", "de0001234567", 1, 10},
		{"negative shares", "DE0001234567", -1, 10},
		{"zero total", "DE0001234567", 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewOrder(LumpSum, day, tc.isin, tc.shares, tc.total); err == nil {
				t.Errorf("NewOrder(%q, %v, %v) = nil error, want error", tc.isin, tc.shares, tc.total)
			}
		})
	}
}

func TestNewOrderZeroShares(t *testing.T) {
	// A zero quantity must fail instead of silently producing an infinite price.
	_, err := NewOrder(LumpSum, date.New(2023, 1, 2), "DE0001234567", 0, 10)
	if !errors.Is(err, ErrZeroQuantity) {
		t.Errorf("NewOrder(shares=0) error = %v want ErrZeroQuantity", err)
	}
}

func TestMerge(t *testing.T) {
	day := date.New(2023, 1, 2)
	a, _ := NewOrder(SavingsPlan, day, "DE0001234567", 1.0, 10.0)
	b, _ := NewOrder(SavingsPlan, day, "DE0001234567", 2.0, 20.0)

	m, err := Merge(a, b)
	if err != nil {
		t.Fatalf("Merge() error = %v want nil", err)
	}
	if m.Shares != 3.0 {
		t.Errorf("merged Shares = %v want 3.0", m.Shares)
	}
	if m.Total != 30.0 {
		t.Errorf("merged Total = %v want 30.0", m.Total)
	}
	if m.Price() != 10.0 {
		t.Errorf("merged Price() = %v want 10.0", m.Price())
	}
	if m.Type != LumpSum {
		t.Errorf("merged Type = %v want %v", m.Type, LumpSum)
	}
}

func TestMergeDifferentEvents(t *testing.T) {
	a, _ := NewOrder(LumpSum, date.New(2023, 1, 2), "DE0001234567", 1, 10)
	b, _ := NewOrder(LumpSum, date.New(2023, 1, 3), "DE0001234567", 1, 10)
	if _, err := Merge(a, b); err == nil {
		t.Errorf("Merge(different dates) = nil error, want error")
	}

	c, _ := NewOrder(LumpSum, date.New(2023, 1, 2), "IE00B4L5Y983", 1, 10)
	if _, err := Merge(a, c); err == nil {
		t.Errorf("Merge(different instruments) = nil error, want error")
	}
}

func TestOrderTypeRoundTrip(t *testing.T) {
	for _, typ := range []OrderType{LumpSum, SavingsPlan} {
		got, err := ParseOrderType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseOrderType(%q) = %v, %v want %v, nil", typ.String(), got, err, typ)
		}
	}
	if _, err := ParseOrderType("limit"); err == nil {
		t.Errorf("ParseOrderType(limit) = nil error, want error")
	}
}
