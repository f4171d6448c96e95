package document

import (
	"errors"
	"testing"

	"github.com/kellerb/depot"
	"github.com/kellerb/depot/date"
)

// confirmationLines builds the text lines of a plausible confirmation: the
// anchor line floats (layouts are inconsistent between documents), the
// execution date sits on the two fixed date lines.
func confirmationLines(orderLine, anchorLine, dateLine string) []string {
	lines := make([]string, 21)
	lines[0] = "Wertpapierabrechnung"
	lines[2] = orderLine
	lines[7] = anchorLine
	lines[12] = "Verrechnungskonto DE12 3456 7890"
	lines[18] = dateLine
	lines[19] = "Seite 1 von 1"
	return lines
}

const anchor = "ISIN: IE00B4L5Y9832,345 Stk. 37,47 EUR 87,85 EUR"

func TestParseOrder(t *testing.T) {
	lines := confirmationLines(
		"Sparplanausführung Kauf iShs Core MSCI World",
		anchor,
		"Ausführung am 02.01.2023 um 11:04 Uhr",
	)

	o, err := ParseOrder("doc-1.pdf", lines)
	if err != nil {
		t.Fatalf("ParseOrder() error = %v", err)
	}

	if o.ISIN != "IE00B4L5Y983" {
		t.Errorf("ISIN = %q want IE00B4L5Y983", o.ISIN)
	}
	if o.Shares != 2.345 {
		t.Errorf("Shares = %v want 2.345", o.Shares)
	}
	if o.Total != 87.85 {
		t.Errorf("Total = %v want 87.85", o.Total)
	}
	if o.Type != depot.SavingsPlan {
		t.Errorf("Type = %v want %v", o.Type, depot.SavingsPlan)
	}
	if want := date.New(2023, 1, 2); o.Day != want {
		t.Errorf("Day = %v want %v", o.Day, want)
	}
	if got, want := o.Price(), 87.85/2.345; got != want {
		t.Errorf("Price() = %v want %v", got, want)
	}
}

func TestParseOrderLumpSum(t *testing.T) {
	lines := confirmationLines(
		"Market-Order Kauf iShs Core MSCI World",
		anchor,
		"Ausführung am 15.03.2023 um 09:30 Uhr",
	)
	o, err := ParseOrder("doc.pdf", lines)
	if err != nil {
		t.Fatalf("ParseOrder() error = %v", err)
	}
	if o.Type != depot.LumpSum {
		t.Errorf("Type = %v want %v", o.Type, depot.LumpSum)
	}
}

func TestParseOrderLastDateWins(t *testing.T) {
	// Both date lines carry a parseable date; the extraction keeps the last
	// one that parses, it must not stop at the first.
	lines := confirmationLines("Market-Order Kauf", anchor, "Handel am 02.01.2023 Uhrzeit")
	lines[19] = "Valuta 04.01.2023"

	o, err := ParseOrder("doc.pdf", lines)
	if err != nil {
		t.Fatalf("ParseOrder() error = %v", err)
	}
	if want := date.New(2023, 1, 4); o.Day != want {
		t.Errorf("Day = %v want %v (last parsed date)", o.Day, want)
	}
}

func TestParseOrderErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{
			name:  "no anchor line",
			lines: confirmationLines("Market-Order Kauf", "Wertpapier ohne Kennung", "am 02.01.2023"),
			want:  depot.ErrMalformedDocument,
		},
		{
			name:  "garbage quantity",
			lines: confirmationLines("Market-Order Kauf", "ISIN: IE00B4L5Y983x,y45 Stk. 37,47 EUR 87,85 EUR", "am 02.01.2023"),
			want:  depot.ErrMalformedDocument,
		},
		{
			name:  "missing total token",
			lines: confirmationLines("Market-Order Kauf", "ISIN: IE00B4L5Y9832,345 Stk.", "am 02.01.2023"),
			want:  depot.ErrMalformedDocument,
		},
		{
			name:  "garbage total",
			lines: confirmationLines("Market-Order Kauf", "ISIN: IE00B4L5Y9832,345 Stk. 37,47 EUR EUR87", "am 02.01.2023"),
			want:  depot.ErrMalformedDocument,
		},
		{
			name:  "no order type marker",
			lines: confirmationLines("Limit-Order Kauf", anchor, "am 02.01.2023"),
			want:  depot.ErrUnrecognizedOrderType,
		},
		{
			name:  "no parseable date",
			lines: confirmationLines("Market-Order Kauf", anchor, "Ausführung gestern Vormittag"),
			want:  depot.ErrDateNotFound,
		},
		{
			name:  "document too short for date lines",
			lines: []string{"Wertpapierabrechnung", "Market-Order Kauf", anchor},
			want:  depot.ErrDateNotFound,
		},
		{
			name:  "zero share quantity",
			lines: confirmationLines("Market-Order Kauf", "ISIN: IE00B4L5Y9830,000 Stk. 37,47 EUR 87,85 EUR", "am 02.01.2023"),
			want:  depot.ErrZeroQuantity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOrder("doc.pdf", tc.lines)
			if !errors.Is(err, tc.want) {
				t.Errorf("ParseOrder() error = %v, want %v", err, tc.want)
			}
		})
	}
}
