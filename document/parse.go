package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kellerb/depot"
	"github.com/kellerb/depot/date"
)

const (
	// anchorMarker tags the line carrying ISIN, share quantity and order total.
	// Its position varies between documents, so it is located by content.
	anchorMarker = "ISIN:"
	// lumpSumMarker and savingsPlanMarker classify the order. They can appear
	// on any line of the document.
	lumpSumMarker     = "Market-Order"
	savingsPlanMarker = "Sparplanausführung"

	// The execution date is printed somewhere on these two fixed lines.
	dateLineFirst  = 18
	dateLineSecond = 19

	// germanDateFormat is the day.month.year date layout of the confirmations.
	germanDateFormat = "02.01.2006"
)

// parser is the per-document extraction context. A fresh one is built for
// every document so no state leaks between extractions.
type parser struct {
	name  string // document identity, for error context
	lines []string
}

// ParseOrder extracts one order from a document's text lines. name identifies
// the document in error messages.
func ParseOrder(name string, lines []string) (depot.Order, error) {
	p := &parser{name: name, lines: lines}

	anchor, err := p.anchorLine()
	if err != nil {
		return depot.Order{}, err
	}
	isin, err := p.isin(anchor)
	if err != nil {
		return depot.Order{}, err
	}
	shares, err := p.shareQuantity(anchor)
	if err != nil {
		return depot.Order{}, err
	}
	total, err := p.orderTotal(anchor)
	if err != nil {
		return depot.Order{}, err
	}
	typ, err := p.orderType()
	if err != nil {
		return depot.Order{}, err
	}
	day, err := p.executionDate()
	if err != nil {
		return depot.Order{}, err
	}

	o, err := depot.NewOrder(typ, day, isin, shares, total)
	if err != nil {
		return depot.Order{}, fmt.Errorf("document %s: %w", p.name, err)
	}
	return o, nil
}

// anchorLine returns the first line containing the anchor marker.
func (p *parser) anchorLine() (string, error) {
	for _, line := range p.lines {
		if strings.Contains(line, anchorMarker) {
			return line, nil
		}
	}
	return "", fmt.Errorf("document %s: %w: no %q line", p.name, depot.ErrMalformedDocument, anchorMarker)
}

// isin extracts the instrument identifier: the first 12 characters of the
// anchor line's second token, after the embedded label prefix.
func (p *parser) isin(anchor string) (string, error) {
	tokens := strings.Fields(anchor)
	if len(tokens) < 2 || len(tokens[1]) < 12 {
		return "", fmt.Errorf("document %s: %w: anchor line too short for an ISIN", p.name, depot.ErrMalformedDocument)
	}
	return tokens[1][:12], nil
}

// shareQuantity extracts the quantity glued to the ISIN in the second token.
func (p *parser) shareQuantity(anchor string) (float64, error) {
	tokens := strings.Fields(anchor)
	if len(tokens) < 2 || len(tokens[1]) <= 12 {
		return 0, fmt.Errorf("document %s: %w: anchor line carries no share quantity", p.name, depot.ErrMalformedDocument)
	}
	q, err := parseGermanNumber(tokens[1][12:])
	if err != nil {
		return 0, fmt.Errorf("document %s: %w: share quantity: %v", p.name, depot.ErrMalformedDocument, err)
	}
	return q, nil
}

// orderTotal extracts the gross amount paid, the sixth token of the anchor line.
func (p *parser) orderTotal(anchor string) (float64, error) {
	tokens := strings.Fields(anchor)
	if len(tokens) < 6 {
		return 0, fmt.Errorf("document %s: %w: anchor line carries no order total", p.name, depot.ErrMalformedDocument)
	}
	total, err := parseGermanNumber(tokens[5])
	if err != nil {
		return 0, fmt.Errorf("document %s: %w: order total: %v", p.name, depot.ErrMalformedDocument, err)
	}
	return total, nil
}

// orderType scans the whole document for the classification markers. The
// lump-sum marker wins when both appear.
func (p *parser) orderType() (depot.OrderType, error) {
	for _, line := range p.lines {
		if strings.Contains(line, lumpSumMarker) {
			return depot.LumpSum, nil
		}
	}
	for _, line := range p.lines {
		if strings.Contains(line, savingsPlanMarker) {
			return depot.SavingsPlan, nil
		}
	}
	return 0, fmt.Errorf("document %s: %w", p.name, depot.ErrUnrecognizedOrderType)
}

// executionDate concatenates the two fixed date lines and tries every
// space-delimited phrase as a day.month.year date. The loop deliberately does
// not stop at the first hit: the last phrase that parses wins, matching the
// established extraction behavior of these documents.
func (p *parser) executionDate() (date.Date, error) {
	if len(p.lines) <= dateLineSecond {
		return date.Date{}, fmt.Errorf("document %s: %w: document has only %d lines", p.name, depot.ErrDateNotFound, len(p.lines))
	}

	concat := p.lines[dateLineFirst] + " " + p.lines[dateLineSecond]

	var day date.Date
	found := false
	for _, phrase := range strings.Split(concat, " ") {
		if len(phrase) > 10 {
			phrase = phrase[:10]
		}
		on, err := time.Parse(germanDateFormat, phrase)
		if err != nil {
			continue
		}
		day = date.FromTime(on)
		found = true
	}
	if !found {
		return date.Date{}, fmt.Errorf("document %s: %w", p.name, depot.ErrDateNotFound)
	}
	return day, nil
}

// parseGermanNumber parses a decimal-comma number ("1.234,56" style amounts
// appear without thousands separators in these documents, so only the comma
// needs converting). Going through decimal keeps the validation strict: no
// silent coercion of garbage to zero or NaN.
func parseGermanNumber(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}
