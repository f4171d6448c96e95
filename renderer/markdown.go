// Package renderer turns a depot.Report into consumer formats: markdown for
// reading, CSV for the plotting toolchain.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/kellerb/depot"
	"github.com/kellerb/depot/date"
)

// Markdown renders the full report as a markdown document: one section per
// instrument with a summary and a position table, plus the account overview
// when present.
func Markdown(r *depot.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio history %s", r.Range))

	for _, inst := range r.Instruments {
		doc.H2(fmt.Sprintf("%s (%s)", inst.Name, inst.ISIN))
		doc.BulletList(
			"Invested: "+depot.Eur(inst.Summary.Invested),
			"Value: "+depot.Eur(inst.Summary.Value),
			"Gain: "+depot.Eur(inst.Summary.Gain)+" ("+depot.Percent(inst.Summary.GainRatio)+")",
			"Volatility (annualized): "+depot.Percent(inst.Summary.Volatility),
		)
		doc.LF()
		doc.Table(instrumentTable(inst))
	}

	if r.Value != nil {
		doc.H2("Overview")
		doc.Table(overviewTable(r))
	}

	return doc.String()
}

// Orders renders a flat order list as a markdown table, one row per
// aggregated (instrument, day) trade.
func Orders(orders []depot.Order) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "ISIN", "Type", "Shares", "Price", "Total"},
		Rows:   [][]string{},
	}
	for _, o := range orders {
		table.Rows = append(table.Rows, []string{
			o.Day.String(),
			o.ISIN,
			o.Type.String(),
			fmt.Sprintf("%.3f", o.Shares),
			depot.Eur(o.Price()),
			depot.Eur(o.Total),
		})
	}
	doc.H1("Orders")
	doc.Table(table)
	return doc.String()
}

// instrumentTable lists the position day by day, sampled to stay readable:
// trade days, month boundaries, and the last day of the range. The full daily
// granularity is the CSV export's job.
func instrumentTable(inst *depot.InstrumentReport) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Shares", "Cost basis", "Close", "Value", "P/L"},
		Rows:   [][]string{},
	}

	lastDay := lastPointDay(inst.Series)
	prevShares := -1.0
	for pt := range inst.Series.Points() {
		traded := pt.Shares != prevShares
		prevShares = pt.Shares
		if !traded && pt.Day.Day() != 1 && pt.Day != lastDay {
			continue
		}

		invested := pt.Shares * pt.CostBasis
		var closing, value, pl string
		if px, ok := inst.Prices.ValueAsOf(pt.Day); ok {
			closing = depot.Eur(px)
			value = depot.Eur(pt.Shares * px)
			pl = depot.Eur(pt.Shares*px - invested)
		}
		table.Rows = append(table.Rows, []string{
			pt.Day.String(),
			fmt.Sprintf("%.3f", pt.Shares),
			depot.Eur(pt.CostBasis),
			closing,
			value,
			pl,
		})
	}
	return table
}

// overviewTable lists the account-wide invested amount and end-of-day value,
// sampled at month boundaries and the final day.
func overviewTable(r *depot.Report) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Invested", "Value", "P/L"},
		Rows:   [][]string{},
	}

	for day, invested := range r.Invested.Values() {
		if day.Day() != 1 && day != r.Range.To {
			continue
		}
		value, _ := r.Value.Get(day)
		table.Rows = append(table.Rows, []string{
			day.String(),
			depot.Eur(invested),
			depot.Eur(value),
			depot.Eur(value - invested),
		})
	}
	return table
}

func lastPointDay(s *depot.DailySeries) date.Date {
	var last date.Date
	for pt := range s.Points() {
		last = pt.Day
	}
	return last
}
