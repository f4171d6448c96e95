package renderer

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/kellerb/depot"
	"github.com/kellerb/depot/date"
)

// csvRow is one day of an instrument's series in the export format the
// plotting toolchain consumes.
type csvRow struct {
	Day       date.Date `csv:"date"`
	Shares    float64   `csv:"shares"`
	CostBasis float64   `csv:"cost_basis"`
	Close     float64   `csv:"close"`
	Value     float64   `csv:"eod_value"`
}

// CSV writes one instrument's daily series, priced day by day, as CSV.
// Days before the instrument's first trade are not exported at all.
func CSV(w io.Writer, inst *depot.InstrumentReport) error {
	rows := make([]csvRow, 0, inst.Series.Len())
	for pt := range inst.Series.Points() {
		row := csvRow{
			Day:       pt.Day,
			Shares:    pt.Shares,
			CostBasis: pt.CostBasis,
		}
		if px, ok := inst.Prices.ValueAsOf(pt.Day); ok {
			row.Close = px
			row.Value = pt.Shares * px
		}
		rows = append(rows, row)
	}
	return gocsv.Marshal(&rows, w)
}
