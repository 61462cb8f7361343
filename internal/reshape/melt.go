package reshape

import (
	"github.com/ruchir321/tableflat/internal/header"
	"github.com/ruchir321/tableflat/internal/table"
)

// Intermediate and output column names. ColYear also marks the column the
// type resolver must leave untouched.
const (
	ColOriginalHeader = "original_header"
	ColYear           = "Year"
	ColMetric         = "Metric"
	ColValue          = "temp_value"
)

// Melt turns the wide table into long form: one row per (original row,
// time-series column) pair, columns anchors + original_header + temp_value.
// Traversal is column-major (all rows of the first time-series column, then
// the next), which fixes the tie-break order for everything downstream.
func Melt(t *table.Table, c header.Classification) *table.Table {
	headers := make([]string, 0, len(c.Anchors)+2)
	headers = append(headers, c.Anchors...)
	headers = append(headers, ColOriginalHeader, ColValue)
	out := table.New(headers)

	for _, ts := range c.TimeSeries {
		col := t.Column(ts)
		for row := 0; row < t.NumRows(); row++ {
			cells := make([]table.Cell, 0, len(headers))
			for _, a := range c.Anchors {
				cells = append(cells, t.Cell(row, a))
			}
			cells = append(cells, table.String(ts), col[row])
			// Width matches by construction.
			_ = out.AppendRow(cells)
		}
	}
	return out
}

// MapYears resolves each melted row's original header through the
// classification mapping, appending Year and Metric columns. The
// original_header column is kept; Pivot ignores it and LongFormat drops it.
func MapYears(melted *table.Table, mapping map[string]header.YearMetric) *table.Table {
	headers := append([]string(nil), melted.Headers()...)
	headers = append(headers, ColYear, ColMetric)
	out := table.New(headers)

	origCol := melted.Column(ColOriginalHeader)
	for row := 0; row < melted.NumRows(); row++ {
		ym := mapping[origCol[row].Text]
		cells := append(melted.Row(row), table.String(ym.Year), table.String(ym.Metric))
		_ = out.AppendRow(cells)
	}
	return out
}

// LongFormat is the pivot-failure fallback: the mapped long table with the
// original_header column dropped and columns reordered to
// anchors + Year + Metric + temp_value.
func LongFormat(mapped *table.Table, anchors []string) *table.Table {
	headers := make([]string, 0, len(anchors)+3)
	headers = append(headers, anchors...)
	headers = append(headers, ColYear, ColMetric, ColValue)
	out := table.New(headers)

	for row := 0; row < mapped.NumRows(); row++ {
		cells := make([]table.Cell, 0, len(headers))
		for _, h := range headers {
			cells = append(cells, mapped.Cell(row, h))
		}
		_ = out.AppendRow(cells)
	}
	return out
}
