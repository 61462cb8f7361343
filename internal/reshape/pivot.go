package reshape

import (
	"fmt"
	"strings"

	"github.com/ruchir321/tableflat/internal/table"
)

// Pivot regroups the mapped long table into tidy wide form: rows keyed by
// (anchor values, Year), one column per distinct metric. Groups and metrics
// both appear in first-encountered order. Within a (group, metric) slot the
// first non-missing value wins; later contributions are silently discarded
// and counted in dups.
//
// A structural error is returned when a metric name collides with Year or
// with an anchor header: the output table could not carry both columns.
// Callers fall back to [LongFormat] in that case.
func Pivot(mapped *table.Table, anchors []string) (out *table.Table, dups int, err error) {
	anchorSet := make(map[string]bool, len(anchors))
	for _, a := range anchors {
		anchorSet[a] = true
	}

	type slot struct{ group, metric int }

	var (
		groupKeys  []string       // insertion order
		groupCells [][]table.Cell // anchor cells + Year cell per group
		groupIndex = map[string]int{}
		metrics    []string
		metricIdx  = map[string]int{}
		values     = map[slot]table.Cell{}
	)

	yearCol := mapped.Column(ColYear)
	metricCol := mapped.Column(ColMetric)
	valueCol := mapped.Column(ColValue)

	for row := 0; row < mapped.NumRows(); row++ {
		keyCells := make([]table.Cell, 0, len(anchors)+1)
		for _, a := range anchors {
			keyCells = append(keyCells, mapped.Cell(row, a))
		}
		keyCells = append(keyCells, yearCol[row])

		key := encodeKey(keyCells)
		g, ok := groupIndex[key]
		if !ok {
			g = len(groupKeys)
			groupIndex[key] = g
			groupKeys = append(groupKeys, key)
			groupCells = append(groupCells, keyCells)
		}

		metric := metricCol[row].Text
		m, ok := metricIdx[metric]
		if !ok {
			if metric == ColYear || anchorSet[metric] {
				return nil, 0, fmt.Errorf("metric column %q already exists in pivot index", metric)
			}
			m = len(metrics)
			metricIdx[metric] = m
			metrics = append(metrics, metric)
		}

		s := slot{g, m}
		existing, seen := values[s]
		switch {
		case !seen || existing.Null:
			values[s] = valueCol[row]
		case !valueCol[row].Null:
			dups++ // first non-missing value already holds the slot
		}
	}

	headers := make([]string, 0, len(anchors)+1+len(metrics))
	headers = append(headers, anchors...)
	headers = append(headers, ColYear)
	headers = append(headers, metrics...)
	out = table.New(headers)

	for g := range groupKeys {
		cells := append([]table.Cell(nil), groupCells[g]...)
		for m := range metrics {
			v, ok := values[slot{g, m}]
			if !ok {
				v = table.Missing
			}
			cells = append(cells, v)
		}
		_ = out.AppendRow(cells)
	}
	return out, dups, nil
}

// encodeKey builds a grouping key from cells. Missing cells are
// distinguished from empty text by a marker byte; cells are delimited by
// a unit separator.
func encodeKey(cells []table.Cell) string {
	var b strings.Builder
	for _, c := range cells {
		if c.Null {
			b.WriteByte(0)
		} else {
			b.WriteByte(1)
			b.WriteString(c.Text)
		}
		b.WriteByte('\x1f')
	}
	return b.String()
}
