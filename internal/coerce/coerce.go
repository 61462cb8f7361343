// Package coerce decides, per output column, whether values are numeric or
// must stay text. The decision is whole-column: confidence-interval ranges
// like "100-200" would be destroyed by numeric parsing, so one range-looking
// value anywhere keeps the entire column textual.
package coerce

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ruchir321/tableflat/internal/reshape"
	"github.com/ruchir321/tableflat/internal/table"
)

// rangePattern matches digits-hyphen-digits (or en-dash) anywhere in a value.
var rangePattern = regexp.MustCompile(`\d+[-–]\d+`)

// Kind is the resolved type of one column.
type Kind int

const (
	Untouched Kind = iota // Exempt or all-missing; left as-is.
	Text                  // Contains a range-looking value; preserved verbatim.
	Numeric               // Every value parsed; failures became missing.
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Numeric:
		return "numeric"
	}
	return "untouched"
}

// Resolve mutates tbl in place, column by column. Columns named in anchors
// and the Year column are exempt. For the rest: a column with any
// range-looking value stays text; otherwise every value is parsed as a
// number, and values that fail to parse (sentinels like "F" or "x") become
// missing cells. The returned map records the decision per column.
func Resolve(tbl *table.Table, anchors []string) map[string]Kind {
	exempt := make(map[string]bool, len(anchors)+1)
	for _, a := range anchors {
		exempt[a] = true
	}
	exempt[reshape.ColYear] = true

	kinds := make(map[string]Kind, tbl.NumCols())
	for _, h := range tbl.Headers() {
		if exempt[h] {
			kinds[h] = Untouched
			continue
		}
		kinds[h] = resolveColumn(tbl.Column(h))
	}
	return kinds
}

// resolveColumn applies the heuristic to one column's live cells.
func resolveColumn(col []table.Cell) Kind {
	present := 0
	for _, c := range col {
		if c.Null {
			continue
		}
		present++
		if rangePattern.MatchString(c.Text) {
			return Text
		}
	}
	if present == 0 {
		return Untouched
	}

	for i, c := range col {
		if c.Null {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			col[i] = table.Missing
			continue
		}
		col[i] = table.String(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return Numeric
}
