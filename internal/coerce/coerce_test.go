package coerce

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruchir321/tableflat/internal/table"
)

func load(t *testing.T, csvText string) *table.Table {
	t.Helper()
	tbl, err := table.Read(strings.NewReader(csvText))
	require.NoError(t, err)
	return tbl
}

func texts(col []table.Cell) []string {
	out := make([]string, len(col))
	for i, c := range col {
		if c.Null {
			out[i] = "·"
		} else {
			out[i] = c.Text
		}
	}
	return out
}

func TestResolve_NumericWithSentinels(t *testing.T) {
	tbl := load(t, "Rate\n12\n15\nF\n")
	kinds := Resolve(tbl, nil)

	assert.Equal(t, Numeric, kinds["Rate"])
	assert.Equal(t, []string{"12", "15", "·"}, texts(tbl.Column("Rate")))
}

func TestResolve_RangeKeepsWholeColumnText(t *testing.T) {
	// One range value protects the purely numeric neighbours too.
	tbl := load(t, "CI\n12\n100-200\n15\n")
	kinds := Resolve(tbl, nil)

	assert.Equal(t, Text, kinds["CI"])
	assert.Equal(t, []string{"12", "100-200", "15"}, texts(tbl.Column("CI")))
}

func TestResolve_EnDashRange(t *testing.T) {
	tbl := load(t, "CI\n45–60\n")
	kinds := Resolve(tbl, nil)
	assert.Equal(t, Text, kinds["CI"])
}

func TestResolve_ExemptColumns(t *testing.T) {
	tbl := load(t, "ID,Year,Rate\nA1,2018,10\n")
	kinds := Resolve(tbl, []string{"ID"})

	assert.Equal(t, Untouched, kinds["ID"])
	assert.Equal(t, Untouched, kinds["Year"])
	assert.Equal(t, Numeric, kinds["Rate"])
	// Year stays text even though it parses as a number.
	assert.Equal(t, "2018", tbl.Cell(0, "Year").Text)
}

func TestResolve_AllMissingColumnSkipped(t *testing.T) {
	// encoding/csv drops fully blank lines, so the missing cells need a
	// populated neighbour column to exist at all.
	tbl := load(t, "ID,Rate\n1,\n2,\n")
	kinds := Resolve(tbl, []string{"ID"})

	require.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, Untouched, kinds["Rate"])
	assert.True(t, tbl.Cell(0, "Rate").Null)
	assert.True(t, tbl.Cell(1, "Rate").Null)
}

func TestResolve_DecimalAndWhitespace(t *testing.T) {
	tbl := load(t, "Rate\n 15.50 \n1e3\n")
	kinds := Resolve(tbl, nil)

	assert.Equal(t, Numeric, kinds["Rate"])
	assert.Equal(t, []string{"15.5", "1000"}, texts(tbl.Column("Rate")))
}

func TestResolve_NegativeNumbersAreNotRanges(t *testing.T) {
	// "-5" has no digits before the hyphen, so it is not a range.
	tbl := load(t, "Delta\n-5\n3\n")
	kinds := Resolve(tbl, nil)

	assert.Equal(t, Numeric, kinds["Delta"])
	assert.Equal(t, []string{"-5", "3"}, texts(tbl.Column("Delta")))
}
