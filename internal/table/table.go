// Package table implements a minimal in-memory table: ordered named columns
// of row-aligned, null-aware cells, plus CSV read/write. It is deliberately
// small; the reshape and coerce packages build their transforms on top of it
// rather than on any external dataframe API.
package table

import (
	"fmt"
)

// Cell is a single table value. A Null cell represents a missing value
// (an empty CSV field on read, a failed numeric coercion, or a pivot group
// with no contribution); Text is meaningless when Null is set.
type Cell struct {
	Text string
	Null bool
}

// String returns a non-null cell holding s.
func String(s string) Cell { return Cell{Text: s} }

// Missing is the null cell.
var Missing = Cell{Null: true}

// Table is an ordered sequence of named columns. All columns have the same
// length; AppendRow enforces width so the invariant holds by construction.
type Table struct {
	headers []string
	index   map[string]int
	columns [][]Cell
	rows    int
}

// New returns an empty table with the given column headers, in order.
// Headers must be unique; the CSV reader mangles duplicates before calling.
func New(headers []string) *Table {
	t := &Table{
		headers: append([]string(nil), headers...),
		index:   make(map[string]int, len(headers)),
		columns: make([][]Cell, len(headers)),
	}
	for i, h := range t.headers {
		t.index[h] = i
	}
	return t
}

// Headers returns the column headers in order. The slice is shared; callers
// must not modify it.
func (t *Table) Headers() []string { return t.headers }

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.headers) }

// Empty reports whether the table has zero rows or zero columns.
func (t *Table) Empty() bool { return t.rows == 0 || len(t.headers) == 0 }

// HasColumn reports whether a column with the given header exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the cells of the named column, or nil if absent.
// The returned slice is the live backing store: mutating its cells mutates
// the table (the coerce package relies on this).
func (t *Table) Column(name string) []Cell {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.columns[i]
}

// Cell returns the cell at (row, column-name). It panics on an unknown
// column or out-of-range row, like slice indexing.
func (t *Table) Cell(row int, name string) Cell {
	i, ok := t.index[name]
	if !ok {
		panic(fmt.Sprintf("table: no column %q", name))
	}
	return t.columns[i][row]
}

// Row returns a copy of row i, cells in column order.
func (t *Table) Row(i int) []Cell {
	row := make([]Cell, len(t.columns))
	for c := range t.columns {
		row[c] = t.columns[c][i]
	}
	return row
}

// AppendRow appends one row. The cell count must match the column count.
func (t *Table) AppendRow(cells []Cell) error {
	if len(cells) != len(t.headers) {
		return fmt.Errorf("table: row has %d cells, want %d", len(cells), len(t.headers))
	}
	for i, c := range cells {
		t.columns[i] = append(t.columns[i], c)
	}
	t.rows++
	return nil
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	out := New(t.headers)
	out.rows = t.rows
	for i, col := range t.columns {
		out.columns[i] = append([]Cell(nil), col...)
	}
	return out
}
