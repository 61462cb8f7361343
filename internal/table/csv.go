package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoHeader is returned when a CSV input contains no records at all.
var ErrNoHeader = errors.New("no header row")

// Read parses comma-separated data into a Table. The first record is the
// header row; duplicate headers are mangled ("X", "X.1", "X.2", …) so column
// identity stays unique. Empty fields become missing cells. Ragged records
// are a parse error.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}
	t := New(mangleHeaders(headers))

	for _, rec := range records[1:] {
		row := make([]Cell, len(rec))
		for i, field := range rec {
			if field == "" {
				row[i] = Missing
			} else {
				row[i] = String(field)
			}
		}
		if err := t.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Write serializes the table as CSV: header row first, then data rows,
// missing cells as empty fields, no index column.
func Write(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers()); err != nil {
		return err
	}
	for i := 0; i < t.NumRows(); i++ {
		rec := make([]string, t.NumCols())
		for c, cell := range t.Row(i) {
			if cell.Null {
				rec[c] = ""
			} else {
				rec[c] = cell.Text
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadFile reads a CSV file into a Table.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// WriteFile writes the table to path as CSV, truncating any existing file.
func WriteFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// mangleHeaders uniquifies duplicate headers by numeric suffix: the second
// occurrence of "X" becomes "X.1", the third "X.2", and so on. Suffixed
// names that would collide with a later literal header are bumped further.
func mangleHeaders(headers []string) []string {
	counts := make(map[string]int, len(headers))
	taken := make(map[string]bool, len(headers))
	out := make([]string, len(headers))
	for i, h := range headers {
		name := h
		if taken[name] {
			n := counts[h]
			if n == 0 {
				n = 1
			}
			for {
				name = fmt.Sprintf("%s.%d", h, n)
				if !taken[name] {
					break
				}
				n++
			}
			counts[h] = n + 1
		}
		taken[name] = true
		out[i] = name
	}
	return out
}
