package display

import (
	"fmt"
	"strings"
)

// FormatColumns renders a column-name list for status lines: "[ID, Sex]".
// An empty list renders as "[]" (a table can legally have zero anchors).
func FormatColumns(names []string) string {
	return "[" + strings.Join(names, ", ") + "]"
}

// Pluralize returns "1 file" / "3 files" style labels.
func Pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
