// Package header classifies table column headers: it extracts year tokens
// and metric names from year-bearing headers and partitions a header row
// into anchor (identifier) columns and time-series columns.
package header

import (
	"regexp"
	"strings"
)

// yearPattern matches a 4-digit year, optionally followed by a hyphen or
// en-dash and a second 4-digit year ("2018", "2018-2019", "2018–2019").
// Search semantics: the first match anywhere in the header wins.
var yearPattern = regexp.MustCompile(`\d{4}(?:[-–]\d{4})?`)

// DefaultMetric is the metric name used when a header is nothing but a year.
const DefaultMetric = "Value"

// Extract parses a column header into a year token and a metric name.
// The year token is the first yearPattern match, en-dash normalized to
// hyphen. The metric is the header with that match removed, trimmed, and
// stripped of enclosing ()[] bracket characters at its edges (so
// "Rate (2018)" leaves "Rate", not "Rate ("); if nothing remains the
// metric defaults to [DefaultMetric]. ok is false when the header carries
// no year at all.
func Extract(header string) (year, metric string, ok bool) {
	match := yearPattern.FindString(header)
	if match == "" {
		return "", "", false
	}

	year = strings.Replace(match, "–", "-", 1)

	metric = strings.TrimSpace(strings.Replace(header, match, "", 1))
	metric = strings.TrimSpace(strings.Trim(metric, "()[]"))
	if metric == "" {
		metric = DefaultMetric
	}
	return year, metric, true
}
