package header

// YearMetric is the decoded identity of a time-series column.
type YearMetric struct {
	Year   string // "YYYY" or "YYYY-YYYY", hyphen-normalized.
	Metric string // Remaining header text, or DefaultMetric.
}

// Classification partitions a header row. Anchors and TimeSeries preserve
// the original column order; Mapping's keys are exactly the TimeSeries set.
type Classification struct {
	Anchors    []string
	TimeSeries []string
	Mapping    map[string]YearMetric
}

// Classify runs Extract over every header. A header that yields a year goes
// to TimeSeries with its decoded mapping; everything else is an anchor.
// No cardinality is enforced: all-anchor and all-time-series tables are
// both valid.
func Classify(headers []string) Classification {
	c := Classification{Mapping: make(map[string]YearMetric)}
	for _, h := range headers {
		if year, metric, ok := Extract(h); ok {
			c.TimeSeries = append(c.TimeSeries, h)
			c.Mapping[h] = YearMetric{Year: year, Metric: metric}
		} else {
			c.Anchors = append(c.Anchors, h)
		}
	}
	return c
}

// HasTimeSeries reports whether any header carried a year.
func (c Classification) HasTimeSeries() bool { return len(c.TimeSeries) > 0 }
