package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total         int // Files discovered.
	Current       int // 1-based index of the file being processed.
	Flattened     int // Reshaped via successful pivot.
	PassedThrough int // No time-series columns; copied unchanged.
	LongFallbacks int // Pivot failed; long format written instead.
	Skipped       int // Empty tables (no output produced).
	Failed        int // Read or write errors.
}

// Written returns how many output files a non-dry run produced.
func (s *RunStats) Written() int {
	return s.Flattened + s.PassedThrough + s.LongFallbacks
}
