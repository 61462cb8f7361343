package reshape

import (
	"fmt"
	"strings"

	"github.com/ruchir321/tableflat/internal/header"
	"github.com/ruchir321/tableflat/internal/table"
)

// Outcome is the terminal path a table took through the engine.
type Outcome int

const (
	// PassThrough: no time-series columns; output is a copy of the input.
	PassThrough Outcome = iota
	// Flattened: melt → map → pivot succeeded.
	Flattened
	// LongFallback: pivot failed structurally; output is the long format.
	LongFallback
)

func (o Outcome) String() string {
	switch o {
	case PassThrough:
		return "pass-through"
	case Flattened:
		return "flattened"
	case LongFallback:
		return "long-fallback"
	}
	return "unknown"
}

// Result carries the reshaped table and how it was produced.
type Result struct {
	Table   *table.Table
	Outcome Outcome

	// PivotErr is the structural cause when Outcome is LongFallback.
	PivotErr error
	// Duplicates counts melted values silently discarded by first-wins
	// conflict resolution during the pivot.
	Duplicates int
}

// Reshape runs the full engine for one table against its classification.
// It never fails: every input yields an output table via one of the three
// outcomes.
func Reshape(t *table.Table, c header.Classification) Result {
	if !c.HasTimeSeries() {
		return Result{Table: t.Clone(), Outcome: PassThrough}
	}

	// An anchor named after a generated column (Year, Metric, or the melt
	// intermediates) cannot survive the flatten: the generated column takes
	// the name and the anchor's values are lost. Structural failure; the
	// long fallback carries the remaining anchors.
	if clash := reservedAnchors(c.Anchors); len(clash) > 0 {
		reduced := c
		reduced.Anchors = withoutReserved(c.Anchors)
		melted := Melt(t, reduced)
		mapped := MapYears(melted, c.Mapping)
		err := fmt.Errorf("anchor column(s) %s collide with generated columns",
			strings.Join(clash, ", "))
		return Result{Table: LongFormat(mapped, reduced.Anchors), Outcome: LongFallback, PivotErr: err}
	}

	melted := Melt(t, c)
	mapped := MapYears(melted, c.Mapping)

	pivoted, dups, err := Pivot(mapped, c.Anchors)
	if err != nil {
		return Result{Table: LongFormat(mapped, c.Anchors), Outcome: LongFallback, PivotErr: err}
	}
	return Result{Table: pivoted, Outcome: Flattened, Duplicates: dups}
}

// reserved reports whether name is one of the columns the engine generates.
func reserved(name string) bool {
	switch name {
	case ColYear, ColMetric, ColOriginalHeader, ColValue:
		return true
	}
	return false
}

func reservedAnchors(anchors []string) []string {
	var clash []string
	for _, a := range anchors {
		if reserved(a) {
			clash = append(clash, a)
		}
	}
	return clash
}

func withoutReserved(anchors []string) []string {
	kept := make([]string, 0, len(anchors))
	for _, a := range anchors {
		if !reserved(a) {
			kept = append(kept, a)
		}
	}
	return kept
}
