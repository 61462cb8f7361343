package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/ruchir321/tableflat/internal/coerce"
	"github.com/ruchir321/tableflat/internal/config"
	"github.com/ruchir321/tableflat/internal/display"
	"github.com/ruchir321/tableflat/internal/header"
	"github.com/ruchir321/tableflat/internal/logging"
	"github.com/ruchir321/tableflat/internal/reshape"
	"github.com/ruchir321/tableflat/internal/table"
)

// Run is the top-level batch entry point. It discovers CSV files, processes
// each sequentially (classify → reshape → resolve types → write), and
// returns aggregate stats. A missing input directory is reported and yields
// zero processed files; it never panics or aborts the process.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	files, err := Discover(cfg.InputDir)
	if err != nil {
		if errors.Is(err, ErrMissingInputDir) {
			log.Error("CRITICAL: Input directory '%s' does not exist.", cfg.InputDir)
		} else {
			log.Error("File discovery failed: %v", err)
		}
		return stats
	}
	stats.Total = len(files)

	log.Info("Processing %d files...", stats.Total)

	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			log.Error("Cannot create output directory '%s': %v", cfg.OutputDir, err)
			return stats
		}
	}

	for i, path := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		stats.Current = i + 1

		processFile(cfg, log, path, &stats)
	}

	logSummary(log, &stats)
	return stats
}

// processFile handles one CSV file end to end. Failures are logged and
// counted, never propagated.
func processFile(cfg *config.Config, log *logging.Logger, path string, stats *RunStats) {
	name := filepath.Base(path)

	tbl, err := table.ReadFile(path)
	if err != nil {
		log.Error("Error reading %s: %v", name, err)
		stats.Failed++
		return
	}
	if tbl.Empty() {
		log.Debug(cfg.Verbose, "Skip (empty table): %s", name)
		stats.Skipped++
		return
	}

	cls := header.Classify(tbl.Headers())
	res := reshape.Reshape(tbl, cls)

	// counter is bumped only once the output is actually produced.
	var counter *int
	switch res.Outcome {
	case reshape.PassThrough:
		log.Info("[Pass-Through] No time-series detected in: %s", name)
		counter = &stats.PassedThrough
	case reshape.Flattened:
		log.Info("[Flattening] Time-series detected in: %s (Anchors: %s)",
			name, display.FormatColumns(cls.Anchors))
		if res.Duplicates > 0 {
			log.Debug(cfg.Verbose, "%d duplicate value(s) discarded during pivot (first kept)", res.Duplicates)
		}
		counter = &stats.Flattened
	case reshape.LongFallback:
		log.Info("[Flattening] Time-series detected in: %s (Anchors: %s)",
			name, display.FormatColumns(cls.Anchors))
		log.Warn("Pivot failed for %s: %v. Saving long format.", name, res.PivotErr)
		counter = &stats.LongFallbacks
	}

	kinds := coerce.Resolve(res.Table, cls.Anchors)
	if cfg.Verbose {
		numeric, text := 0, 0
		for _, k := range kinds {
			switch k {
			case coerce.Numeric:
				numeric++
			case coerce.Text:
				text++
			}
		}
		log.Debug(true, "Resolved types: %d numeric, %d text column(s)", numeric, text)
	}

	outPath := filepath.Join(cfg.OutputDir, cfg.OutputPrefix+name)

	if cfg.DryRun {
		log.Success("[DRY] Would save: %s", outPath)
		*counter++
		return
	}

	if err := table.WriteFile(outPath, res.Table); err != nil {
		log.Error("Error writing %s: %v", outPath, err)
		stats.Failed++
		return
	}
	log.Success("-> Saved: %s", outPath)
	*counter++
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d flattened, %d passed through, %d long-format fallbacks, %d skipped, %d failed",
		stats.Flattened, stats.PassedThrough, stats.LongFallbacks, stats.Skipped, stats.Failed)
	log.Info("  Total files processed: %d", stats.Current)
}
