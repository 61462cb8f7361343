// Package check implements --check diagnostics: it verifies the input and
// output directories and previews how each input file's header row would be
// classified, without writing any output.
package check

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruchir321/tableflat/internal/config"
	"github.com/ruchir321/tableflat/internal/display"
	"github.com/ruchir321/tableflat/internal/header"
	"github.com/ruchir321/tableflat/internal/pipeline"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the --check flow: input directory presence, CSV file count,
// per-file header classification preview, and output directory writability.
// It reports everything it finds and returns false if the subsequent batch
// run could not produce any output.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Input Check ===")

	files, err := pipeline.Discover(cfg.InputDir)
	if err != nil {
		if errors.Is(err, pipeline.ErrMissingInputDir) {
			log.Error("Input directory '%s' does not exist", cfg.InputDir)
		} else {
			log.Error("Cannot list input directory '%s': %v", cfg.InputDir, err)
		}
		return false
	}

	log.Info("Input: %s (%s)", cfg.InputDir, display.Pluralize(len(files), "CSV file"))
	if len(files) == 0 {
		log.Warn("Nothing to process")
	}

	for _, path := range files {
		previewFile(log, path)
	}

	if !checkOutputDir(cfg, log) {
		return false
	}

	log.Success("Check complete")
	return true
}

// previewFile reports how one file's header row would be classified.
func previewFile(log Logger, path string) {
	name := filepath.Base(path)

	headers, err := readHeaderRow(path)
	if err != nil {
		log.Warn("  %s: unreadable (%v)", name, err)
		return
	}

	cls := header.Classify(headers)
	if !cls.HasTimeSeries() {
		log.Info("  %s: %d columns, no time-series (would pass through)", name, len(headers))
		return
	}
	log.Info("  %s: %d time-series, anchors %s", name,
		len(cls.TimeSeries), display.FormatColumns(cls.Anchors))
}

// readHeaderRow reads only the first CSV record of the file.
func readHeaderRow(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rec, err := csv.NewReader(f).Read()
	if err != nil {
		return nil, err
	}
	if len(rec) > 0 {
		rec[0] = strings.TrimPrefix(rec[0], "\uFEFF")
	}
	return rec, nil
}

// checkOutputDir verifies the output directory exists or can be created.
func checkOutputDir(cfg *config.Config, log Logger) bool {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory '%s': %v", cfg.OutputDir, err)
		return false
	}
	log.Info("Output: %s (writable)", cfg.OutputDir)
	return true
}
