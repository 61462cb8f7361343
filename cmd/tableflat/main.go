// Command tableflat is the CLI entrypoint. It reshapes a directory of
// wide-format CSV tables (per-year metric columns) into tidy long-format
// CSVs, one output file per input.
//
// It parses flags, validates configuration and paths, and either runs input
// diagnostics (--check) or the flatten pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ruchir321/tableflat/internal/check"
	"github.com/ruchir321/tableflat/internal/config"
	"github.com/ruchir321/tableflat/internal/display"
	"github.com/ruchir321/tableflat/internal/logging"
	"github.com/ruchir321/tableflat/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	var forceColor, noColor bool

	code := 0
	root := &cobra.Command{
		Use:   "tableflat [input_dir [output_dir]]",
		Short: "Flatten wide per-year CSV tables into tidy long format",
		Long: `tableflat converts wide-format CSV tables, where repeated measurements
across years are encoded as separate columns ("2018 Rate", "2019 Rate"),
into a normalized long format with an explicit Year column and one column
per metric. Identifier columns (ID, Sex, Age group, ...) are carried
through unchanged.

Each input file yields one output file named by prefix (default "flat_").
Directories default to the upstream extraction layout: input
"processed_tables_clean", output "output".`,
		Args:          cobra.MaximumNArgs(2),
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code = execute(&cfg, args, forceColor, noColor)
			return nil
		},
	}

	f := root.Flags()
	f.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "preview only; do not write output files")
	f.BoolVarP(&cfg.CheckOnly, "check", "c", false, "run input diagnostics and exit")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
	f.StringVarP(&cfg.LogFile, "log", "l", "", "append logs to file")
	f.StringVar(&cfg.OutputPrefix, "prefix", cfg.OutputPrefix, "output filename prefix")
	f.BoolVar(&forceColor, "color", false, "force colored logs")
	f.BoolVar(&noColor, "no-color", false, "disable colored logs")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tableflat: %v\n", err)
		return 1
	}
	return code
}

func execute(cfg *config.Config, args []string, forceColor, noColor bool) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output goes
	// through the logger for consistent formatting and log-file capture.
	if len(args) > 0 {
		cfg.InputDir = config.NormalizeDirArg(args[0])
	}
	if len(args) > 1 {
		cfg.OutputDir = config.NormalizeDirArg(args[1])
	}
	if forceColor {
		cfg.ColorMode = config.ColorAlways
	}
	if noColor {
		cfg.ColorMode = config.ColorNever
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "tableflat: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tableflat: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== tableflat v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputDir)
	if cfg.DryRun {
		log.Warn("DRY RUN (no files will be written)")
	}
	log.Info("")

	// A missing input directory is a reported condition handled inside the
	// pipeline (zero files processed), not a startup failure. Path nesting
	// is only validated when the input actually resolves.
	if inputAbs, err := absPath(cfg.InputDir); err == nil {
		outputAbs, err := filepath.Abs(cfg.OutputDir)
		if err != nil {
			log.Error("Cannot resolve output path: %s", cfg.OutputDir)
			return 1
		}
		if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
			log.Error("%v", err)
			log.Error("Choose an output path outside: %s", cfg.InputDir)
			return 1
		}
	}

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so the
	// pipeline stops between files without leaving partial output.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file")
		cancel()
	}()

	// Phase 4: Run the batch.
	stats := pipeline.Run(ctx, cfg, log)

	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// absPath returns the absolute path with symlinks resolved, for comparing
// input vs output hierarchy. Fails when the path does not exist.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
