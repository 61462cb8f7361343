// Package config holds runtime configuration: defaults, enum types, and
// validation. Defaults match the original flatten step (fixed input/output
// directories, fixed "flat_" prefix) so a bare invocation is a drop-in
// replacement; everything else is surfaced as explicit settings.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the CLI layer before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (set from positional args; defaults below).
	InputDir  string
	OutputDir string

	// OutputPrefix is prepended to each input filename to form the output
	// filename. Default: "flat_".
	OutputPrefix string

	// Behavior flags.
	DryRun    bool // Classify and reshape, but write nothing.
	CheckOnly bool // Run --check diagnostics and exit.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults matching the original
// flatten step. Used as the base before the CLI applies overrides.
func DefaultConfig() Config {
	return Config{
		InputDir:     "processed_tables_clean",
		OutputDir:    "output",
		OutputPrefix: "flat_",
		DryRun:       false,
		CheckOnly:    false,
		Verbose:      false,
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that the path and
// prefix settings are usable.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.OutputPrefix == "" {
		return errors.New("output prefix must not be empty (outputs would overwrite inputs)")
	}
	if strings.ContainsRune(c.OutputPrefix, filepath.Separator) {
		return errors.New("output prefix must not contain a path separator")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("need input_dir and output_dir")
	}
	return nil
}

// ValidatePaths ensures the resolved output directory is not inside (or equal
// to) the resolved input directory. This prevents the pipeline from
// discovering its own output files on a re-run. Both arguments must be
// absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}
