package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrMissingInputDir signals that the input directory does not exist.
// Callers report it and process zero files; it is not fatal.
var ErrMissingInputDir = errors.New("input directory does not exist")

// Discover lists the CSV files directly inside inputDir (non-recursive,
// case-insensitive extension match), sorted lexicographically for
// deterministic processing order.
func Discover(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrMissingInputDir
		}
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			files = append(files, filepath.Join(inputDir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
