package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eunmann/zipflat/pkg/archive"
	"github.com/eunmann/zipflat/pkg/fileutil"
)

// Format selects the output table encoding.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// ParseFormat parses a format name from the CLI.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatParquet:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (want csv or parquet)", s)
}

// tableSink receives flattened rows. Only the coordinator calls it.
type tableSink interface {
	WriteLevels([]archive.LevelRecord) error
	WriteObjects([]archive.ObjectRecord) error
	Close() error
}

// openSink resolves the two table paths, enforces the overwrite policy, and
// opens fresh output files.
func openSink(cfg FlattenConfig) (tableSink, error) {
	format := cfg.Format
	if format == "" {
		format = FormatCSV
	}

	levelsPath := filepath.Join(cfg.RootDir, cfg.OutPrefix+"levels."+string(format))
	objectsPath := filepath.Join(cfg.RootDir, cfg.OutPrefix+"objects."+string(format))

	for _, path := range []string{levelsPath, objectsPath} {
		if !fileutil.Exists(path) {
			continue
		}
		if !cfg.Overwrite {
			return nil, fmt.Errorf("output file %s already exists", path)
		}
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("remove %s: %w", path, err)
		}
	}

	if format == FormatParquet {
		return newParquetSink(levelsPath, objectsPath)
	}
	return newCSVSink(levelsPath, objectsPath)
}
