// Package fileutil implements the pipeline's filesystem contract helpers.
package fileutil

import (
	"fmt"
	"os"
)

// Exists returns true if the path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir validates the working directory contract: an existing path must
// be a directory; an absent path is created when create is true and is an
// error otherwise.
func EnsureDir(path string, create bool) error {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", path)
		}
		return nil
	case os.IsNotExist(err):
		if !create {
			return fmt.Errorf("directory %s does not exist", path)
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", path, err)
		}
		return nil
	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}

// WriteTmpThenMove writes outPath via a sibling temp file and renames it into
// place, so readers never observe a half-written file. writeFunc receives the
// temporary path and must write the complete file.
func WriteTmpThenMove(outPath string, writeFunc func(tmpPath string) error) error {
	tmpPath := outPath + ".tmp"

	if err := writeFunc(tmpPath); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp to final: %w", err)
	}
	return nil
}
