// Package pipeline coordinates the parallel generate and flatten phases.
//
// Both phases fan independent archive units across a bounded worker pool.
// During generation every worker owns a disjoint file, so no coordination
// is needed beyond waiting for the pool. During flattening the workers only
// parse; the coordinator alone appends rows to the output tables, in the
// order archive results arrive. That order varies run to run, so consumers
// must treat the tables as unordered sets.
package pipeline

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Config holds the settings shared by both phases.
type Config struct {
	// RootDir is the working directory holding archives and output tables.
	RootDir string
	// ZipPrefix names generated archives {ZipPrefix}{index}.zip.
	ZipPrefix string
	// XMLPrefix names document entries {XMLPrefix}{index}.xml.
	XMLPrefix string
	// Workers caps the pool size. 0 = available CPU parallelism.
	Workers int
	// Seed makes generation reproducible. 0 = derive from the clock.
	Seed int64
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (c Config) zipPath(index int) string {
	return filepath.Join(c.RootDir, fmt.Sprintf("%s%d.zip", c.ZipPrefix, index))
}
