package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eunmann/zipflat/pkg/archive"
	"github.com/eunmann/zipflat/pkg/logging"
)

// FlattenConfig configures the aggregation phase.
type FlattenConfig struct {
	Config
	// OutPrefix prefixes the two output table files.
	OutPrefix string
	// Overwrite deletes pre-existing output tables instead of failing.
	Overwrite bool
	// Format selects the table encoding. Empty means FormatCSV.
	Format Format
}

// result carries one archive's rows from a worker to the coordinator.
type result struct {
	path    string
	levels  []archive.LevelRecord
	objects []archive.ObjectRecord
	elapsed time.Duration
}

// Flatten discovers every *.zip directly under cfg.RootDir, extracts their
// documents across the worker pool, and appends the flattened rows to the
// levels and objects tables. Any unit failure aborts the run; output files
// already written to may be left truncated.
func Flatten(ctx context.Context, cfg FlattenConfig) error {
	log := logging.WithPhase("flatten")
	start := time.Now()

	// Refusing to overwrite must happen before any archive is read.
	sink, err := openSink(cfg)
	if err != nil {
		return err
	}

	archives, err := discoverArchives(cfg.RootDir)
	if err != nil {
		sink.Close()
		return err
	}

	log.Info().
		Int("archives", len(archives)).
		Int("workers", cfg.workers()).
		Str("root_dir", cfg.RootDir).
		Msg("flattening archives")

	results := make(chan result)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())

	done := make(chan error, 1)
	go func() {
		for _, path := range archives {
			path := path
			g.Go(func() error {
				unitStart := time.Now()
				levels, objects, err := archive.Read(path)
				if err != nil {
					return fmt.Errorf("%s: %w", filepath.Base(path), err)
				}

				select {
				case results <- result{
					path:    path,
					levels:  levels,
					objects: objects,
					elapsed: time.Since(unitStart),
				}:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}
		err := g.Wait()
		close(results)
		done <- err
	}()

	// Only the coordinator touches the output tables; workers hand their
	// rows over the channel and the fan-in needs no locks. Rows land in
	// completion order.
	var levelRows, objectRows int64
	var sinkErr error
	for res := range results {
		if sinkErr != nil {
			continue // keep draining so workers are not stuck on send
		}
		if err := sink.WriteLevels(res.levels); err != nil {
			sinkErr = err
			continue
		}
		if err := sink.WriteObjects(res.objects); err != nil {
			sinkErr = err
			continue
		}
		levelRows += int64(len(res.levels))
		objectRows += int64(len(res.objects))

		logging.ArchiveComplete(log, "flatten", res.elapsed).
			Str("archive", filepath.Base(res.path)).
			Int("levels", len(res.levels)).
			Int("objects", len(res.objects)).
			LogDebug("archive flattened")
	}

	workerErr := <-done
	closeErr := sink.Close()
	switch {
	case workerErr != nil:
		return workerErr
	case sinkErr != nil:
		return sinkErr
	case closeErr != nil:
		return fmt.Errorf("close output tables: %w", closeErr)
	}

	logging.PhaseComplete(log, "flatten", time.Since(start)).
		Int("archives", len(archives)).
		Count("level_rows", levelRows).
		Count("object_rows", objectRows).
		Log("flatten complete")
	return nil
}

// discoverArchives lists every *.zip directly under rootDir, regardless of
// which run produced it.
func discoverArchives(rootDir string) ([]string, error) {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", rootDir, err)
	}

	var archives []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".zip") {
			continue
		}
		archives = append(archives, filepath.Join(rootDir, e.Name()))
	}
	return archives, nil
}
