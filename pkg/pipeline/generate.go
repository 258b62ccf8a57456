package pipeline

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eunmann/zipflat/pkg/archive"
	"github.com/eunmann/zipflat/pkg/docgen"
	"github.com/eunmann/zipflat/pkg/logging"
)

// Generate writes qty archives of docQty documents each under cfg.RootDir,
// fanning archive creation across the worker pool. The first failure cancels
// remaining work and is returned after all dispatched workers settle.
func Generate(ctx context.Context, cfg Config, qty, docQty int) error {
	if qty < 0 {
		return fmt.Errorf("archive count must be >= 0, got %d", qty)
	}
	if docQty <= 0 {
		return fmt.Errorf("documents per archive must be > 0, got %d", docQty)
	}

	log := logging.WithPhase("generate")
	start := time.Now()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Info().
		Int("archives", qty).
		Int("docs_per_archive", docQty).
		Int("workers", cfg.workers()).
		Str("root_dir", cfg.RootDir).
		Msg("generating archives")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())

	for i := 0; i < qty; i++ {
		i := i
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			unitStart := time.Now()
			// Offset the seed per archive so workers draw disjoint streams.
			gen := docgen.NewGenerator(docgen.Config{Seed: seed + int64(i)})
			if err := archive.Write(cfg.zipPath(i), cfg.XMLPrefix, docQty, gen); err != nil {
				return fmt.Errorf("archive %d: %w", i, err)
			}

			logging.ArchiveComplete(log, "generate", time.Since(unitStart)).
				Int("archive_index", i).
				LogDebug("archive written")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logging.PhaseComplete(log, "generate", time.Since(start)).
		Int("archives", qty).
		Count("documents", int64(qty)*int64(docQty)).
		Log("generation complete")
	return nil
}
