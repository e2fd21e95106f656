// Package sampler - parallel campaigns of independent draws.
package sampler

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvldpp/kernel"
)

// Batch runs count independent draws under one kernel and returns them
// in draw order. Draws share nothing but read-only access to the kernel:
// each owns its working state and its random substream, derived from one
// parent seed by draw index. Results are therefore bit-identical for any
// worker count, and equal to count sequential Draw calls on the same
// substreams.
//
// Concurrency:
//   - Workers goroutines (default runtime.GOMAXPROCS(0)) split the draw
//     indices round-robin and write disjoint result slots; no locks.
//   - Cancellation is coarse-grained: ctx is checked between draws, never
//     mid-draw (a single draw is short and CPU-bound). ctx may be nil.
//   - The first failed draw cancels the remaining workers and Batch
//     returns its error; no partial result slice is exposed.
//
// The parent seed is Seed (0 ⇒ fixed default); an injected Rand instead
// contributes one value drawn from it, so reusing the same Rand across
// batches yields fresh, still-reproducible campaigns.
//
// Complexity: count draws of the selected strategy, divided by Workers.
func Batch(ctx context.Context, k *kernel.Kernel, count int, opts ...Option) ([]Sample, error) {
	// 1) Build and validate options and arguments.
	cfg := gatherOptions(opts...)
	if k == nil {
		return nil, ErrNilKernel
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, count)
	}

	// 2) Resolve the strategy once; a bad name fails the whole batch
	//    before any work starts.
	st, err := resolveStrategy(cfg)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []Sample{}, nil
	}

	// 3) Resolve the parent seed for substream derivation.
	parent := cfg.Seed
	if cfg.Rand != nil {
		parent = cfg.Rand.Int63()
	} else if parent == 0 {
		parent = defaultRNGSeed
	}

	// 4) Clamp workers to the work available.
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > count {
		workers = count
	}

	if ctx == nil {
		ctx = context.Background()
	}

	// 5) Fan out: worker w owns draw indices w, w+workers, w+2·workers, …
	//    Disjoint slots of results make the writes race-free.
	results := make([]Sample, count)
	g, gctx := errgroup.WithContext(ctx)
	var w int
	for w = 0; w < workers; w++ {
		start := w
		g.Go(func() error {
			var (
				i    int
				s    Sample
				derr error
			)
			for i = start; i < count; i += workers {
				if derr = gctx.Err(); derr != nil {
					return derr
				}
				s, derr = drawWith(st, k, streamRNG(parent, uint64(i)))
				if derr != nil {
					return fmt.Errorf("draw %d: %w", i, derr)
				}
				results[i] = s
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
