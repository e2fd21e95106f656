// Package sampler - public draw entry point and strategy dispatch.
package sampler

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvldpp/kernel"
)

// Sample is one exact draw: the chosen item indices in selection order.
// A sample from a rank-r projection kernel always has exactly r distinct
// entries in [0, N). Immutable by convention once returned; use Clone
// before mutating.
type Sample []int

// Clone returns an independent copy of the sample.
func (s Sample) Clone() Sample {
	if s == nil {
		return nil
	}
	out := make(Sample, len(s))
	copy(out, s)

	return out
}

// Draw produces one exact sample of size k.Rank() from the projection
// DPP defined by k, so that P(S) = det(K_S) for every subset S of that
// size. The draw is atomic: it either returns a full sample or an error,
// never a partial one.
//
// Validation and dispatch (in order):
//  1. k must be non-nil (ErrNilKernel).
//  2. StrategyName, when set, overrides Strategy (ErrUnknownStrategy for
//     names or values outside the closed set).
//  3. The draw runs on WithRand's stream when injected, otherwise on the
//     deterministic WithSeed stream (seed 0 ⇒ fixed default).
//
// Strategy errors surface unchanged: kernel.ErrUnsupportedForm when the
// strategy needs a kernel form that is not available, ErrDegenerateKernel
// on mid-draw numerical collapse.
//
// Complexity: O(N·r²) for GS, GS_bis and Chol; O(N·r³) for KuTa12 and Schur.
func Draw(k *kernel.Kernel, opts ...Option) (Sample, error) {
	// 1) Build and validate options.
	cfg := gatherOptions(opts...)

	// 2) Validate the kernel handle.
	if k == nil {
		return nil, ErrNilKernel
	}

	// 3) Resolve the strategy, by name when requested.
	st, err := resolveStrategy(cfg)
	if err != nil {
		return nil, err
	}

	// 4) Resolve the random stream.
	rng := cfg.Rand
	if rng == nil {
		rng = rngFromSeed(cfg.Seed)
	}

	// 5) Dispatch.
	return drawWith(st, k, rng)
}

// resolveStrategy applies the by-name override and rejects values outside
// the closed strategy set.
func resolveStrategy(cfg Options) (Strategy, error) {
	if cfg.StrategyName != "" {
		return ParseStrategy(cfg.StrategyName)
	}
	switch cfg.Strategy {
	case GS, GSBis, Chol, KuTa12, Schur:
		return cfg.Strategy, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(cfg.Strategy))
	}
}

// drawWith dispatches one draw over the closed strategy set.
func drawWith(st Strategy, k *kernel.Kernel, rng *rand.Rand) (Sample, error) {
	switch st {
	case GS:
		return sampleGS(k, rng)
	case GSBis:
		return sampleGSBis(k, rng)
	case Chol:
		return sampleChol(k, rng)
	case KuTa12:
		return sampleKuTa12(k, rng)
	case Schur:
		return sampleSchur(k, rng)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(st))
	}
}
