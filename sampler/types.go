// Package sampler - strategy enum, sentinel errors and sampling options.
package sampler

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
)

// Strategy identifies one of the exact sampling algorithms. The set is
// closed: dispatch is a single switch, and unknown values surface as
// ErrUnknownStrategy at sampling time, never as a silent default.
type Strategy int

const (
	// GS maintains conditional weights by incremental Gram-Schmidt over
	// the eigenbasis. O(N·r²). The default strategy.
	GS Strategy = iota

	// GSBis computes the same weights from explicit projection residuals,
	// recomputing norms each step. O(N·r²), more robust near degeneracy.
	GSBis

	// Chol grows the Cholesky factor of K_{S,S} from kernel entries.
	// O(N·r²). The only strategy native to both kernel forms.
	Chol

	// KuTa12 is the spectral two-phase sampler with per-step subspace
	// re-derivation. O(N·r³).
	KuTa12

	// Schur maintains the explicit inverse of K_{S,S} via block-inverse
	// updates. O(N·r³). Requires the explicit matrix form.
	Schur
)

// String returns the canonical strategy name as used by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case GS:
		return "GS"
	case GSBis:
		return "GS_bis"
	case Chol:
		return "Chol"
	case KuTa12:
		return "KuTa12"
	case Schur:
		return "Schur"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy resolves a canonical strategy name. Unknown names yield
// ErrUnknownStrategy; matching is exact, not case-folded.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "GS":
		return GS, nil
	case "GS_bis":
		return GSBis, nil
	case "Chol":
		return Chol, nil
	case "KuTa12":
		return KuTa12, nil
	case "Schur":
		return Schur, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Sentinel errors returned by the sampling engine.
var (
	// ErrNilKernel indicates a nil *kernel.Kernel was passed to Draw or Batch.
	ErrNilKernel = errors.New("sampler: kernel is nil")

	// ErrUnknownStrategy indicates a strategy value or name outside the
	// closed strategy set; pure input validation, surfaced immediately.
	ErrUnknownStrategy = errors.New("sampler: unknown strategy")

	// ErrDegenerateKernel indicates numerical breakdown mid-draw: every
	// remaining conditional weight collapsed to zero before r items were
	// chosen. It points at an invariant violation in the supplied kernel
	// (not a projection, wrong rank), so the draw is not retried and no
	// partial sample is returned.
	ErrDegenerateKernel = errors.New("sampler: degenerate kernel: conditional weights collapsed")

	// ErrBadCount indicates a negative draw count passed to Batch.
	ErrBadCount = errors.New("sampler: draw count must be non-negative")

	// ErrBadWorkers indicates a non-positive worker count passed to WithWorkers.
	ErrBadWorkers = errors.New("sampler: Workers must be positive")
)

// Options configures Draw and Batch.
//
// Strategy - which algorithm runs the draw. Default GS.
// StrategyName - optional by-name selection; a non-empty name takes
// precedence over Strategy and resolves at sampling time, so an unknown
// name is reported as ErrUnknownStrategy, not panicked on.
// Seed - seed of the deterministic stream; 0 selects the fixed default
// seed, so the zero Options value is reproducible.
// Rand - explicit random stream, taking precedence over Seed. Not
// goroutine-safe: Batch consumes a single value from it to derive
// independent per-draw substreams.
// Workers - Batch parallelism. Default runtime.GOMAXPROCS(0).
type Options struct {
	Strategy     Strategy
	StrategyName string
	Seed         int64
	Rand         *rand.Rand
	Workers      int
}

// Option represents a functional option for sampling invocations.
type Option func(*Options)

// WithStrategy selects the sampling algorithm by enum value.
// Values outside the closed set are reported by Draw/Batch as
// ErrUnknownStrategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithStrategyName selects the sampling algorithm by canonical name
// ("GS", "GS_bis", "Chol", "KuTa12", "Schur"). Resolution happens inside
// Draw/Batch; unknown names yield ErrUnknownStrategy.
func WithStrategyName(name string) Option {
	return func(o *Options) {
		o.StrategyName = name
	}
}

// WithSeed fixes the deterministic stream seed. Seed 0 selects the fixed
// default seed (the same stream the zero Options value uses).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects an explicit random stream, overriding WithSeed.
// The stream must not be shared with concurrent users; for Batch it only
// seeds the per-draw substream derivation.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = rng
	}
}

// WithWorkers caps Batch parallelism.
// Must pass a positive value; zero or negative cause a panic, as the
// misconfiguration is a programmer error, not a data error.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *Options) { o.Workers = w }
}

// DefaultOptions returns the Options used when no functional options are
// supplied.
//
// Defaults:
//   - Strategy:     GS.
//   - StrategyName: "" (enum value applies).
//   - Seed:         0 (fixed default stream).
//   - Rand:         nil (stream built from Seed).
//   - Workers:      runtime.GOMAXPROCS(0).
func DefaultOptions() Options {
	return Options{
		Strategy: GS,
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// gatherOptions applies the functional options on top of the defaults.
func gatherOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}
