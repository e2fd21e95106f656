// Package adequacy - sentinel errors, verdict report and test options.
package adequacy

import (
	"errors"
	"math/rand"
)

// Defaults of the adequacy checks.
const (
	// DefaultPairCount is the number of random doubletons examined by
	// Doubleton when WithPairCount is not supplied. Ten pairs keep the
	// test cheap while still spanning several co-occurrence scales.
	DefaultPairCount = 10

	// DefaultAlpha is the conventional significance level passed to
	// Report.Adequate.
	DefaultAlpha = 0.05

	// defaultRNGSeed seeds the pair draw when neither WithSeed nor
	// WithRand is supplied, keeping reports reproducible by default.
	defaultRNGSeed int64 = 1
)

// Sentinel errors returned by the adequacy checks.
var (
	// ErrNilRegistry indicates a nil campaign registry.
	ErrNilRegistry = errors.New("adequacy: registry must not be nil")

	// ErrNoSamples indicates an empty campaign; frequencies are undefined
	// without at least one recorded sample.
	ErrNoSamples = errors.New("adequacy: registry holds no samples")

	// ErrBadGroundSet indicates a non-positive ground-set size, or a
	// ground set too small for the requested check.
	ErrBadGroundSet = errors.New("adequacy: ground set too small")

	// ErrIndexOutOfRange indicates a pooled sample index outside [0, N).
	ErrIndexOutOfRange = errors.New("adequacy: sample index outside the ground set")

	// ErrLengthMismatch indicates observed and expected vectors of
	// different lengths, or fewer than two cells.
	ErrLengthMismatch = errors.New("adequacy: observed and expected cells do not align")

	// ErrBadExpected indicates a non-positive expected cell; the
	// chi-square statistic divides by each expected value.
	ErrBadExpected = errors.New("adequacy: expected cell must be positive")

	// ErrBadPairCount indicates a non-positive count passed to WithPairCount.
	ErrBadPairCount = errors.New("adequacy: PairCount must be positive")
)

// Report is the outcome of one goodness-of-fit comparison.
type Report struct {
	// Statistic is the chi-square statistic Σ (obs−exp)²/exp.
	Statistic float64

	// PValue is the right-tail probability of Statistic under the
	// χ² distribution with DegreesOfFreedom.
	PValue float64

	// DegreesOfFreedom is the cell count minus one.
	DegreesOfFreedom int

	// Observed and Expected are the compared cells, index-aligned.
	Observed []float64
	Expected []float64
}

// Adequate reports whether the observed distribution is statistically
// compatible with the expected one at significance level alpha
// (conventionally DefaultAlpha): the fit is rejected only when the
// p-value drops to alpha or below.
func (r Report) Adequate(alpha float64) bool { return r.PValue > alpha }

// Options configures the randomized adequacy checks.
//
// PairCount - number of doubletons drawn by Doubleton. Must be ≥ 1.
// Default is DefaultPairCount.
// Seed - seed of the pair draw; 0 selects the fixed default seed.
// Rand - explicit random stream; takes precedence over Seed.
type Options struct {
	PairCount int
	Seed      int64
	Rand      *rand.Rand
}

// Option represents a functional option for the adequacy checks.
type Option func(*Options)

// WithPairCount overrides the number of doubletons examined.
// Must pass a positive value; anything else causes a panic, as the
// misconfiguration is a programmer error, not a data error.
func WithPairCount(n int) Option {
	if n < 1 {
		panic(ErrBadPairCount.Error())
	}

	return func(o *Options) { o.PairCount = n }
}

// WithSeed fixes the seed of the pair draw. Zero selects the default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects an explicit random stream for the pair draw, taking
// precedence over WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// DefaultOptions returns the Options used when no functional options are
// supplied.
//
// Defaults:
//   - PairCount: DefaultPairCount,
//   - Seed: 0 (fixed default seed),
//   - Rand: nil.
func DefaultOptions() Options {
	return Options{PairCount: DefaultPairCount, Seed: 0, Rand: nil}
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

// resolveRNG returns the stream the pair draw will consume.
func resolveRNG(cfg Options) *rand.Rand {
	if cfg.Rand != nil {
		return cfg.Rand
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
