// Package registry - sentinel errors and construction options.
package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by registry construction and recording.
//
// Every recording-time failure wraps ErrBadSample, so callers may match
// the whole class with errors.Is(err, ErrBadSample) or a precise cause
// with the specific sentinel.
var (
	// ErrNilKernel indicates a nil correlation kernel passed to New.
	ErrNilKernel = errors.New("registry: correlation kernel must not be nil")

	// ErrBadSample is the umbrella for a recorded sample that violates
	// the kernel contract.
	ErrBadSample = errors.New("registry: sample violates the kernel contract")

	// ErrSampleCardinality indicates a sample whose size differs from the
	// kernel rank; a projection DPP draws exactly r items.
	ErrSampleCardinality = fmt.Errorf("%w: cardinality differs from kernel rank", ErrBadSample)

	// ErrSampleRange indicates a sample index outside [0, N).
	ErrSampleRange = fmt.Errorf("%w: index out of range", ErrBadSample)

	// ErrSampleDuplicate indicates a repeated index inside one sample.
	ErrSampleDuplicate = fmt.Errorf("%w: duplicate index", ErrBadSample)

	// ErrBadCapacity indicates a negative capacity passed to WithCapacity.
	ErrBadCapacity = errors.New("registry: Capacity must be non-negative")
)

// Options configures registry construction.
//
// Capacity - initial storage capacity, in samples. Useful when the
// campaign size is known in advance. Must be ≥ 0. Default is 0.
type Options struct {
	Capacity int
}

// Option represents a functional option for registry construction.
type Option func(*Options)

// WithCapacity pre-allocates storage for the given number of samples.
// Must pass a non-negative value; a negative one causes a panic, as the
// misconfiguration is a programmer error, not a data error.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(ErrBadCapacity.Error())
	}

	return func(o *Options) { o.Capacity = n }
}

// DefaultOptions returns the Options used when no functional options are
// supplied.
//
// Defaults:
//   - Capacity: 0.
func DefaultOptions() Options {
	return Options{Capacity: 0}
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
