// Package kernel - sentinel errors, numeric policy and construction options.
package kernel

import (
	"errors"
	"fmt"
	"math"
)

// Numeric policy shared by all construction-time validators.
const (
	// DefaultEpsilon bounds the absolute deviation tolerated by the
	// symmetry, orthonormality, eigenvalue and diagonal-range checks.
	// Loose enough for eigenbases produced by floating-point
	// decompositions, tight enough to reject genuinely broken input.
	DefaultEpsilon = 1e-8

	// traceTolerance bounds |trace(K) − round(trace(K))| for explicit
	// matrices. A projection kernel has integer trace equal to its rank.
	traceTolerance = 1e-6
)

// Sentinel errors returned by kernel construction and accessors.
//
// Every construction-time failure wraps ErrKernelConfig, so callers may
// match the whole class with errors.Is(err, ErrKernelConfig) or a precise
// cause with the specific sentinel.
var (
	// ErrKernelConfig is the umbrella for malformed kernel input,
	// detected eagerly at construction and never deferred to sampling.
	ErrKernelConfig = errors.New("kernel: invalid kernel configuration")

	// ErrNilInput indicates a nil matrix or an empty eigenvalue vector.
	ErrNilInput = fmt.Errorf("%w: nil or empty input", ErrKernelConfig)

	// ErrNonSquare indicates an explicit matrix with rows ≠ cols.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrKernelConfig)

	// ErrAsymmetric indicates an explicit matrix that differs from its
	// transpose beyond Epsilon.
	ErrAsymmetric = fmt.Errorf("%w: matrix is not symmetric", ErrKernelConfig)

	// ErrBadDiagonal indicates a diagonal entry outside [0, 1] beyond
	// Epsilon; inclusion probabilities cannot leave that range.
	ErrBadDiagonal = fmt.Errorf("%w: diagonal entry outside [0, 1]", ErrKernelConfig)

	// ErrNonOrthonormal indicates eigenvector columns with VᵗV deviating
	// from the identity beyond Epsilon.
	ErrNonOrthonormal = fmt.Errorf("%w: eigenvector columns are not orthonormal", ErrKernelConfig)

	// ErrBadEigenvalues indicates an eigenvalue differing from one beyond
	// Epsilon; a projection kernel restricted to its range has only unit
	// eigenvalues.
	ErrBadEigenvalues = fmt.Errorf("%w: eigenvalues must all equal one", ErrKernelConfig)

	// ErrBadRank indicates a rank outside 1 ≤ r ≤ N, or an explicit
	// matrix whose trace is not within traceTolerance of an integer.
	ErrBadRank = fmt.Errorf("%w: rank must be an integer with 1 ≤ r ≤ N", ErrKernelConfig)

	// ErrNaNInf indicates a NaN or ±Inf entry in the input.
	ErrNaNInf = fmt.Errorf("%w: input contains NaN or Inf", ErrKernelConfig)

	// ErrUnsupportedForm is returned when an accessor needs a kernel form
	// (explicit matrix or eigenbasis) the kernel does not currently hold.
	// The explicit matrix of an eigen-built kernel can be derived on
	// demand with Materialize; the reverse derivation is not offered.
	ErrUnsupportedForm = errors.New("kernel: kernel form not available")

	// ErrIndexOutOfRange indicates an item index outside [0, N).
	ErrIndexOutOfRange = errors.New("kernel: index out of range")

	// ErrDuplicateIndex indicates a repeated index in a subset argument.
	ErrDuplicateIndex = errors.New("kernel: duplicate index in subset")

	// ErrEmptySubset indicates an empty subset where at least one index
	// is required.
	ErrEmptySubset = errors.New("kernel: subset is empty")

	// ErrBadEpsilon indicates a non-positive tolerance passed to WithEpsilon.
	ErrBadEpsilon = errors.New("kernel: Epsilon must be positive")
)

// Options configures construction-time validation.
//
// Epsilon - absolute tolerance used by the symmetry, orthonormality,
// eigenvalue and diagonal-range checks. Must be > 0.
// Default is DefaultEpsilon.
type Options struct {
	Epsilon float64
}

// Option represents a functional option for kernel construction.
type Option func(*Options)

// WithEpsilon overrides the validation tolerance.
// Must pass a positive finite value; anything else causes a panic, as the
// misconfiguration is a programmer error, not a data error.
func WithEpsilon(eps float64) Option {
	if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(ErrBadEpsilon.Error())
	}

	return func(o *Options) { o.Epsilon = eps }
}

// DefaultOptions returns the Options used when no functional options are
// supplied.
//
// Defaults:
//   - Epsilon: DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
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
