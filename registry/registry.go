// Package registry - the campaign registry: validated append, reset,
// ordered read-back and the ground-truth kernel reconstruction.
package registry

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvldpp/kernel"
	"github.com/katalvlaran/lvldpp/sampler"
)

// Registry is the ordered, append-only store of one sampling campaign.
//
// The zero value is not usable; construct with New. All methods are safe
// for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	k       *kernel.Kernel
	samples []sampler.Sample
}

// New builds an empty registry bound to the given correlation kernel.
// The kernel supplies the ground-set size and rank every recorded sample
// is validated against.
func New(k *kernel.Kernel, opts ...Option) (*Registry, error) {
	// 1) Validate the binding.
	if k == nil {
		return nil, ErrNilKernel
	}

	// 2) Resolve options and allocate storage.
	cfg := gatherOptions(opts...)

	return &Registry{
		k:       k,
		samples: make([]sampler.Sample, 0, cfg.Capacity),
	}, nil
}

// Kernel returns the correlation kernel the registry is bound to.
func (r *Registry) Kernel() *kernel.Kernel { return r.k }

// Record validates one sample against the kernel contract and appends a
// private copy of it to the campaign sequence.
//
// Returns ErrSampleCardinality, ErrSampleRange or ErrSampleDuplicate
// (all wrapping ErrBadSample) when the sample is malformed; the registry
// is left unchanged on error.
//
// Complexity: O(r) with r the kernel rank.
func (r *Registry) Record(s sampler.Sample) error {
	// 1) Validate outside the lock; the kernel is immutable.
	if err := r.validate(s); err != nil {
		return err
	}

	// 2) Append an isolated copy.
	r.mu.Lock()
	r.samples = append(r.samples, s.Clone())
	r.mu.Unlock()

	return nil
}

// RecordAll appends a batch of samples atomically: either every sample
// passes validation and all are appended in order, or none is and the
// registry is left unchanged.
//
// Complexity: O(n·r) for n samples.
func (r *Registry) RecordAll(ss []sampler.Sample) error {
	// 1) Validate the whole batch first - all-or-nothing semantics.
	var (
		s   sampler.Sample
		i   int
		err error
	)
	for i, s = range ss {
		if err = r.validate(s); err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
	}

	// 2) Append isolated copies in input order.
	r.mu.Lock()
	for _, s = range ss {
		r.samples = append(r.samples, s.Clone())
	}
	r.mu.Unlock()

	return nil
}

// Len reports the number of recorded samples.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.samples)
}

// Reset empties the registry. Storage capacity is retained for the next
// campaign. Resetting an empty registry is a no-op.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.samples = r.samples[:0]
	r.mu.Unlock()
}

// All returns the recorded samples in recording order as a deep copy:
// mutating the result never affects the registry.
//
// Complexity: O(n·r).
func (r *Registry) All() []sampler.Sample {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sampler.Sample, len(r.samples))
	var i int
	for i = range r.samples {
		out[i] = r.samples[i].Clone()
	}

	return out
}

// EmpiricalKernel reconstructs the dense correlation matrix K = V·Vᵗ of
// an eigenbasis-built kernel. Despite the name (inherited from the DPP
// literature's self-consistency checks), the result characterizes the
// theoretical kernel, independent of the recorded samples; adequacy code
// uses it as ground truth.
//
// The product is computed once and cached inside the kernel. Returns
// kernel.ErrUnsupportedForm when the campaign kernel was built from an
// explicit matrix, which carries no eigenbasis to reconstruct from.
func (r *Registry) EmpiricalKernel() (*mat.Dense, error) {
	// 1) Only an eigenbasis can be multiplied out.
	if !r.k.HasEigenbasis() {
		return nil, fmt.Errorf("%w: empirical kernel needs an eigenbasis", kernel.ErrUnsupportedForm)
	}

	// 2) Fill the cache (idempotent) and hand out a copy.
	r.k.Materialize()

	return r.k.Explicit()
}

// validate checks one sample against the kernel contract.
func (r *Registry) validate(s sampler.Sample) error {
	// 1) Exact cardinality: a projection DPP draws rank-many items.
	if len(s) != r.k.Rank() {
		return fmt.Errorf("%w: got %d, want %d", ErrSampleCardinality, len(s), r.k.Rank())
	}

	// 2) Range and distinctness in one pass.
	var (
		n    = r.k.Size()
		seen = make(map[int]struct{}, len(s))
		idx  int
	)
	for _, idx = range s {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: index %d with N = %d", ErrSampleRange, idx, n)
		}
		if _, dup := seen[idx]; dup {
			return fmt.Errorf("%w: index %d", ErrSampleDuplicate, idx)
		}
		seen[idx] = struct{}{}
	}

	return nil
}
