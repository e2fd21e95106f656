// Package kernel - the Kernel type: construction, validation and read access.
package kernel

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Kernel is an orthogonal-projection correlation kernel over the ground
// set {0, …, N−1}, held in exactly one construction form:
//
//   - explicit: the dense N×N matrix K itself (NewExplicit);
//   - eigen:    an N×r matrix V with orthonormal columns plus its unit
//     eigenvalue vector, K = V·Vᵗ (NewEigen).
//
// The kernel exclusively owns its backing buffers: constructors copy
// their inputs, accessors return fresh copies, and no mutation surface
// exists after construction. The only internal write is the cached
// explicit matrix a Materialize call derives from the eigenbasis, guarded
// by mu. Safe for concurrent use.
type Kernel struct {
	n   int
	r   int
	eps float64

	vecs *mat.Dense // N×r eigenbasis; nil for explicit-built kernels
	vals []float64  // eigenvalues as validated; nil for explicit-built kernels

	mu       sync.RWMutex // guards explicit
	explicit *mat.Dense   // dense N×N form; set at construction or by Materialize
}

// NewExplicit builds a Kernel from a dense symmetric projection matrix m.
// The matrix is copied; the caller keeps ownership of m.
//
// Validation (in order):
//  1. m must be non-nil (ErrNilInput).
//  2. m must be square (ErrNonSquare).
//  3. every entry must be finite (ErrNaNInf).
//  4. m must equal its transpose within Epsilon (ErrAsymmetric).
//  5. diagonal entries must lie in [0, 1] within Epsilon (ErrBadDiagonal).
//  6. trace(m) must be within traceTolerance of an integer r with
//     1 ≤ r ≤ N; r becomes the kernel rank (ErrBadRank).
//
// Idempotence (K² = K) is an assumed invariant, not re-verified here: the
// O(N³) check would dominate construction, and a violation surfaces at
// sampling time as a degenerate-weight failure.
//
// Complexity: O(N²).
func NewExplicit(m mat.Matrix, opts ...Option) (*Kernel, error) {
	// 1) Resolve options.
	cfg := gatherOptions(opts...)

	// 2) Validate presence.
	if m == nil {
		return nil, fmt.Errorf("%w: explicit matrix is nil", ErrNilInput)
	}

	// 3) Validate shape.
	rows, cols := m.Dims()
	if rows != cols {
		return nil, fmt.Errorf("%w: got %d×%d", ErrNonSquare, rows, cols)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: explicit matrix is empty", ErrNilInput)
	}

	// 4) Copy once; all further checks read the private copy.
	km := mat.DenseCopyOf(m)

	// 5) Validate finiteness of every entry.
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if !isFinite(km.At(i, j)) {
				return nil, fmt.Errorf("%w: entry (%d, %d)", ErrNaNInf, i, j)
			}
		}
	}

	// 6) Validate symmetry within tolerance.
	if !mat.EqualApprox(km, km.T(), cfg.Epsilon) {
		return nil, ErrAsymmetric
	}

	// 7) Validate the diagonal range and accumulate the trace.
	var trace, d float64
	for i = 0; i < rows; i++ {
		d = km.At(i, i)
		if d < -cfg.Epsilon || d > 1+cfg.Epsilon {
			return nil, fmt.Errorf("%w: K[%d][%d] = %g", ErrBadDiagonal, i, i, d)
		}
		trace += d
	}

	// 8) Derive the rank from the trace; a projection kernel has
	//    trace(K) = r exactly, so a far-from-integer trace is bad input.
	r := int(math.Round(trace))
	if math.Abs(trace-float64(r)) > traceTolerance {
		return nil, fmt.Errorf("%w: trace %g is not near an integer", ErrBadRank, trace)
	}
	if r < 1 || r > rows {
		return nil, fmt.Errorf("%w: trace %g, N = %d", ErrBadRank, trace, rows)
	}

	return &Kernel{n: rows, r: r, eps: cfg.Epsilon, explicit: km}, nil
}

// NewEigen builds a Kernel from the eigen-decomposition of a projection
// matrix: eigVals of length r (all ≈ 1) and eigVecs, an N×r matrix whose
// columns are the corresponding orthonormal eigenvectors. Both inputs are
// copied; the caller keeps ownership.
//
// Validation (in order):
//  1. eigVecs must be non-nil and eigVals non-empty (ErrNilInput).
//  2. cols(eigVecs) must equal len(eigVals), with 1 ≤ r ≤ N (ErrBadRank).
//  3. every entry of both inputs must be finite (ErrNaNInf).
//  4. |λᵢ − 1| ≤ Epsilon for every eigenvalue (ErrBadEigenvalues).
//  5. VᵗV must equal I_r within Epsilon (ErrNonOrthonormal).
//
// Complexity: O(N·r²), dominated by the orthonormality check.
func NewEigen(eigVals []float64, eigVecs mat.Matrix, opts ...Option) (*Kernel, error) {
	// 1) Resolve options.
	cfg := gatherOptions(opts...)

	// 2) Validate presence.
	if eigVecs == nil {
		return nil, fmt.Errorf("%w: eigenvector matrix is nil", ErrNilInput)
	}
	if len(eigVals) == 0 {
		return nil, fmt.Errorf("%w: eigenvalue vector is empty", ErrNilInput)
	}

	// 3) Validate dimensions.
	n, r := eigVecs.Dims()
	if r != len(eigVals) {
		return nil, fmt.Errorf("%w: %d eigenvalues for %d eigenvectors", ErrBadRank, len(eigVals), r)
	}
	if r < 1 || r > n {
		return nil, fmt.Errorf("%w: r = %d, N = %d", ErrBadRank, r, n)
	}

	// 4) Copy both inputs.
	v := mat.DenseCopyOf(eigVecs)
	vals := make([]float64, r)
	copy(vals, eigVals)

	// 5) Validate finiteness and unit eigenvalues.
	var i, j int
	for i = 0; i < r; i++ {
		if !isFinite(vals[i]) {
			return nil, fmt.Errorf("%w: eigenvalue %d", ErrNaNInf, i)
		}
		if math.Abs(vals[i]-1) > cfg.Epsilon {
			return nil, fmt.Errorf("%w: λ[%d] = %g", ErrBadEigenvalues, i, vals[i])
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < r; j++ {
			if !isFinite(v.At(i, j)) {
				return nil, fmt.Errorf("%w: eigenvector entry (%d, %d)", ErrNaNInf, i, j)
			}
		}
	}

	// 6) Validate orthonormality: the Gram matrix VᵗV must be I_r.
	var gram mat.Dense
	gram.Mul(v.T(), v)
	var want float64
	for i = 0; i < r; i++ {
		for j = 0; j < r; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(gram.At(i, j)-want) > cfg.Epsilon {
				return nil, fmt.Errorf("%w: (VᵗV)[%d][%d] = %g", ErrNonOrthonormal, i, j, gram.At(i, j))
			}
		}
	}

	return &Kernel{n: n, r: r, eps: cfg.Epsilon, vecs: v, vals: vals}, nil
}

// Size returns N, the number of ground-set items.
func (k *Kernel) Size() int { return k.n }

// Rank returns r, the projection rank and the exact cardinality of every
// sample drawn from this kernel.
func (k *Kernel) Rank() int { return k.r }

// Epsilon returns the validation tolerance the kernel was built with.
func (k *Kernel) Epsilon() float64 { return k.eps }

// HasEigenbasis reports whether the kernel was built from an
// eigen-decomposition.
func (k *Kernel) HasEigenbasis() bool { return k.vecs != nil }

// HasExplicit reports whether the dense matrix form is available, either
// from construction or from a prior Materialize call.
func (k *Kernel) HasExplicit() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()

	return k.explicit != nil
}

// At returns the kernel entry K(i, j), or ErrIndexOutOfRange.
// The eigen form computes ⟨Vᵢ, Vⱼ⟩ on the fly; the explicit form reads
// the stored entry. Never locks: both backing buffers are immutable.
//
// Complexity: O(r) eigen form, O(1) explicit form.
func (k *Kernel) At(i, j int) (float64, error) {
	if i < 0 || i >= k.n || j < 0 || j >= k.n {
		return 0, fmt.Errorf("%w: (%d, %d) outside [0, %d)", ErrIndexOutOfRange, i, j, k.n)
	}
	if k.vecs != nil {
		return floats.Dot(k.vecs.RawRowView(i), k.vecs.RawRowView(j)), nil
	}

	return k.explicit.At(i, j), nil
}

// Diag returns a fresh copy of the kernel diagonal; entry i is the
// singleton inclusion probability P(i ∈ sample).
//
// Complexity: O(N·r) eigen form, O(N) explicit form.
func (k *Kernel) Diag() []float64 {
	d := make([]float64, k.n)
	var i int
	if k.vecs != nil {
		var row []float64
		for i = 0; i < k.n; i++ {
			row = k.vecs.RawRowView(i)
			d[i] = floats.Dot(row, row)
		}

		return d
	}
	for i = 0; i < k.n; i++ {
		d[i] = k.explicit.At(i, i)
	}

	return d
}

// Column returns a fresh copy of kernel column j, or ErrIndexOutOfRange.
//
// Complexity: O(N·r) eigen form, O(N) explicit form.
func (k *Kernel) Column(j int) ([]float64, error) {
	if j < 0 || j >= k.n {
		return nil, fmt.Errorf("%w: column %d outside [0, %d)", ErrIndexOutOfRange, j, k.n)
	}
	col := make([]float64, k.n)
	var i int
	if k.vecs != nil {
		vj := k.vecs.RawRowView(j)
		for i = 0; i < k.n; i++ {
			col[i] = floats.Dot(k.vecs.RawRowView(i), vj)
		}

		return col, nil
	}
	mat.Col(col, j, k.explicit)

	return col, nil
}

// Submatrix returns the principal submatrix K_S for the index set s as a
// dense copy. Indices must be distinct and within [0, N); s must be
// non-empty.
//
// Complexity: O(|s|²·r) eigen form, O(|s|²) explicit form.
func (k *Kernel) Submatrix(s []int) (*mat.Dense, error) {
	if err := k.checkSubset(s, false); err != nil {
		return nil, err
	}

	m := len(s)
	sub := mat.NewDense(m, m, nil)
	var i, j int
	var v float64
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			v, _ = k.At(s[i], s[j]) // indices validated above
			sub.Set(i, j, v)
		}
	}

	return sub, nil
}

// MinorDet returns det(K_S), the probability that the fixed subset s is
// contained in a sample. The empty subset has determinant 1 by the usual
// convention (every sample contains ∅).
//
// Complexity: O(|s|²·r + |s|³) eigen form, O(|s|³) explicit form.
func (k *Kernel) MinorDet(s []int) (float64, error) {
	if err := k.checkSubset(s, true); err != nil {
		return 0, err
	}
	if len(s) == 0 {
		return 1, nil
	}

	sub, err := k.Submatrix(s)
	if err != nil {
		return 0, err
	}

	return mat.Det(sub), nil
}

// Eigenvectors returns a fresh copy of the N×r eigenvector matrix V.
// Returns ErrUnsupportedForm when the kernel was built from an explicit
// matrix: the eigenbasis is never derived from the dense form.
func (k *Kernel) Eigenvectors() (*mat.Dense, error) {
	if k.vecs == nil {
		return nil, fmt.Errorf("%w: kernel was built from an explicit matrix", ErrUnsupportedForm)
	}

	return mat.DenseCopyOf(k.vecs), nil
}

// Eigenvalues returns a fresh copy of the eigenvalue vector as validated
// at construction. Returns ErrUnsupportedForm for explicit-built kernels.
func (k *Kernel) Eigenvalues() ([]float64, error) {
	if k.vals == nil {
		return nil, fmt.Errorf("%w: kernel was built from an explicit matrix", ErrUnsupportedForm)
	}
	vals := make([]float64, len(k.vals))
	copy(vals, k.vals)

	return vals, nil
}

// Materialize derives the dense matrix K = V·Vᵗ from the eigenbasis and
// caches it for the lifetime of the kernel. Idempotent; a no-op when the
// explicit form already exists (in particular for explicit-built kernels).
//
// Complexity: O(N²·r) on the first call, O(1) afterwards.
func (k *Kernel) Materialize() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.explicit != nil {
		return
	}

	var km mat.Dense
	km.Mul(k.vecs, k.vecs.T())
	k.explicit = &km
}

// Explicit returns a fresh copy of the dense N×N matrix form. Returns
// ErrUnsupportedForm when the kernel was built from an eigenbasis and
// Materialize has not been called yet; Materialize is the recovery path.
func (k *Kernel) Explicit() (*mat.Dense, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.explicit == nil {
		return nil, fmt.Errorf("%w: explicit matrix not materialized", ErrUnsupportedForm)
	}

	return mat.DenseCopyOf(k.explicit), nil
}

// checkSubset validates a subset argument: every index in range and no
// duplicates. allowEmpty relaxes the non-empty requirement for callers
// with a defined empty-subset convention.
func (k *Kernel) checkSubset(s []int, allowEmpty bool) error {
	if len(s) == 0 && !allowEmpty {
		return ErrEmptySubset
	}

	seen := make(map[int]struct{}, len(s))
	var idx int
	for _, idx = range s {
		if idx < 0 || idx >= k.n {
			return fmt.Errorf("%w: %d outside [0, %d)", ErrIndexOutOfRange, idx, k.n)
		}
		if _, dup := seen[idx]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateIndex, idx)
		}
		seen[idx] = struct{}{}
	}

	return nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
