// Package sampler - the KuTa12 strategy: spectral two-phase sampling.
package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvldpp/kernel"
)

// sampleKuTa12 draws one exact sample with the classic spectral sampler.
//
// Phase 1 retains each eigenvector independently with probability equal
// to its eigenvalue. A projection kernel carries only unit eigenvalues,
// so the whole basis always survives and the sample size equals the
// rank; the phase stays generic because that is how the algorithm is
// defined for arbitrary spectra, and near-unit values admitted by the
// construction tolerance must behave the same way.
//
// Phase 2 chooses items sequentially, re-deriving the working subspace
// from scratch at every step instead of maintaining it incrementally:
// after choosing item j, the j-th coordinate is eliminated from the
// basis with a pivot column and the remaining columns are
// re-orthonormalized by a fresh QR factorization. Weights are the row
// squared norms of the re-derived basis. Simpler invariants than GS,
// weaker numerical guarantees, and an O(N·m²) factorization per step for
// an O(N·r³) draw.
//
// Requires the eigen form.
func sampleKuTa12(k *kernel.Kernel, rng *rand.Rand) (Sample, error) {
	// 1) Both spectral components are required.
	v, err := k.Eigenvectors()
	if err != nil {
		return nil, err
	}
	vals, err := k.Eigenvalues()
	if err != nil {
		return nil, err
	}

	n := k.Size()

	// 2) Phase 1: Bernoulli retention per eigenvalue.
	keep := make([]int, 0, len(vals))
	var c int
	for c = range vals {
		if rng.Float64() < vals[c] {
			keep = append(keep, c)
		}
	}
	m := len(keep)
	if m == 0 {
		return nil, fmt.Errorf("%w: no eigenvector retained", ErrDegenerateKernel)
	}

	// 3) The working basis holds the retained columns.
	basis := mat.NewDense(n, m, nil)
	var i int
	for c = 0; c < m; c++ {
		for i = 0; i < n; i++ {
			basis.Set(i, c, v.At(i, keep[c]))
		}
	}

	// 4) Phase 2: sequential elimination.
	norms := rowSquaredNorms(basis)
	avail := make([]bool, n)
	for i = 0; i < n; i++ {
		avail[i] = true
	}

	sample := make(Sample, 0, m)
	var (
		t, j, width int
		total       float64
	)
	for t = 0; t < m; t++ {
		// 4a) Categorical draw over the remaining items.
		total = totalWeight(norms, avail)
		if total <= degenerateWeightFloor {
			return nil, fmt.Errorf("%w: step %d of %d", ErrDegenerateKernel, t+1, m)
		}
		j = drawIndex(rng, norms, avail, total)
		sample = append(sample, j)
		avail[j] = false
		if t == m-1 {
			break
		}

		// 4b) Eliminate coordinate j and re-derive the subspace.
		width = m - t
		basis, err = eliminateCoordinate(basis, j, width)
		if err != nil {
			return nil, fmt.Errorf("%w: step %d of %d", err, t+1, m)
		}
		norms = rowSquaredNorms(basis)
	}

	return sample, nil
}

// eliminateCoordinate returns an orthonormal basis of span(basis) ∩ {x :
// x_j = 0}: the pivot column with the largest |basis[j][·]| entry is used
// to zero row j across all other columns, the pivot is dropped, and the
// survivors are re-orthonormalized. width is the current column count.
func eliminateCoordinate(basis *mat.Dense, j, width int) (*mat.Dense, error) {
	n, _ := basis.Dims()

	// 1) Pivot: the column with the largest row-j magnitude. The chosen
	//    item has positive weight, so its row cannot be all-zero.
	var (
		pivot    = -1
		best     float64
		c, i     int
		mag, rat float64
	)
	for c = 0; c < width; c++ {
		mag = math.Abs(basis.At(j, c))
		if mag > best {
			best = mag
			pivot = c
		}
	}
	if pivot < 0 || best <= degenerateWeightFloor {
		return nil, ErrDegenerateKernel
	}

	// 2) Zero row j in every other column, then drop the pivot.
	pcol := make([]float64, n)
	mat.Col(pcol, pivot, basis)
	pj := basis.At(j, pivot)

	next := mat.NewDense(n, width-1, nil)
	var w int
	for c = 0; c < width; c++ {
		if c == pivot {
			continue
		}
		rat = basis.At(j, c) / pj
		for i = 0; i < n; i++ {
			next.Set(i, w, basis.At(i, c)-rat*pcol[i])
		}
		w++
	}

	// 3) Re-orthonormalize; the column space is already correct.
	return orthonormalColumns(next), nil
}

// orthonormalColumns replaces the columns of a with an orthonormal basis
// of their span, via the economy-size Q factor of a QR factorization.
func orthonormalColumns(a *mat.Dense) *mat.Dense {
	n, c := a.Dims()

	var qr mat.QR
	qr.Factorize(a)
	var q mat.Dense
	qr.QTo(&q)

	return mat.DenseCopyOf(q.Slice(0, n, 0, c))
}
