// Package sampler - the Chol strategy: sequential Cholesky sampling.
package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvldpp/kernel"
)

// sampleChol draws one exact sample by growing the lower Cholesky factor
// of K_{S,S} one row per chosen item. factor[i][:t] holds, for every item
// i, the forward-solve of K_{i,S} against the current factor; the rows of
// the chosen items stacked in order ARE chol(K_{S,S}). The conditional
// weight of item i is then
//
//	d[i] = K_ii − ‖factor[i][:t]‖²,
//
// maintained as a rank-1 update per step: after choosing j,
//
//	factor[i][t] = (K_{i,j} − ⟨factor[i][:t], factor[j][:t]⟩) / √d[j].
//
// Each step reads one kernel column and costs O(N·r); the draw O(N·r²).
//
// The recurrence consumes kernel entries only, so Chol is the one
// strategy native to both construction forms; the eigen form computes
// its entries as ⟨Vᵢ, Vⱼ⟩ without materializing the matrix.
func sampleChol(k *kernel.Kernel, rng *rand.Rand) (Sample, error) {
	n, r := k.Size(), k.Rank()

	// 1) Conditional weights start at the kernel diagonal.
	d := k.Diag()
	factor := make([][]float64, n)
	avail := make([]bool, n)
	var i int
	for i = 0; i < n; i++ {
		factor[i] = make([]float64, r)
		avail[i] = true
	}

	sample := make(Sample, 0, r)
	var (
		t, j         int
		total, denom float64
		col          []float64
		err          error
	)
	for t = 0; t < r; t++ {
		// 2) Categorical draw over the remaining items.
		total = totalWeight(d, avail)
		if total <= degenerateWeightFloor {
			return nil, fmt.Errorf("%w: step %d of %d", ErrDegenerateKernel, t+1, r)
		}
		j = drawIndex(rng, d, avail, total)
		sample = append(sample, j)
		avail[j] = false
		if t == r-1 {
			break
		}

		// 3) Append one column to the factor and downdate the weights.
		col, err = k.Column(j)
		if err != nil {
			return nil, err
		}
		denom = math.Sqrt(d[j])
		fj := factor[j][:t]
		for i = 0; i < n; i++ {
			if !avail[i] {
				continue
			}
			factor[i][t] = (col[i] - floats.Dot(factor[i][:t], fj)) / denom
			d[i] -= factor[i][t] * factor[i][t]
		}
	}

	return sample, nil
}
