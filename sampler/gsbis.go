// Package sampler - the GS_bis strategy: explicit projection residuals.
package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvldpp/kernel"
)

// sampleGSBis draws one exact sample from the same chain rule as GS, but
// through explicit residuals: it keeps a mutable copy of the eigenbasis
// rows and, after choosing item j, subtracts from every remaining row its
// component along the normalized chosen row
//
//	Vᵢ ← Vᵢ − ⟨Vᵢ, V̂ⱼ⟩·V̂ⱼ,   V̂ⱼ = Vⱼ / ‖Vⱼ‖.
//
// Conditional weights are the residual norms recomputed from the rows
// each step, not maintained by subtraction. That costs an extra O(N·r)
// pass per step over GS, and buys a different numerical profile: near a
// degenerate subspace the weight is measured directly off the residual
// vector instead of accumulating cancellation error. Total cost O(N·r²).
//
// Requires the eigen form.
func sampleGSBis(k *kernel.Kernel, rng *rand.Rand) (Sample, error) {
	// 1) Private mutable copy of the eigenbasis rows.
	v, err := k.Eigenvectors()
	if err != nil {
		return nil, err
	}

	n, r := k.Size(), k.Rank()

	// 2) Initial weights are the row norms ‖Vᵢ‖² = K_ii.
	norms := rowSquaredNorms(v)
	avail := make([]bool, n)
	var i int
	for i = 0; i < n; i++ {
		avail[i] = true
	}

	sample := make(Sample, 0, r)
	vj := make([]float64, r)
	var (
		t, j  int
		total float64
		row   []float64
	)
	for t = 0; t < r; t++ {
		// 3) Categorical draw over the remaining items.
		total = totalWeight(norms, avail)
		if total <= degenerateWeightFloor {
			return nil, fmt.Errorf("%w: step %d of %d", ErrDegenerateKernel, t+1, r)
		}
		j = drawIndex(rng, norms, avail, total)
		sample = append(sample, j)
		avail[j] = false
		if t == r-1 {
			break
		}

		// 4) Normalize the chosen residual row.
		copy(vj, v.RawRowView(j))
		floats.Scale(1/math.Sqrt(norms[j]), vj)

		// 5) Project it out of every remaining row; weights come fresh
		//    from the updated rows.
		for i = 0; i < n; i++ {
			if !avail[i] {
				continue
			}
			row = v.RawRowView(i)
			floats.AddScaled(row, -floats.Dot(row, vj), vj)
			norms[i] = floats.Dot(row, row)
		}
	}

	return sample, nil
}
