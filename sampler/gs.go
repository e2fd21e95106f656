// Package sampler - the GS strategy: incremental Gram-Schmidt sampling.
package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvldpp/kernel"
)

// sampleGS draws one exact sample by the chain rule over the eigenbasis.
//
// For every still-available item i it maintains coef[i][:t], the
// coordinates of eᵢ's projection onto the span of the directions chosen
// so far, orthonormalized by Gram-Schmidt as they are chosen. The
// conditional weight of i is then the residual squared norm
//
//	norms[i] = K_ii − ‖coef[i][:t]‖²,
//
// updated with one new coefficient per step instead of being recomputed:
//
//	coef[i][t] = (⟨Vᵢ, Vⱼ⟩ − ⟨coef[i][:t], coef[j][:t]⟩) / √norms[j],
//
// where j is the item chosen at step t. Each step costs O(N·r), the whole
// draw O(N·r²).
//
// Requires the eigen form; explicit-built kernels yield
// kernel.ErrUnsupportedForm (Chol and Schur serve that form).
func sampleGS(k *kernel.Kernel, rng *rand.Rand) (Sample, error) {
	// 1) The strategy is defined on the eigenbasis.
	v, err := k.Eigenvectors()
	if err != nil {
		return nil, err
	}

	n, r := k.Size(), k.Rank()

	// 2) Initial weights are the kernel diagonal K_ii = ‖Vᵢ‖².
	norms := rowSquaredNorms(v)
	coef := make([][]float64, n)
	avail := make([]bool, n)
	var i int
	for i = 0; i < n; i++ {
		coef[i] = make([]float64, r)
		avail[i] = true
	}

	sample := make(Sample, 0, r)
	var (
		t, j         int
		total, denom float64
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
			break // no conditional weights left to maintain
		}

		// 4) Extend every remaining coefficient row with the chosen
		//    direction and shrink its residual norm accordingly.
		denom = math.Sqrt(norms[j])
		vj := v.RawRowView(j)
		cj := coef[j][:t]
		for i = 0; i < n; i++ {
			if !avail[i] {
				continue
			}
			coef[i][t] = (floats.Dot(v.RawRowView(i), vj) - floats.Dot(coef[i][:t], cj)) / denom
			norms[i] -= coef[i][t] * coef[i][t]
		}
	}

	return sample, nil
}
