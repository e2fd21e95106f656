// Package sampler - conditional-weight bookkeeping shared by all strategies.
package sampler

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// degenerateWeightFloor is the threshold below which a total conditional
// weight counts as collapsed. For a valid projection kernel the exact
// total at step t is r−t ≥ 1, so anything this small is breakdown, not
// rounding noise.
const degenerateWeightFloor = 1e-12

// totalWeight sums the positive part of w over available items.
// Small negative entries are floating-point drift around an exact zero
// and contribute nothing; clamping happens here, at draw time, so the
// per-strategy recurrences keep their raw values.
func totalWeight(w []float64, avail []bool) float64 {
	var total float64
	var i int
	for i = range w {
		if avail[i] && w[i] > 0 {
			total += w[i]
		}
	}

	return total
}

// drawIndex performs one categorical draw over the available items with
// probability proportional to max(w[i], 0). total must be the matching
// totalWeight result. The last positive-weight item absorbs the
// floating-point tail of the cumulative walk, so the draw always lands.
//
// Normalizing by the remaining rank, as the chain rule states the
// conditional law, is unnecessary for a proportional draw.
//
// Complexity: O(N).
func drawIndex(rng *rand.Rand, w []float64, avail []bool, total float64) int {
	u := rng.Float64() * total

	var (
		cum  float64
		last = -1
		i    int
	)
	for i = range w {
		if !avail[i] || w[i] <= 0 {
			continue
		}
		cum += w[i]
		last = i
		if u < cum {
			return i
		}
	}

	return last
}

// rowSquaredNorms returns ‖row i‖² for every row of a. For an orthonormal
// column basis these are the diagonal entries of the induced projection
// kernel, i.e. the unconditional inclusion weights.
func rowSquaredNorms(a *mat.Dense) []float64 {
	n, _ := a.Dims()
	out := make([]float64, n)
	var (
		i   int
		row []float64
	)
	for i = 0; i < n; i++ {
		row = a.RawRowView(i)
		out[i] = floats.Dot(row, row)
	}

	return out
}
