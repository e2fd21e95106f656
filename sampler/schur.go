// Package sampler - the Schur strategy: maintained submatrix inverse.
package sampler

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvldpp/kernel"
)

// sampleSchur draws one exact sample straight off the explicit kernel
// matrix, never touching eigenvectors. It maintains inv = (K_{S,S})⁻¹
// for the chosen set S and evaluates every candidate weight as the Schur
// complement
//
//	w(i) = K_ii − K_{i,S}·inv·K_{S,i},
//
// an O(t²) quadratic form per candidate at step t. After choosing j, inv
// grows by the block-inverse formula: with b = K_{S,j}, y = inv·b and
// s = w(j) (the complement of the chosen item, strictly positive for a
// drawable item),
//
//	inv′ = ⎡ inv + y·yᵗ/s   −y/s ⎤
//	       ⎣    −yᵗ/s        1/s ⎦.
//
// Weights are recomputed from inv each step rather than downdated, which
// makes the draw O(N·r³): the costliest strategy, kept for its direct
// correspondence with the chain-rule formula.
//
// Requires the explicit matrix; an eigen-built kernel yields
// kernel.ErrUnsupportedForm until its kernel.Materialize is called.
func sampleSchur(k *kernel.Kernel, rng *rand.Rand) (Sample, error) {
	// 1) Explicit form required; Materialize is the caller's recovery path.
	km, err := k.Explicit()
	if err != nil {
		return nil, err
	}

	n, r := k.Size(), k.Rank()

	w := make([]float64, n)
	x := make([]float64, r)
	avail := make([]bool, n)
	var i int
	for i = 0; i < n; i++ {
		avail[i] = true
	}

	sample := make(Sample, 0, r)
	inv := make([][]float64, 0, r)
	var (
		t, j, a   int
		total, sc float64
	)
	for t = 0; t < r; t++ {
		// 2) Conditional weights given the chosen set, from the
		//    maintained inverse.
		for i = 0; i < n; i++ {
			if !avail[i] {
				continue
			}
			if t == 0 {
				w[i] = km.At(i, i)
				continue
			}
			for a = 0; a < t; a++ {
				x[a] = km.At(sample[a], i)
			}
			w[i] = km.At(i, i) - quadForm(inv, x[:t])
		}

		// 3) Categorical draw over the remaining items.
		total = totalWeight(w, avail)
		if total <= degenerateWeightFloor {
			return nil, fmt.Errorf("%w: step %d of %d", ErrDegenerateKernel, t+1, r)
		}
		j = drawIndex(rng, w, avail, total)

		// 4) Grow the inverse with the chosen item's Schur complement.
		if t < r-1 {
			sc = w[j]
			if sc <= degenerateWeightFloor {
				return nil, fmt.Errorf("%w: vanishing Schur complement at step %d", ErrDegenerateKernel, t+1)
			}
			b := make([]float64, t)
			for a = 0; a < t; a++ {
				b[a] = km.At(sample[a], j)
			}
			inv = growInverse(inv, b, sc)
		}

		sample = append(sample, j)
		avail[j] = false
	}

	return sample, nil
}

// growInverse extends the t×t inverse of K_{S,S} to the (t+1)×(t+1)
// inverse of K_{S∪{j},S∪{j}} given b = K_{S,j} and the Schur complement
// sc = K_jj − bᵗ·inv·b.
func growInverse(inv [][]float64, b []float64, sc float64) [][]float64 {
	t := len(inv)
	y := make([]float64, t)
	var a, c int
	for a = 0; a < t; a++ {
		y[a] = floats.Dot(inv[a], b)
	}

	next := make([][]float64, t+1)
	for a = 0; a < t; a++ {
		next[a] = make([]float64, t+1)
		for c = 0; c < t; c++ {
			next[a][c] = inv[a][c] + y[a]*y[c]/sc
		}
		next[a][t] = -y[a] / sc
	}
	next[t] = make([]float64, t+1)
	for c = 0; c < t; c++ {
		next[t][c] = -y[c] / sc
	}
	next[t][t] = 1 / sc

	return next
}

// quadForm returns xᵗ·a·x for a square slice matrix a.
func quadForm(a [][]float64, x []float64) float64 {
	var (
		q float64
		i int
	)
	for i = range a {
		q += x[i] * floats.Dot(a[i], x)
	}

	return q
}
