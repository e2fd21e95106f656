// Package kernel - random projection-kernel generation for experiments.
package kernel

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// defaultRandomSeed seeds the stream used when RandomProjection receives
// a nil rng. Arbitrary but stable, so defaults stay reproducible.
const defaultRandomSeed int64 = 1

// RandomProjection builds a rank-r projection kernel in eigen form over n
// items: the eigenbasis is the economy-size Q factor of an n×rank matrix
// with independent standard Gaussian entries, so its columns span a
// uniformly random r-dimensional subspace.
//
// rng may be nil, in which case a fixed deterministic stream is used.
// The result passes the full NewEigen validation.
//
// Complexity: O(n·rank²).
func RandomProjection(n, rank int, rng *rand.Rand) (*Kernel, error) {
	// 1) Validate the requested shape.
	if rank < 1 || rank > n {
		return nil, fmt.Errorf("%w: r = %d, N = %d", ErrBadRank, rank, n)
	}

	// 2) Resolve the random stream (nil ⇒ fixed default seed).
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRandomSeed))
	}

	// 3) Fill an n×rank matrix with standard Gaussian entries.
	data := make([]float64, n*rank)
	var i int
	for i = range data {
		data[i] = rng.NormFloat64()
	}
	g := mat.NewDense(n, rank, data)

	// 4) Orthonormalize via QR; the first rank columns of the full Q
	//    factor are the economy-size orthonormal basis of col(g).
	var qr mat.QR
	qr.Factorize(g)
	var q mat.Dense
	qr.QTo(&q)
	v := mat.DenseCopyOf(q.Slice(0, n, 0, rank))

	// 5) Unit eigenvalues: the subspace is a projector's range.
	ones := make([]float64, rank)
	for i = range ones {
		ones[i] = 1
	}

	return NewEigen(ones, v)
}
