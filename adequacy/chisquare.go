// Package adequacy - the chi-square goodness-of-fit core.
package adequacy

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquare compares an observed distribution against its expectation
// with Pearson's goodness-of-fit test.
//
// Both vectors must be index-aligned, hold at least two cells, and every
// expected cell must be strictly positive (the statistic divides by it).
// The p-value is the right tail of χ² with len−1 degrees of freedom;
// small p-values mean the observation is unlikely under the expectation.
//
// Complexity: O(len).
func ChiSquare(observed, expected []float64) (Report, error) {
	// 1) Cells must align and carry at least one degree of freedom.
	if len(observed) != len(expected) {
		return Report{}, fmt.Errorf("%w: %d observed vs %d expected", ErrLengthMismatch, len(observed), len(expected))
	}
	if len(observed) < 2 {
		return Report{}, fmt.Errorf("%w: need at least two cells, got %d", ErrLengthMismatch, len(observed))
	}

	// 2) Guard the divisions.
	var (
		i int
		e float64
	)
	for i, e = range expected {
		if e <= 0 {
			return Report{}, fmt.Errorf("%w: cell %d holds %g", ErrBadExpected, i, e)
		}
	}

	// 3) Statistic and its right-tail probability.
	var (
		statistic = stat.ChiSquare(observed, expected)
		dof       = len(observed) - 1
		pValue    = distuv.ChiSquared{K: float64(dof)}.Survival(statistic)
	)

	return Report{
		Statistic:        statistic,
		PValue:           pValue,
		DegreesOfFreedom: dof,
		Observed:         observed,
		Expected:         expected,
	}, nil
}
