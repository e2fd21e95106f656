// Package adequacy - singleton and doubleton inclusion checks against the
// theoretical marginals of a projection DPP.
package adequacy

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvldpp/registry"
	"github.com/katalvlaran/lvldpp/sampler"
)

// Histogram pools every index of every sample into per-item counts over
// the ground set [0, n).
//
// Complexity: O(draws·r).
func Histogram(ss []sampler.Sample, n int) ([]int, error) {
	// 1) Validate the ground set.
	if n < 1 {
		return nil, fmt.Errorf("%w: N = %d", ErrBadGroundSet, n)
	}

	// 2) Pool.
	var (
		counts = make([]int, n)
		s      sampler.Sample
		idx    int
	)
	for _, s = range ss {
		for _, idx = range s {
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("%w: index %d with N = %d", ErrIndexOutOfRange, idx, n)
			}
			counts[idx]++
		}
	}

	return counts, nil
}

// Frequencies returns the pooled histogram as a density: each count
// divided by the total number of pooled indices (draws·r for a campaign
// of fixed-cardinality samples), so the result sums to one.
func Frequencies(ss []sampler.Sample, n int) ([]float64, error) {
	// 1) Pool the counts.
	counts, err := Histogram(ss, n)
	if err != nil {
		return nil, err
	}

	// 2) Normalize by the pooled total.
	var (
		total int
		c     int
	)
	for _, c = range counts {
		total += c
	}
	if total == 0 {
		return nil, ErrNoSamples
	}

	freqs := make([]float64, n)
	var i int
	for i, c = range counts {
		freqs[i] = float64(c) / float64(total)
	}

	return freqs, nil
}

// Singleton tests the first-order inclusion law of a campaign: the pooled
// index density over all recorded samples is compared against the
// theoretical marginal density diag(K)/r. For a projection kernel
// E[#draws containing i] / draws → Kᵢᵢ, so both sides sum to one.
//
// Every diagonal entry must be strictly positive, otherwise the
// comparison degenerates (ErrBadExpected); coordinate projections with
// unreachable items fail this precondition by construction.
func Singleton(reg *registry.Registry) (Report, error) {
	// 1) Validate the campaign.
	if reg == nil {
		return Report{}, ErrNilRegistry
	}
	ss := reg.All()
	if len(ss) == 0 {
		return Report{}, ErrNoSamples
	}

	// 2) Observed pooled density.
	var (
		k   = reg.Kernel()
		n   = k.Size()
		r   = k.Rank()
		obs []float64
		err error
	)
	if obs, err = Frequencies(ss, n); err != nil {
		return Report{}, err
	}

	// 3) Theoretical marginal density diag(K)/r.
	var (
		diag = k.Diag()
		exp  = make([]float64, n)
		i    int
	)
	for i = range diag {
		exp[i] = diag[i] / float64(r)
	}

	// 4) Goodness of fit.
	return ChiSquare(obs, exp)
}

// Doubleton tests the second-order inclusion law of a campaign: a fixed
// number of random pairs {i, j} is drawn with per-item probability
// proportional to diag(K) (distinct within each pair), and for every
// pair the observed co-occurrence frequency across recorded samples is
// compared against the theoretical probability
// det(K_{ij}) = Kᵢᵢ·Kⱼⱼ − Kᵢⱼ².
//
// The pair draw consumes the injected stream (WithSeed / WithRand), so
// reports are reproducible; the same pair may recur across the set.
func Doubleton(reg *registry.Registry, opts ...Option) (Report, error) {
	// 1) Validate the campaign.
	if reg == nil {
		return Report{}, ErrNilRegistry
	}
	ss := reg.All()
	if len(ss) == 0 {
		return Report{}, ErrNoSamples
	}
	k := reg.Kernel()
	n := k.Size()
	if n < 2 {
		return Report{}, fmt.Errorf("%w: doubletons need N ≥ 2, got N = %d", ErrBadGroundSet, n)
	}

	// 2) Resolve options and draw the examined pairs.
	var (
		cfg   = gatherOptions(opts...)
		rng   = resolveRNG(cfg)
		diag  = k.Diag()
		pairs [][2]int
		err   error
	)
	if pairs, err = drawPairs(rng, diag, cfg.PairCount); err != nil {
		return Report{}, err
	}

	// 3) Observed co-occurrence frequencies vs theoretical determinants.
	var (
		obs   = make([]float64, len(pairs))
		exp   = make([]float64, len(pairs))
		draws = float64(len(ss))
		p     int
		pair  [2]int
		s     sampler.Sample
		hits  int
	)
	for p, pair = range pairs {
		hits = 0
		for _, s = range ss {
			if containsBoth(s, pair[0], pair[1]) {
				hits++
			}
		}
		obs[p] = float64(hits) / draws

		if exp[p], err = k.MinorDet([]int{pair[0], pair[1]}); err != nil {
			return Report{}, err
		}
	}

	// 4) Goodness of fit.
	return ChiSquare(obs, exp)
}

// drawPairs draws count pairs of distinct indices, each index selected
// with probability proportional to its weight.
func drawPairs(rng *rand.Rand, w []float64, count int) ([][2]int, error) {
	// 1) Total mass must support a first draw.
	var (
		total float64
		wi    float64
	)
	for _, wi = range w {
		total += wi
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: no diagonal mass to draw pairs from", ErrBadGroundSet)
	}

	// 2) Draw pairs; the second index renormalizes over the remainder.
	var (
		pairs  = make([][2]int, count)
		p      int
		first  int
		second int
		rest   float64
	)
	for p = 0; p < count; p++ {
		first = weightedIndex(rng, w, total, -1)
		rest = total - w[first]
		if rest <= 0 {
			return nil, fmt.Errorf("%w: diagonal mass concentrates on a single item", ErrBadGroundSet)
		}
		second = weightedIndex(rng, w, rest, first)
		pairs[p] = [2]int{first, second}
	}

	return pairs, nil
}

// weightedIndex draws one index with probability w[i]/total, skipping the
// given index (−1 to skip none). The last positive-weight index absorbs
// the floating-point tail.
func weightedIndex(rng *rand.Rand, w []float64, total float64, skip int) int {
	var (
		u    = rng.Float64() * total
		acc  float64
		last = -1
		i    int
		wi   float64
	)
	for i, wi = range w {
		if i == skip || wi <= 0 {
			continue
		}
		acc += wi
		last = i
		if u < acc {
			return i
		}
	}

	return last
}

// containsBoth reports whether the sample holds both indices.
func containsBoth(s sampler.Sample, i, j int) bool {
	var hasI, hasJ bool
	var idx int
	for _, idx = range s {
		switch idx {
		case i:
			hasI = true
		case j:
			hasJ = true
		}
	}

	return hasI && hasJ
}
