package sampler_test

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvldpp/kernel"
	"github.com/katalvlaran/lvldpp/sampler"
)

// ExampleDraw samples from the identity kernel of size 3. Every item has
// marginal probability 1, so each draw returns the full ground set.
func ExampleDraw() {
	// 1) Build the explicit kernel K = I₃.
	k, err := kernel.NewExplicit(mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}))
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	// 2) Draw one exact sample with the Cholesky strategy.
	s, err := sampler.Draw(k, sampler.WithStrategy(sampler.Chol), sampler.WithSeed(42))
	if err != nil {
		fmt.Println("draw:", err)
		return
	}

	// 3) Report the selected items in index order.
	sort.Ints(s)
	fmt.Println("sample:", s)
	// Output:
	// sample: [0 1 2]
}

// ExampleDraw_eigenbasis samples from a rank-2 coordinate projection given
// in eigendecomposed form: items 0 and 1 are certain, items 2 and 3 never
// appear.
func ExampleDraw_eigenbasis() {
	// 1) Eigenbasis: columns e₀ and e₁ of ℝ⁴, both eigenvalues 1.
	v := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		0, 0,
		0, 0,
	})
	k, err := kernel.NewEigen([]float64{1, 1}, v)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	// 2) Draw with the default strategy (GS).
	s, err := sampler.Draw(k)
	if err != nil {
		fmt.Println("draw:", err)
		return
	}

	// 3) The sample always holds exactly the two certain items.
	sort.Ints(s)
	fmt.Println("sample:", s)
	// Output:
	// sample: [0 1]
}

// ExampleParseStrategy resolves strategies from their canonical names.
func ExampleParseStrategy() {
	st, err := sampler.ParseStrategy("KuTa12")
	fmt.Println(st, err)

	_, err = sampler.ParseStrategy("simplex")
	fmt.Println(err != nil)
	// Output:
	// KuTa12 <nil>
	// true
}

// ExampleBatch runs a small reproducible campaign: same seed, same draws,
// independent of the worker count.
func ExampleBatch() {
	// 1) Rank-2 coordinate projection over 4 items.
	v := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		0, 0,
		0, 0,
	})
	k, err := kernel.NewEigen([]float64{1, 1}, v)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	// 2) Draw three samples in parallel.
	ss, err := sampler.Batch(context.Background(), k, 3,
		sampler.WithStrategy(sampler.Chol),
		sampler.WithSeed(7),
		sampler.WithWorkers(2),
	)
	if err != nil {
		fmt.Println("batch:", err)
		return
	}

	// 3) Every draw selects the two certain items.
	for i, s := range ss {
		sort.Ints(s)
		fmt.Printf("draw %d: %v\n", i, s)
	}
	// Output:
	// draw 0: [0 1]
	// draw 1: [0 1]
	// draw 2: [0 1]
}
