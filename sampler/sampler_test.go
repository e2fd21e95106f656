// Package sampler_test contains unit tests for strategy resolution,
// option validation, form requirements and error paths.
package sampler_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvldpp/kernel"
	"github.com/katalvlaran/lvldpp/sampler"
)

// eigenKernel returns a kernel built from the first r standard basis
// vectors of an n-dimensional space: K = diag(1,…,1,0,…,0).
func eigenKernel(t *testing.T, n, r int) *kernel.Kernel {
	t.Helper()

	v := mat.NewDense(n, r, nil)
	ones := make([]float64, r)
	for j := 0; j < r; j++ {
		v.Set(j, j, 1)
		ones[j] = 1
	}
	k, err := kernel.NewEigen(ones, v)
	require.NoError(t, err)

	return k
}

// explicitIdentity returns the identity kernel of size n in explicit form.
func explicitIdentity(t *testing.T, n int) *kernel.Kernel {
	t.Helper()

	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	k, err := kernel.NewExplicit(m)
	require.NoError(t, err)

	return k
}

// allStrategies lists the closed strategy set once for range tests.
var allStrategies = []sampler.Strategy{
	sampler.GS, sampler.GSBis, sampler.Chol, sampler.KuTa12, sampler.Schur,
}

// TestParseStrategy verifies the canonical name round-trip and the
// unknown-name rejection.
func TestParseStrategy(t *testing.T) {
	t.Parallel()

	for _, st := range allStrategies {
		got, err := sampler.ParseStrategy(st.String())
		require.NoError(t, err)
		require.Equal(t, st, got)
	}

	_, err := sampler.ParseStrategy("Bogus")
	require.ErrorIs(t, err, sampler.ErrUnknownStrategy)

	_, err = sampler.ParseStrategy("gs") // exact match only
	require.ErrorIs(t, err, sampler.ErrUnknownStrategy)

	require.Equal(t, "Strategy(99)", sampler.Strategy(99).String())
}

// TestDraw_Validation covers the argument checks shared by every draw.
func TestDraw_Validation(t *testing.T) {
	t.Parallel()

	_, err := sampler.Draw(nil)
	require.ErrorIs(t, err, sampler.ErrNilKernel)

	k := eigenKernel(t, 4, 2)

	_, err = sampler.Draw(k, sampler.WithStrategyName("Bogus"))
	require.ErrorIs(t, err, sampler.ErrUnknownStrategy)

	_, err = sampler.Draw(k, sampler.WithStrategy(sampler.Strategy(99)))
	require.ErrorIs(t, err, sampler.ErrUnknownStrategy)

	// The by-name override wins over the enum field.
	s, err := sampler.Draw(k,
		sampler.WithStrategy(sampler.Schur), // would fail: no explicit form
		sampler.WithStrategyName("GS"),
	)
	require.NoError(t, err)
	require.Len(t, s, 2)
}

// TestDraw_FormRequirements pins down which strategies serve which kernel
// forms, and the Materialize recovery path for Schur.
func TestDraw_FormRequirements(t *testing.T) {
	t.Parallel()

	// Explicit-built kernels carry no eigenbasis.
	kx := explicitIdentity(t, 4)
	for _, st := range []sampler.Strategy{sampler.GS, sampler.GSBis, sampler.KuTa12} {
		_, err := sampler.Draw(kx, sampler.WithStrategy(st))
		require.ErrorIs(t, err, kernel.ErrUnsupportedForm, "strategy %s must need the eigen form", st)
	}
	for _, st := range []sampler.Strategy{sampler.Chol, sampler.Schur} {
		s, err := sampler.Draw(kx, sampler.WithStrategy(st))
		require.NoError(t, err, "strategy %s must accept the explicit form", st)
		require.Len(t, s, 4)
	}

	// Eigen-built kernels serve Schur only after materialization.
	ke := eigenKernel(t, 4, 2)
	_, err := sampler.Draw(ke, sampler.WithStrategy(sampler.Schur))
	require.ErrorIs(t, err, kernel.ErrUnsupportedForm)

	ke.Materialize()
	s, err := sampler.Draw(ke, sampler.WithStrategy(sampler.Schur))
	require.NoError(t, err)
	require.Len(t, s, 2)
}

// TestDraw_DegenerateKernel feeds the entry-driven strategies a symmetric
// matrix that is not a projector (its true rank is below its trace), so
// the conditional weights collapse mid-draw.
func TestDraw_DegenerateKernel(t *testing.T) {
	t.Parallel()

	// trace = 2 claims rank 2, but the matrix has rank 1.
	k, err := kernel.NewExplicit(mat.NewDense(2, 2, []float64{
		1, 1,
		1, 1,
	}))
	require.NoError(t, err)

	for _, st := range []sampler.Strategy{sampler.Chol, sampler.Schur} {
		_, err = sampler.Draw(k, sampler.WithStrategy(st))
		require.ErrorIs(t, err, sampler.ErrDegenerateKernel, "strategy %s", st)
	}
}

// TestDraw_Determinism verifies that one seed yields one sample, for
// every strategy on its native form.
func TestDraw_Determinism(t *testing.T) {
	t.Parallel()

	k := eigenKernel(t, 6, 3)
	k.Materialize()

	for _, st := range allStrategies {
		a, err := sampler.Draw(k, sampler.WithStrategy(st), sampler.WithSeed(42))
		require.NoError(t, err)
		b, err := sampler.Draw(k, sampler.WithStrategy(st), sampler.WithSeed(42))
		require.NoError(t, err)
		require.Equal(t, a, b, "strategy %s must be deterministic under a fixed seed", st)

		// Seed 0 is the fixed default stream, not a fresh one.
		c, err := sampler.Draw(k, sampler.WithStrategy(st))
		require.NoError(t, err)
		d, err := sampler.Draw(k, sampler.WithStrategy(st), sampler.WithSeed(0))
		require.NoError(t, err)
		require.Equal(t, c, d, "strategy %s: zero seed must mean the default stream", st)
	}
}

// TestWithWorkers verifies the option constructor's validation panic.
func TestWithWorkers(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { sampler.WithWorkers(0) })
	require.Panics(t, func() { sampler.WithWorkers(-3) })
	require.NotPanics(t, func() { sampler.WithWorkers(1) })
}

// TestSample_Clone verifies the deep copy.
func TestSample_Clone(t *testing.T) {
	t.Parallel()

	s := sampler.Sample{3, 1, 4}
	c := s.Clone()
	c[0] = 9
	require.Equal(t, sampler.Sample{3, 1, 4}, s)
	require.Nil(t, sampler.Sample(nil).Clone())
}
