// Package registry_test contains unit tests for the campaign registry.
package registry_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvldpp/kernel"
	"github.com/katalvlaran/lvldpp/registry"
	"github.com/katalvlaran/lvldpp/sampler"
)

// eigenKernel returns the rank-r coordinate projection over n items in
// eigenbasis form.
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

// TestNew_Validation covers registry construction.
func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := registry.New(nil)
	require.ErrorIs(t, err, registry.ErrNilKernel)

	k := eigenKernel(t, 5, 2)
	reg, err := registry.New(k, registry.WithCapacity(16))
	require.NoError(t, err)
	require.Zero(t, reg.Len())
	require.Same(t, k, reg.Kernel())
}

// TestRecord_Validation rejects malformed samples and keeps the registry
// unchanged on failure.
func TestRecord_Validation(t *testing.T) {
	t.Parallel()

	reg, err := registry.New(eigenKernel(t, 5, 2))
	require.NoError(t, err)

	tests := []struct {
		name   string
		sample sampler.Sample
		want   error
	}{
		{name: "too short", sample: sampler.Sample{0}, want: registry.ErrSampleCardinality},
		{name: "too long", sample: sampler.Sample{0, 1, 2}, want: registry.ErrSampleCardinality},
		{name: "negative index", sample: sampler.Sample{-1, 2}, want: registry.ErrSampleRange},
		{name: "index at N", sample: sampler.Sample{0, 5}, want: registry.ErrSampleRange},
		{name: "duplicate index", sample: sampler.Sample{3, 3}, want: registry.ErrSampleDuplicate},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := reg.Record(tc.sample)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, registry.ErrBadSample)
		})
	}

	require.Zero(t, reg.Len(), "failed records must not grow the registry")
	require.NoError(t, reg.Record(sampler.Sample{4, 0}))
	require.Equal(t, 1, reg.Len())
}

// TestRecord_DefensiveCopy verifies the registry is isolated from caller
// mutation in both directions.
func TestRecord_DefensiveCopy(t *testing.T) {
	t.Parallel()

	reg, err := registry.New(eigenKernel(t, 5, 2))
	require.NoError(t, err)

	s := sampler.Sample{1, 3}
	require.NoError(t, reg.Record(s))

	// Mutating the recorded input must not reach the registry.
	s[0] = 4
	got := reg.All()
	require.Equal(t, []sampler.Sample{{1, 3}}, got)

	// Mutating the read-back must not reach the registry either.
	got[0][1] = 0
	require.Equal(t, []sampler.Sample{{1, 3}}, reg.All())
}

// TestRecordAll_AllOrNothing verifies batch appends are atomic.
func TestRecordAll_AllOrNothing(t *testing.T) {
	t.Parallel()

	reg, err := registry.New(eigenKernel(t, 5, 2))
	require.NoError(t, err)

	err = reg.RecordAll([]sampler.Sample{{0, 1}, {2, 2}, {3, 4}})
	require.ErrorIs(t, err, registry.ErrSampleDuplicate)
	require.Zero(t, reg.Len(), "a failing batch must leave the registry unchanged")

	require.NoError(t, reg.RecordAll([]sampler.Sample{{0, 1}, {3, 4}}))
	require.Equal(t, []sampler.Sample{{0, 1}, {3, 4}}, reg.All())
}

// TestReset verifies the flush contract: after a reset the registry holds
// exactly the samples recorded since, regardless of prior contents.
func TestReset(t *testing.T) {
	t.Parallel()

	reg, err := registry.New(eigenKernel(t, 5, 2))
	require.NoError(t, err)

	require.NoError(t, reg.RecordAll([]sampler.Sample{{0, 1}, {1, 2}}))
	reg.Reset()
	require.Zero(t, reg.Len())

	reg.Reset() // resetting an empty registry is a no-op
	require.Zero(t, reg.Len())

	require.NoError(t, reg.RecordAll([]sampler.Sample{{0, 1}, {1, 2}, {2, 3}}))
	require.Equal(t, 3, reg.Len())
}

// TestEmpiricalKernel verifies the V·Vᵗ reconstruction and the
// explicit-form rejection.
func TestEmpiricalKernel(t *testing.T) {
	t.Parallel()

	t.Run("eigenbasis campaign", func(t *testing.T) {
		t.Parallel()

		k := eigenKernel(t, 4, 2)
		reg, err := registry.New(k)
		require.NoError(t, err)

		km, err := reg.EmpiricalKernel()
		require.NoError(t, err)

		want := mat.NewDense(4, 4, []float64{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		})
		require.True(t, mat.EqualApprox(want, km, 1e-12))

		// Second call serves from the cache and agrees.
		again, err := reg.EmpiricalKernel()
		require.NoError(t, err)
		require.True(t, mat.EqualApprox(km, again, 0))
	})

	t.Run("explicit campaign", func(t *testing.T) {
		t.Parallel()

		m := mat.NewDense(2, 2, []float64{1, 0, 0, 0})
		k, err := kernel.NewExplicit(m)
		require.NoError(t, err)
		reg, err := registry.New(k)
		require.NoError(t, err)

		_, err = reg.EmpiricalKernel()
		require.ErrorIs(t, err, kernel.ErrUnsupportedForm)
	})
}

// TestRecord_Concurrent exercises parallel appends into one registry.
func TestRecord_Concurrent(t *testing.T) {
	t.Parallel()

	reg, err := registry.New(eigenKernel(t, 5, 2))
	require.NoError(t, err)

	const (
		workers = 8
		perGo   = 50
	)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perGo; i++ {
				if err := reg.Record(sampler.Sample{0, 1}); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, workers*perGo, reg.Len())
}

// TestRegistry_CampaignFlow records a full Batch and reads it back.
func TestRegistry_CampaignFlow(t *testing.T) {
	t.Parallel()

	k, err := kernel.RandomProjection(10, 6, nil)
	require.NoError(t, err)
	reg, err := registry.New(k, registry.WithCapacity(20))
	require.NoError(t, err)

	ss, err := sampler.Batch(context.Background(), k, 20, sampler.WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, reg.RecordAll(ss))
	require.Equal(t, 20, reg.Len())
	require.Equal(t, ss, reg.All())
}

// TestWithCapacity_Panics verifies the programmer-error guard.
func TestWithCapacity_Panics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, registry.ErrBadCapacity.Error(), func() {
		registry.WithCapacity(-1)(&registry.Options{})
	})
}
