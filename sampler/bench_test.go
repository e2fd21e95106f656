package sampler_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvldpp/kernel"
	"github.com/katalvlaran/lvldpp/sampler"
)

// benchKernel builds one random rank-20 projection over 100 items and
// materializes it so that every strategy can run on the same instance.
func benchKernel(b *testing.B) *kernel.Kernel {
	b.Helper()

	k, err := kernel.RandomProjection(100, 20, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}
	k.Materialize()

	return k
}

// benchmarkDraw measures one exact draw per iteration under the given
// strategy.
func benchmarkDraw(b *testing.B, st sampler.Strategy) {
	k := benchKernel(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := sampler.Draw(k, sampler.WithStrategy(st), sampler.WithSeed(int64(i)+1)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDraw_GS(b *testing.B)     { benchmarkDraw(b, sampler.GS) }
func BenchmarkDraw_GSBis(b *testing.B)  { benchmarkDraw(b, sampler.GSBis) }
func BenchmarkDraw_Chol(b *testing.B)   { benchmarkDraw(b, sampler.Chol) }
func BenchmarkDraw_KuTa12(b *testing.B) { benchmarkDraw(b, sampler.KuTa12) }
func BenchmarkDraw_Schur(b *testing.B)  { benchmarkDraw(b, sampler.Schur) }

// BenchmarkBatch measures a 64-draw parallel campaign per iteration.
func BenchmarkBatch(b *testing.B) {
	k := benchKernel(b)
	ctx := context.Background()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := sampler.Batch(ctx, k, 64, sampler.WithSeed(int64(i)+1)); err != nil {
			b.Fatal(err)
		}
	}
}
