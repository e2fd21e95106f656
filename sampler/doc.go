// Package sampler draws exact samples from finite projection-DPPs.
//
// 🚀 What does it do?
//
//	Given a rank-r projection correlation kernel K over N items (package
//	kernel), every draw returns a subset of exactly r items whose law is
//	P(S) = det(K_S). Sampling follows the sequential chain rule: items
//	are chosen one at a time, each with probability proportional to its
//	conditional inclusion weight
//
//	    w(i | S) = K_ii − K_{i,S}·(K_{S,S})⁻¹·K_{S,i}
//
//	given the already-chosen set S. The strategies below are five exact,
//	interchangeable ways of maintaining these weights incrementally; they
//	induce the same joint law and differ in cost, required kernel form
//	and numerical profile.
//
// ✨ Strategies (selectable via WithStrategy or by canonical name):
//   - GS      — incremental Gram-Schmidt over the eigenbasis; O(N·r²);
//     the default. Requires the eigen form.
//   - GS_bis  — explicit projection residuals with norms recomputed from
//     scratch each step; O(N·r²) with more arithmetic, more robust near
//     degenerate subspaces. Requires the eigen form.
//   - Chol    — grows the Cholesky factor of K_{S,S}, reading kernel
//     entries; O(N·r²). Works with either form.
//   - KuTa12  — spectral two-phase sampler: Bernoulli eigenvector
//     retention, then per-step subspace re-derivation; O(N·r³).
//     Requires the eigen form.
//   - Schur   — maintains (K_{S,S})⁻¹ via block-inverse updates; O(N·r³).
//     Requires the explicit matrix (kernel.Materialize recovers it for
//     eigen-built kernels).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvldpp/sampler"
//
//	k, _ := kernel.RandomProjection(10, 6, nil)
//
//	// One draw, default strategy (GS), fixed default seed.
//	s, err := sampler.Draw(k)
//
//	// A reproducible campaign of 100 parallel draws via Cholesky.
//	ss, err := sampler.Batch(ctx, k, 100,
//	    sampler.WithStrategyName("Chol"),
//	    sampler.WithSeed(7),
//	)
//
// Determinism: every draw runs on an injectable deterministic stream
// (seed==0 selects a fixed default). Batch derives one independent
// substream per draw index, so its results are identical for any worker
// count. Draws are atomic: a failed draw returns no partial sample.
//
// See examples in example_test.go and benchmarks in bench_test.go.
package sampler
