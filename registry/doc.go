// Package registry accumulates the samples of one DPP sampling campaign.
//
// 🚀 What is a sample registry?
//
//	An ordered, append-only sequence of samples drawn under one fixed
//	correlation kernel. Verification code reads the sequence (and the
//	kernel) to test that empirical inclusion frequencies match the
//	theoretical marginals.
//
// ✨ Key features:
//   - Record / RecordAll append validated samples; malformed samples
//     (wrong cardinality, out-of-range or repeated indices) are rejected
//     before they can poison downstream statistics
//   - Reset empties the registry between independent campaigns
//   - All returns the ordered sequence as an isolated copy
//   - EmpiricalKernel reconstructs K = V·Vᵗ for eigenbasis campaigns,
//     the ground-truth matrix for adequacy checks
//
// ⚙️ Usage:
//
//	reg, err := registry.New(k)
//	ss, err := sampler.Batch(ctx, k, 100, sampler.WithSeed(7))
//	err = reg.RecordAll(ss)
//	…
//	reg.Reset() // next campaign
//
// A Registry is safe for concurrent use: Record may be called from many
// goroutines, though a merge-after-Batch flow keeps contention at zero.
//
// See examples in example_test.go.
package registry
