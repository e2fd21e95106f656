// Package kernel represents orthogonal-projection correlation kernels for
// finite Determinantal Point Processes (DPPs).
//
// 🚀 What is a projection correlation kernel?
//
//	A symmetric idempotent N×N matrix K (K = Kᵗ, K² = K) whose eigenvalues
//	are all 0 or 1. It defines a DPP over the ground set {0, …, N−1} in
//	which every sample has exactly r = trace(K) items and
//	P(S ⊆ sample) = det(K_S) for every fixed subset S.
//
// ✨ Key features:
//   - two construction forms: an explicit dense matrix (NewExplicit) or an
//     eigen-decomposition with unit eigenvalues (NewEigen)
//   - eager validation: symmetry, orthonormality, eigenvalue and rank
//     checks run at construction, never at sampling time
//   - uniform read access regardless of form: entries, diagonal, columns,
//     principal submatrices and their determinants
//   - lazy K = V·Vᵗ materialization (Materialize) cached for the lifetime
//     of the kernel
//   - random kernel generation (RandomProjection) for experiments
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvldpp/kernel"
//
//	// From an eigen-decomposition: V is N×r with orthonormal columns.
//	k, err := kernel.NewEigen(eigVals, eigVecs)
//
//	// Or from the dense matrix itself.
//	k, err := kernel.NewExplicit(m)
//
//	p, _ := k.MinorDet([]int{2, 5}) // P({2,5} ⊆ sample)
//
// A Kernel is immutable after construction (Materialize only fills an
// internal cache) and safe for concurrent use by any number of goroutines.
//
// See examples in example_test.go.
package kernel
