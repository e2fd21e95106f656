// Package lvldpp is your toolkit for exact sampling from finite
// Determinantal Point Processes (DPPs) — from kernel construction to
// statistical verification of the drawn samples.
//
// 🚀 What is lvldpp?
//
//	A library for projection-kernel DPPs that brings together:
//		• Kernels: explicit matrices or eigen-decompositions, validated eagerly
//		• Exact samplers: GS, GS_bis, Chol, KuTa12 and Schur strategies,
//		  all drawing from the same law P(S) = det(K_S)
//		• Parallel campaigns: reproducible batches over errgroup workers
//		• Registry: validated, resettable sample accumulation
//		• Adequacy: chi-square checks of singleton & doubleton inclusion laws
//
// ✨ Why choose lvldpp?
//
//   - Exact, not approximate – every strategy reproduces det(K_S) precisely
//   - Reproducible – injectable seeds; batches independent of worker count
//   - Rock-solid guarantees – eager validation, sentinel errors, atomic draws
//   - Built on gonum – dense algebra, QR factorizations, χ² statistics
//
// Under the hood, everything is organized under four subpackages:
//
//	kernel/   — projection-kernel construction, access & materialization
//	sampler/  — the five exact sampling strategies + parallel Batch
//	registry/ — campaign accumulation, reset & ground-truth reconstruction
//	adequacy/ — goodness-of-fit verification against theoretical marginals
//
// Quick taste:
//
//	k, _ := kernel.RandomProjection(10, 6, nil)
//	s, _ := sampler.Draw(k, sampler.WithStrategy(sampler.Chol))
//	// s holds exactly 6 distinct items, selected with determinantal repulsion
//
// Dive into the per-package docs and examples/ for full campaigns, the
// strategy trade-offs, and the verification workflow.
//
//	go get github.com/katalvlaran/lvldpp
package lvldpp
