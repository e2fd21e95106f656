// Package adequacy verifies that a DPP sampling campaign obeys the
// theoretical inclusion laws of its correlation kernel.
//
// 🚀 What does adequacy mean here?
//
//	For a projection kernel K of rank r, theory fixes the first two
//	orders of inclusion statistics: each item i appears in a sample with
//	probability Kᵢᵢ, and each pair {i, j} co-occurs with probability
//	det(K_{ij}) = Kᵢᵢ·Kⱼⱼ − Kᵢⱼ². A sampler is adequate when the
//	empirical frequencies of a campaign are statistically compatible
//	with those marginals.
//
// ✨ Key features:
//   - Singleton - pooled index density of the campaign vs diag(K)/r
//   - Doubleton - co-occurrence frequencies of random pairs vs their
//     principal-minor determinants
//   - ChiSquare - the Pearson goodness-of-fit core shared by both,
//     usable standalone on any observed/expected cells
//   - Histogram / Frequencies - the pooled-count bookkeeping
//   - reproducible pair draws via WithSeed / WithRand
//
// ⚙️ Usage:
//
//	rep, err := adequacy.Singleton(reg)
//	if err == nil && rep.Adequate(adequacy.DefaultAlpha) {
//	    // campaign matches the first-order law
//	}
//
//	rep, err = adequacy.Doubleton(reg, adequacy.WithSeed(5))
//
// Verdicts are statistical, not exact: a correct sampler fails a level
// α test with probability α, so callers judging repeated campaigns
// should expect (and tolerate) that rejection rate.
//
// See examples in example_test.go.
package adequacy
