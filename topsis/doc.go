// Package topsis ranks candidate states by relative closeness to an
// ideal solution (TOPSIS — Technique for Order Preference by
// Similarity to Ideal Solution).
//
// 🚀 What is TOPSIS?
//
//	Each state is scored on m criteria; the scores form an n×m decision
//	matrix. After vector normalization and weighting, every state is a
//	point in criteria space. The best conceivable point (ideal) and the
//	worst (anti-ideal) are assembled column-wise, and each state is
//	ranked by C = S⁻ / (S⁺ + S⁻), its closeness to the ideal relative
//	to the anti-ideal. Higher is better.
//
// ✨ Key features:
//   - benefit/cost polarity per criterion (higher-is-better vs lower-is-better)
//   - weights re-normalized to sum to 1, so any positive scale works
//   - stable descending rank: equal closeness keeps input order
//   - defined numeric fallbacks: an all-zero column normalizes to zeros
//     (divisor substitution), and a state equidistant at zero from both
//     reference points gets closeness 0.0 — never a division error
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fundrank/topsis"
//
//	// nil options ⇒ DefaultOptions(): criteria (score, cost_per_habitant,
//	// population) with weights 0.6/0.3/0.1 and polarity benefit/cost/benefit.
//	results, err := topsis.Rank(states, nil)
//
// Validation errors (matched with errors.Is): ErrMissingWeight,
// ErrMissingBenefitFlag, ErrMissingCriterion, ErrNonPositiveWeightSum.
//
// Complexity:
//
//   - Time:   O(n·m) plus the O(n log n) final sort
//   - Memory: O(n·m)
//
// See example_test.go for a full walkthrough on a five-state dataset.
package topsis
