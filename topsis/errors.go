// Package topsis: sentinel error set.
// Rank returns these sentinels (wrapped with the offending criterion or
// state name); tests and callers match them via errors.Is.

package topsis

import "errors"

var (
	// ErrMissingWeight indicates a criterion in the evaluation order has
	// no entry in Options.Weights.
	ErrMissingWeight = errors.New("topsis: missing weight for criterion")

	// ErrMissingBenefitFlag indicates a criterion in the evaluation order
	// has no benefit/cost polarity entry in Options.Benefit.
	ErrMissingBenefitFlag = errors.New("topsis: missing benefit/cost flag for criterion")

	// ErrMissingCriterion indicates a state supplies no value for a
	// criterion in the evaluation order.
	ErrMissingCriterion = errors.New("topsis: state missing criterion value")

	// ErrNonPositiveWeightSum indicates the weights over the evaluation
	// order sum to zero or less, so they cannot be re-normalized.
	ErrNonPositiveWeightSum = errors.New("topsis: sum of weights must be positive")
)
