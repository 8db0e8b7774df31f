package topsis

import "github.com/katalvlaran/fundrank/core"

// Result is one ranked state. Rank returns one Result per input state,
// sorted by descending Closeness.
type Result struct {
	// Name is the state's unique name.
	Name string

	// Closeness is the TOPSIS closeness coefficient C = S⁻/(S⁺+S⁻),
	// in [0,1]; 0.0 when both distances are zero.
	Closeness float64

	// Rank is the 1-based position, 1 = best. Equal closeness keeps
	// the original input order.
	Rank int

	// Values carries the state's original (unnormalized) criterion
	// values in the evaluation order, so downstream consumers need no
	// second lookup.
	Values map[core.Criterion]float64
}
