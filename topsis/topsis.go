package topsis

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fundrank/core"
)

// Rank — TOPSIS multi-criteria ranking.
//
// Algorithm Outline:
//  1. Validate: every criterion in opts.Criteria needs a weight and a
//     benefit/cost flag; every state needs a value for every criterion.
//  2. Build the n×m decision matrix in criteria order.
//  3. Normalize each column by its Euclidean norm. A zero norm means an
//     all-zero column; substitute divisor 1.0 and keep the zeros.
//  4. Re-normalize weights to sum to 1 and scale columns by them.
//  5. Assemble ideal-best and ideal-worst reference vectors column-wise
//     by polarity (benefit: max/min, cost: min/max).
//  6. For each row compute Euclidean distances S⁺ (to best) and S⁻
//     (to worst), then closeness C = S⁻/(S⁺+S⁻), or 0.0 when both
//     distances are zero.
//  7. Stable-sort descending by C and assign ranks from 1.
//
// A nil opts selects DefaultOptions(). The input slice is never
// mutated; the returned slice is freshly built and carries each
// state's original criterion values for traceability.
func Rank(states []core.State, opts *Options) ([]Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// Validation: weight and polarity per criterion, value per state.
	for _, c := range o.Criteria {
		if _, ok := o.Weights[c]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingWeight, string(c))
		}
		if _, ok := o.Benefit[c]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingBenefitFlag, string(c))
		}
	}
	for _, s := range states {
		for _, c := range o.Criteria {
			if _, ok := s.Value(c); !ok {
				return nil, fmt.Errorf("%w: state %q, criterion %q", ErrMissingCriterion, s.Name, string(c))
			}
		}
	}

	// Weight vector over the evaluation order, re-normalized to sum 1.
	// An empty criteria list sums to zero and fails here, matching the
	// weight-total rule.
	m := len(o.Criteria)
	w := make([]float64, m)
	for j, c := range o.Criteria {
		w[j] = o.Weights[c]
	}
	total := floats.Sum(w)
	if total <= 0 {
		return nil, ErrNonPositiveWeightSum
	}
	floats.Scale(1/total, w)

	n := len(states)
	if n == 0 {
		return nil, nil
	}

	// Decision matrix, n states × m criteria.
	x := mat.NewDense(n, m, nil)
	for i, s := range states {
		for j, c := range o.Criteria {
			v, _ := s.Value(c)
			x.Set(i, j, v)
		}
	}

	// Column-wise vector normalization and weighting in one pass.
	col := make([]float64, n)
	for j := 0; j < m; j++ {
		mat.Col(col, j, x)
		norm := floats.Norm(col, 2)
		if norm == 0 {
			norm = 1 // all-zero column stays all zeros
		}
		for i := 0; i < n; i++ {
			x.Set(i, j, x.At(i, j)/norm*w[j])
		}
	}

	// Ideal-best and ideal-worst reference vectors by polarity.
	best := make([]float64, m)
	worst := make([]float64, m)
	for j, c := range o.Criteria {
		mat.Col(col, j, x)
		hi, lo := floats.Max(col), floats.Min(col)
		if o.Benefit[c] {
			best[j], worst[j] = hi, lo
		} else {
			best[j], worst[j] = lo, hi
		}
	}

	// Distances and closeness per state.
	results := make([]Result, n)
	row := make([]float64, m)
	for i, s := range states {
		mat.Row(row, i, x)
		sPlus := floats.Distance(row, best, 2)
		sMinus := floats.Distance(row, worst, 2)

		closeness := 0.0 // both distances zero: neither closer to best nor worst
		if denom := sPlus + sMinus; denom != 0 {
			closeness = sMinus / denom
		}

		values := make(map[core.Criterion]float64, m)
		for _, c := range o.Criteria {
			v, _ := s.Value(c)
			values[c] = v
		}
		results[i] = Result{Name: s.Name, Closeness: closeness, Values: values}
	}

	// Descending by closeness; stable, so ties keep input order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Closeness > results[j].Closeness
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	return results, nil
}
