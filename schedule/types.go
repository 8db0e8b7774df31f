package schedule

// PeriodBudget is one budget-bearing period. Slice order is
// significant: it defines the order in which periods are consumed.
type PeriodBudget struct {
	// Period labels the slot, e.g. a quarter name ("q1").
	Period string

	// Amount is the period's monetary budget. Must be non-negative in
	// well-formed input; the scheduler does not check.
	Amount float64
}

// Allocation records one positive amount granted to one state within a
// period. Zero-amount allocations are never recorded.
type Allocation struct {
	State  string
	Amount float64
}

// PeriodPlan is the outcome for one period: its allocations in the
// order states were funded, and the budget left after the pass.
type PeriodPlan struct {
	Period      string
	Allocations []Allocation
	Remaining   float64
}

// Coverage summarizes how much of one state's total cost was funded.
// Coverage records appear in state input order.
type Coverage struct {
	State     string
	TotalCost float64
	Allocated float64

	// CoveragePct is Allocated/TotalCost, or 0.0 when TotalCost ≤ 0.
	CoveragePct float64

	// FullyFunded is true iff Allocated ≥ TotalCost.
	FullyFunded bool
}

// Plan is the full scheduler result: one PeriodPlan per input period
// (in input order) and one Coverage per input state (in input order).
// Inputs are never mutated; a Plan is always freshly derived.
type Plan struct {
	Periods  []PeriodPlan
	Coverage []Coverage
}

// Remaining reports the budget left in the named period, and whether
// the period exists in the plan.
func (p Plan) Remaining(period string) (float64, bool) {
	for i := range p.Periods {
		if p.Periods[i].Period == period {
			return p.Periods[i].Remaining, true
		}
	}

	return 0, false
}
