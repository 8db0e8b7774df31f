package schedule

import "github.com/katalvlaran/fundrank/core"

// AllowSplit funds states in input order, splitting a state's total
// cost across as many periods as needed.
//
// For each state: need = TotalCost(); periods are walked in order, each
// contributing min(need, remaining) until the need reaches zero or
// every period is dry. Periods drained by earlier states are skipped
// permanently — budgets never replenish and never reorder.
func AllowSplit(states []core.State, budgets []PeriodBudget) Plan {
	plan := newPlan(budgets, len(states))

	for _, s := range states {
		total := s.TotalCost()
		need := total
		allocated := 0.0

		for i := range plan.Periods {
			if need <= 0 {
				break
			}
			p := &plan.Periods[i]
			if p.Remaining <= 0 {
				continue
			}

			allot := min(need, p.Remaining)
			if allot > 0 {
				p.Remaining -= allot
				need -= allot
				allocated += allot
				p.Allocations = append(p.Allocations, Allocation{State: s.Name, Amount: allot})
			}
		}

		plan.Coverage = append(plan.Coverage, newCoverage(s.Name, total, allocated))
	}

	return plan
}

// NoSplit funds states in input order, whole or not at all: the first
// period whose remaining budget covers a state's entire cost receives
// the full cost as a single allocation. When no single period can, the
// state goes unfunded — even if the periods could cover it combined.
//
// A zero-cost state is trivially fully funded and, like everywhere
// else, produces no zero-amount allocation record.
func NoSplit(states []core.State, budgets []PeriodBudget) Plan {
	plan := newPlan(budgets, len(states))

	for _, s := range states {
		total := s.TotalCost()
		allocated := 0.0

		for i := range plan.Periods {
			p := &plan.Periods[i]
			if total > 0 && p.Remaining >= total {
				p.Remaining -= total
				allocated = total
				p.Allocations = append(p.Allocations, Allocation{State: s.Name, Amount: total})

				break
			}
		}

		plan.Coverage = append(plan.Coverage, newCoverage(s.Name, total, allocated))
	}

	return plan
}

// newPlan seeds a Plan with one PeriodPlan per budget, full amounts
// remaining and no allocations yet.
func newPlan(budgets []PeriodBudget, nStates int) Plan {
	periods := make([]PeriodPlan, len(budgets))
	for i, b := range budgets {
		periods[i] = PeriodPlan{Period: b.Period, Remaining: b.Amount}
	}

	return Plan{Periods: periods, Coverage: make([]Coverage, 0, nStates)}
}

// newCoverage derives one coverage record. CoveragePct falls back to
// 0.0 for non-positive total cost; FullyFunded is allocated ≥ total.
func newCoverage(name string, total, allocated float64) Coverage {
	pct := 0.0
	if total > 0 {
		pct = allocated / total
	}

	return Coverage{
		State:       name,
		TotalCost:   total,
		Allocated:   allocated,
		CoveragePct: pct,
		FullyFunded: allocated >= total,
	}
}
