package schedule_test

import (
	"fmt"

	"github.com/katalvlaran/fundrank/core"
	"github.com/katalvlaran/fundrank/schedule"
	"github.com/katalvlaran/fundrank/topsis"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAllowSplit
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Five states are ranked by TOPSIS, then funded in ranked order from
//	four small quarterly budgets. The budgets cover only a sliver of
//	the top state's cost, so every quarter drains into it and the rest
//	go unfunded — ranked-priority funding at its starkest.
//
// Use case:
//
//	The canonical rank-then-allocate composition of the two packages.
//
// Complexity: O(n·m) ranking + O(n·p) scheduling.
func ExampleAllowSplit() {
	states := []core.State{
		{Name: "State A", Score: 78, CostPerHabitant: 1100, Population: 2_500_000},
		{Name: "State B", Score: 85, CostPerHabitant: 1500, Population: 4_000_000},
		{Name: "State C", Score: 72, CostPerHabitant: 900, Population: 1_200_000},
		{Name: "State D", Score: 90, CostPerHabitant: 1700, Population: 3_300_000},
		{Name: "State E", Score: 80, CostPerHabitant: 1000, Population: 2_000_000},
	}

	ranked, err := topsis.Rank(states, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	byName := make(map[string]core.State, len(states))
	for _, s := range states {
		byName[s.Name] = s
	}
	byRank := make([]core.State, len(ranked))
	for i, r := range ranked {
		byRank[i] = byName[r.Name]
	}

	budgets := []schedule.PeriodBudget{
		{Period: "q1", Amount: 100_000},
		{Period: "q2", Amount: 500_000},
		{Period: "q3", Amount: 890_000},
		{Period: "q4", Amount: 100_000},
	}
	plan := schedule.AllowSplit(byRank, budgets)

	for _, p := range plan.Periods {
		for _, a := range p.Allocations {
			fmt.Printf("%s: %s %.0f\n", p.Period, a.State, a.Amount)
		}
	}
	for _, c := range plan.Coverage {
		fmt.Printf("%s allocated %.0f of %.0f (%.6f%%) fully_funded=%t\n",
			c.State, c.Allocated, c.TotalCost, c.CoveragePct*100, c.FullyFunded)
	}
	// Output:
	// q1: State E 100000
	// q2: State E 500000
	// q3: State E 890000
	// q4: State E 100000
	// State E allocated 1590000 of 2000000000 (0.079500%) fully_funded=false
	// State A allocated 0 of 2750000000 (0.000000%) fully_funded=false
	// State C allocated 0 of 1080000000 (0.000000%) fully_funded=false
	// State B allocated 0 of 6000000000 (0.000000%) fully_funded=false
	// State D allocated 0 of 5610000000 (0.000000%) fully_funded=false
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNoSplit
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Quarterly budgets sized to hold individual state costs whole. Under
//	the no-split policy each state lands entirely in the first quarter
//	that can carry it; State D fits nowhere and stays unfunded even
//	though the quarters could cover it combined.
func ExampleNoSplit() {
	byRank := []core.State{
		{Name: "State E", CostPerHabitant: 1000, Population: 2_000_000}, // 2.0e9
		{Name: "State A", CostPerHabitant: 1100, Population: 2_500_000}, // 2.75e9
		{Name: "State C", CostPerHabitant: 900, Population: 1_200_000},  // 1.08e9
		{Name: "State B", CostPerHabitant: 1500, Population: 4_000_000}, // 6.0e9
		{Name: "State D", CostPerHabitant: 1700, Population: 3_300_000}, // 5.61e9
	}
	budgets := []schedule.PeriodBudget{
		{Period: "q1", Amount: 2_000_000_000},
		{Period: "q2", Amount: 2_750_000_000},
		{Period: "q3", Amount: 1_080_000_000},
		{Period: "q4", Amount: 6_000_000_000},
	}

	plan := schedule.NoSplit(byRank, budgets)

	for _, p := range plan.Periods {
		for _, a := range p.Allocations {
			fmt.Printf("%s: %s %.0f\n", p.Period, a.State, a.Amount)
		}
		fmt.Printf("%s remaining=%.0f\n", p.Period, p.Remaining)
	}
	for _, c := range plan.Coverage {
		fmt.Printf("%s fully_funded=%t\n", c.State, c.FullyFunded)
	}
	// Output:
	// q1: State E 2000000000
	// q1 remaining=0
	// q2: State A 2750000000
	// q2 remaining=0
	// q3: State C 1080000000
	// q3 remaining=0
	// q4: State B 6000000000
	// q4 remaining=0
	// State E fully_funded=true
	// State A fully_funded=true
	// State C fully_funded=true
	// State B fully_funded=true
	// State D fully_funded=false
}
