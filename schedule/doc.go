// Package schedule allocates a constrained, multi-period budget across
// states in priority order.
//
// 🚀 What does it do?
//
//	Given states in funding-priority order (typically the output of the
//	topsis package) and an ordered set of period budgets, the scheduler
//	walks the states once, greedily funding each from the periods in
//	order. Two policies:
//	  • AllowSplit — a state's cost may be split across as many periods
//	    as needed; funding stops the moment the cost is covered.
//	  • NoSplit   — a state is funded only whole, from the first period
//	    whose remaining budget covers its entire cost; otherwise it
//	    receives nothing.
//
// ✨ Guarantees:
//   - single pass, no backtracking: exhausted periods stay exhausted,
//     budgets are monotonically non-increasing
//   - budget conservation per period: allocations + remaining = original
//   - zero-amount allocations are never recorded
//   - priority order is absolute: later states may get partial or zero
//     funding purely because earlier states drained the budgets —
//     ranked-priority funding, not a fairness scheme
//
// The scheduler performs no input validation: negative costs or budgets
// propagate into nonsensical output by explicit caller contract.
// Degenerate numerics fall back to defined values instead of errors
// (a zero-cost state reports coverage 0.0 under AllowSplit).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fundrank/schedule"
//
//	budgets := []schedule.PeriodBudget{
//	  {Period: "q1", Amount: 100_000},
//	  {Period: "q2", Amount: 500_000},
//	}
//	plan := schedule.AllowSplit(rankedStates, budgets)
//
// Complexity:
//
//   - Time:   O(n·p) for n states and p periods
//   - Memory: O(n + p) for the result
//
// See example_test.go for the four-quarter walkthroughs.
package schedule
