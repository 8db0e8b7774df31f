package topsis

import "github.com/katalvlaran/fundrank/core"

// Default weights — single source of truth for DefaultOptions.
// The reference prioritization favors quality score, then per-capita
// cost, with population as a light tiebreaker.
const (
	// DefaultScoreWeight is the default weight of core.Score.
	DefaultScoreWeight = 0.6

	// DefaultCostWeight is the default weight of core.CostPerHabitant.
	DefaultCostWeight = 0.3

	// DefaultPopulationWeight is the default weight of core.Population.
	DefaultPopulationWeight = 0.1
)

// Options configures a ranking run.
//
// Fields:
//   - Criteria — the fixed evaluation order; it determines matrix
//     columns and which weight/polarity entries are required.
//   - Weights  — non-negative weight per criterion. Any positive scale
//     is accepted; Rank re-normalizes the weights to sum to 1.
//   - Benefit  — polarity per criterion: true ⇒ benefit (higher is
//     better), false ⇒ cost (lower is better).
//
// Every criterion listed in Criteria must have both a Weights and a
// Benefit entry, or Rank fails with the matching sentinel error.
type Options struct {
	Criteria []core.Criterion
	Weights  map[core.Criterion]float64
	Benefit  map[core.Criterion]bool
}

// DefaultOptions returns the canonical configuration: criteria order
// (score, cost_per_habitant, population), weights 0.6/0.3/0.1, and
// polarity benefit/cost/benefit.
//
// The maps are constructed fresh on every call, so callers may mutate
// the returned Options without affecting other invocations.
func DefaultOptions() Options {
	return Options{
		Criteria: []core.Criterion{core.Score, core.CostPerHabitant, core.Population},
		Weights: map[core.Criterion]float64{
			core.Score:           DefaultScoreWeight,
			core.CostPerHabitant: DefaultCostWeight,
			core.Population:      DefaultPopulationWeight,
		},
		Benefit: map[core.Criterion]bool{
			core.Score:           true,
			core.CostPerHabitant: false,
			core.Population:      true,
		},
	}
}
