package core

// Criterion names a single ranking criterion. The three built-in
// criteria map to fixed State fields; any other Criterion is resolved
// through State.Extra.
type Criterion string

// Built-in criteria backed by fixed State fields.
const (
	// Score is the state's aggregate quality score (benefit: higher is better).
	Score Criterion = "score"

	// CostPerHabitant is the per-capita funding cost (cost: lower is better).
	CostPerHabitant Criterion = "cost_per_habitant"

	// Population is the number of habitants (benefit by default).
	Population Criterion = "population"
)

// State is one candidate entity for ranking and funding. It is an
// immutable input: callers supply it whole and must not mutate it for
// the duration of a call.
type State struct {
	// Name uniquely identifies the state and keys all result records.
	Name string

	Score           float64
	CostPerHabitant float64
	Population      float64

	// Extra holds values for criteria beyond the three fixed fields.
	// May be nil when only built-in criteria are evaluated.
	Extra map[Criterion]float64
}

// Value returns the state's value for criterion c and whether the
// state carries that criterion at all. Fixed fields win over Extra.
func (s State) Value(c Criterion) (float64, bool) {
	switch c {
	case Score:
		return s.Score, true
	case CostPerHabitant:
		return s.CostPerHabitant, true
	case Population:
		return s.Population, true
	}
	v, ok := s.Extra[c]

	return v, ok
}

// TotalCost derives the state's full funding cost:
// cost per habitant × population.
func (s State) TotalCost() float64 {
	return s.CostPerHabitant * s.Population
}
