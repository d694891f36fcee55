package search

// Options are the Gumbel-MCTS hyperparameters (spec §4.4). Defaults match
// the values taken from Danihelka et al., 2022 carried over by
// original_source's search.h constants.
type Options struct {
	// NConsider is the number of root actions retained after the Gumbel
	// argtop-k step ("N_TO_CONSIDER" / "N_CONSIDER").
	NConsider int
	// SimulationBudget is the total number of simulations Sequential
	// Halving is allowed to spend narrowing NConsider candidates to one.
	SimulationBudget int
	// CVisit and CScale parameterize σ(q̂) = (CVisit + maxVisitCount) *
	// (CScale * q̂) in the Sequential Halving completed-Q score.
	CVisit float64
	CScale float64
}

// DefaultOptions returns the hyperparameters named in spec §4.4.
func DefaultOptions() Options {
	return Options{
		NConsider:        16,
		SimulationBudget: 200,
		CVisit:           50,
		CScale:           1.0,
	}
}
