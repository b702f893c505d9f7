package gridsearch

// Heuristic estimates the remaining cost from state to the nearest goal of problem.
// It must never return a negative value.
type Heuristic[StateType comparable, ActionType any] func(state StateType, problem Problem[StateType, ActionType]) float64

// NullHeuristic estimates zero everywhere, which turns A* into a cost-ordered search.
func NullHeuristic[StateType comparable, ActionType any](StateType, Problem[StateType, ActionType]) float64 {
	return 0
}
