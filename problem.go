package gridsearch

import "fmt"

// Successor is one outgoing transition of a state.
// Cost must be non-negative.
type Successor[StateType comparable, ActionType any] struct {
	State  StateType
	Action ActionType
	Cost   float64
}

// Problem is the contract every search algorithm drives.
// StateType must be comparable so it can be used in maps; the algorithms never
// look inside a state.
type Problem[StateType comparable, ActionType any] interface {
	// StartState returns the state the search begins from.
	StartState() StateType
	// IsGoal reports whether state satisfies the problem.
	IsGoal(state StateType) bool
	// Successors lists the transitions out of state. The order is significant:
	// it decides tie-breaking in every algorithm.
	Successors(state StateType) []Successor[StateType, ActionType]
	// CostOfActions returns the total cost of a sequence of legal actions.
	CostOfActions(actions []ActionType) float64
}

// UnimplementedProblem can be embedded by problems under construction.
// Every method panics with an error wrapping ErrNotImplemented; Search turns
// that panic into a returned error.
type UnimplementedProblem[StateType comparable, ActionType any] struct{}

func (UnimplementedProblem[StateType, ActionType]) StartState() StateType {
	panic(fmt.Errorf("StartState: %w", ErrNotImplemented))
}

func (UnimplementedProblem[StateType, ActionType]) IsGoal(StateType) bool {
	panic(fmt.Errorf("IsGoal: %w", ErrNotImplemented))
}

func (UnimplementedProblem[StateType, ActionType]) Successors(StateType) []Successor[StateType, ActionType] {
	panic(fmt.Errorf("Successors: %w", ErrNotImplemented))
}

func (UnimplementedProblem[StateType, ActionType]) CostOfActions([]ActionType) float64 {
	panic(fmt.Errorf("CostOfActions: %w", ErrNotImplemented))
}
