package gridsearch

// StepSnapshot exposes the state of a replay after one expansion.
type StepSnapshot[StateType comparable] struct {
	Current   StateType
	Expanded  []StateType
	Done      bool
	Found     bool
	Path      []StateType
	StepIndex int
}

// Stepper replays a finished search one expansion at a time, for UIs and
// debugging tools. It never calls back into the problem.
type Stepper[StateType comparable, ActionType any] struct {
	result    Result[StateType, ActionType]
	stepCount int
}

// NewStepper creates a replay of result.
func NewStepper[StateType comparable, ActionType any](result Result[StateType, ActionType]) *Stepper[StateType, ActionType] {
	return &Stepper[StateType, ActionType]{result: result}
}

// Step advances the replay by one expansion and returns a snapshot.
// Once every expansion was shown, Step keeps returning the final snapshot with
// Done set and, if the search succeeded, the solution path.
func (s *Stepper[StateType, ActionType]) Step() StepSnapshot[StateType] {
	expanded := s.result.Expanded
	if s.stepCount >= len(expanded) {
		snapshot := StepSnapshot[StateType]{
			Expanded:  copyStates(expanded),
			Done:      true,
			Found:     s.result.Found,
			Path:      copyStates(s.result.Path),
			StepIndex: s.stepCount,
		}
		if len(expanded) > 0 {
			snapshot.Current = expanded[len(expanded)-1]
		}
		return snapshot
	}

	current := expanded[s.stepCount]
	s.stepCount++
	return StepSnapshot[StateType]{
		Current:   current,
		Expanded:  copyStates(expanded[:s.stepCount]),
		StepIndex: s.stepCount,
	}
}

// Remaining returns how many expansions are still to be replayed.
func (s *Stepper[StateType, ActionType]) Remaining() int {
	return len(s.result.Expanded) - s.stepCount
}

// Reset rewinds the replay to the beginning.
func (s *Stepper[StateType, ActionType]) Reset() {
	s.stepCount = 0
}

func copyStates[T comparable](states []T) []T {
	if states == nil {
		return nil
	}
	c := make([]T, len(states))
	copy(c, states)
	return c
}
