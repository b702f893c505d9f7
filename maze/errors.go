package maze

import "errors"

var (
	// ErrNoStart is returned when a layout has no 'P' cell.
	ErrNoStart = errors.New("maze: layout has no start")

	// ErrNoGoal is returned when a position problem has no food to reach.
	ErrNoGoal = errors.New("maze: layout has no goal")

	// ErrRaggedLayout is returned when layout rows differ in width.
	ErrRaggedLayout = errors.New("maze: layout rows have different widths")

	// ErrUnknownLayout is returned when a built-in layout name does not exist.
	ErrUnknownLayout = errors.New("maze: unknown layout")

	// ErrUnknownHeuristic is returned by the heuristic registries.
	ErrUnknownHeuristic = errors.New("maze: unknown heuristic")

	// ErrUnknownCost is returned by CostByName.
	ErrUnknownCost = errors.New("maze: unknown cost function")

	// ErrUnknownProblem is returned for problem kinds other than position and corners.
	ErrUnknownProblem = errors.New("maze: unknown problem kind")
)
