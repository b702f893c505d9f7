package maze

import (
	"fmt"
	"math"

	"github.com/pdrpinto/gridsearch"
)

type goalProblem interface {
	Goal() Position
}

func manhattanDistance(a, b Position) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// Manhattan is the grid distance to the problem's goal. Problems without a
// Goal method get 0.
func Manhattan(state Position, problem gridsearch.Problem[Position, Direction]) float64 {
	target, ok := problem.(goalProblem)
	if !ok {
		return 0
	}
	return manhattanDistance(state, target.Goal())
}

// Euclidean is the straight-line distance to the problem's goal.
func Euclidean(state Position, problem gridsearch.Problem[Position, Direction]) float64 {
	target, ok := problem.(goalProblem)
	if !ok {
		return 0
	}
	goal := target.Goal()
	return math.Hypot(float64(state.X-goal.X), float64(state.Y-goal.Y))
}

// CornersHeuristic is the largest Manhattan distance to a corner not yet
// touched. It is admissible and consistent under unit costs.
func CornersHeuristic(state CornersState, problem gridsearch.Problem[CornersState, Direction]) float64 {
	corners, ok := problem.(*CornersProblem)
	if !ok {
		return 0
	}
	farthest := 0.0
	for i, corner := range corners.corners {
		if state.Visited&(1<<i) != 0 {
			continue
		}
		farthest = math.Max(farthest, manhattanDistance(state.Position, corner))
	}
	return farthest
}

// HeuristicByName resolves "null" (or ""), "manhattan" and "euclidean".
func HeuristicByName(name string) (gridsearch.Heuristic[Position, Direction], error) {
	switch name {
	case "", "null":
		return gridsearch.NullHeuristic[Position, Direction], nil
	case "manhattan":
		return Manhattan, nil
	case "euclidean":
		return Euclidean, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// CornersHeuristicByName resolves "null" (or "") and "corners"; "manhattan"
// is accepted as an alias of "corners".
func CornersHeuristicByName(name string) (gridsearch.Heuristic[CornersState, Direction], error) {
	switch name {
	case "", "null":
		return gridsearch.NullHeuristic[CornersState, Direction], nil
	case "corners", "manhattan":
		return CornersHeuristic, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}
