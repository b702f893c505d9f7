package maze

import (
	"context"
	"fmt"

	"github.com/pdrpinto/gridsearch"
)

// ProblemKind selects which grid problem a Request builds.
type ProblemKind string

const (
	ProblemPosition ProblemKind = "position"
	ProblemCorners  ProblemKind = "corners"
)

// ParseProblemKind accepts "position" (or "") and "corners".
func ParseProblemKind(name string) (ProblemKind, error) {
	switch ProblemKind(name) {
	case "", ProblemPosition:
		return ProblemPosition, nil
	case ProblemCorners:
		return ProblemCorners, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProblem, name)
}

// Request describes one grid search in plain names.
type Request struct {
	Layout    *Layout
	Problem   ProblemKind
	Algorithm gridsearch.Algorithm
	Heuristic string
	Cost      string
}

// Report is the outcome of a grid search with states flattened to positions.
type Report struct {
	Found    bool        `json:"found"`
	Actions  []Direction `json:"actions"`
	Cost     float64     `json:"cost"`
	Expanded []Position  `json:"expanded_states"`
	Path     []Position  `json:"path"`
}

// ExpandedNodes returns the number of expansions.
func (r Report) ExpandedNodes() int { return len(r.Expanded) }

// Outcome is one row of Compare.
type Outcome struct {
	Algorithm gridsearch.Algorithm
	Report    Report
	Err       error
}

// Solve runs the request's algorithm.
func Solve(ctx context.Context, request Request, options ...gridsearch.Option) (Report, error) {
	outcomes, err := solveWith(ctx, request, []gridsearch.Algorithm{request.Algorithm}, options)
	if err != nil {
		return Report{}, err
	}
	return outcomes[0].Report, outcomes[0].Err
}

// Compare runs every algorithm on the request's problem concurrently; the
// request's Algorithm is ignored.
func Compare(ctx context.Context, request Request, options ...gridsearch.Option) ([]Outcome, error) {
	return solveWith(ctx, request, gridsearch.Algorithms(), options)
}

func solveWith(ctx context.Context, request Request, algorithms []gridsearch.Algorithm, options []gridsearch.Option) ([]Outcome, error) {
	if request.Layout == nil {
		return nil, ErrNoStart
	}
	kind, err := ParseProblemKind(string(request.Problem))
	if err != nil {
		return nil, err
	}
	cost, err := CostByName(request.Cost)
	if err != nil {
		return nil, err
	}

	switch kind {
	case ProblemCorners:
		heuristic, err := CornersHeuristicByName(request.Heuristic)
		if err != nil {
			return nil, err
		}
		problem := NewCornersProblem(request.Layout, cost)
		return runJobs[CornersState](ctx, problem, heuristic, algorithms,
			func(state CornersState) Position { return state.Position }, options)
	default:
		heuristic, err := HeuristicByName(request.Heuristic)
		if err != nil {
			return nil, err
		}
		problem, err := NewPositionProblem(request.Layout, WithCost(cost))
		if err != nil {
			return nil, err
		}
		return runJobs[Position](ctx, problem, heuristic, algorithms,
			func(state Position) Position { return state }, options)
	}
}

func runJobs[StateType comparable](
	ctx context.Context,
	problem gridsearch.Problem[StateType, Direction],
	heuristic gridsearch.Heuristic[StateType, Direction],
	algorithms []gridsearch.Algorithm,
	position func(StateType) Position,
	options []gridsearch.Option,
) ([]Outcome, error) {
	jobs := make([]gridsearch.Job[StateType, Direction], 0, len(algorithms))
	for _, algorithm := range algorithms {
		jobs = append(jobs, gridsearch.Job[StateType, Direction]{
			Name:      string(algorithm),
			Problem:   problem,
			Algorithm: algorithm,
			Heuristic: heuristic,
		})
	}

	results, err := gridsearch.SolveAll(ctx, jobs, options...)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(results))
	for _, result := range results {
		outcomes = append(outcomes, Outcome{
			Algorithm: result.Algorithm,
			Report:    toReport(result.Result, position),
			Err:       result.Err,
		})
	}
	return outcomes, nil
}

func toReport[StateType comparable](result gridsearch.Result[StateType, Direction], position func(StateType) Position) Report {
	report := Report{
		Found:    result.Found,
		Actions:  result.Actions,
		Cost:     result.Cost,
		Expanded: make([]Position, 0, len(result.Expanded)),
	}
	for _, state := range result.Expanded {
		report.Expanded = append(report.Expanded, position(state))
	}
	if result.Path != nil {
		report.Path = make([]Position, 0, len(result.Path))
		for _, state := range result.Path {
			report.Path = append(report.Path, position(state))
		}
	}
	return report
}
