package gridsearch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Algorithm names a search strategy.
type Algorithm string

const (
	AlgorithmDFS   Algorithm = "dfs"
	AlgorithmBFS   Algorithm = "bfs"
	AlgorithmUCS   Algorithm = "ucs"
	AlgorithmAStar Algorithm = "astar"
)

// Algorithms lists every strategy in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmDFS, AlgorithmBFS, AlgorithmUCS, AlgorithmAStar}
}

var algorithmNames = map[string]Algorithm{
	"dfs": AlgorithmDFS, "depthfirst": AlgorithmDFS, "depthfirstsearch": AlgorithmDFS,
	"bfs": AlgorithmBFS, "breadthfirst": AlgorithmBFS, "breadthfirstsearch": AlgorithmBFS,
	"ucs": AlgorithmUCS, "uniformcost": AlgorithmUCS, "uniformcostsearch": AlgorithmUCS,
	"astar": AlgorithmAStar, "a*": AlgorithmAStar, "astarsearch": AlgorithmAStar,
}

// ParseAlgorithm resolves short names ("bfs") and long names in any casing or
// separator style ("breadthFirstSearch", "breadth-first").
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	if algorithm, ok := algorithmNames[normalized]; ok {
		return algorithm, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Valid reports whether a is one of the known strategies.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmDFS, AlgorithmBFS, AlgorithmUCS, AlgorithmAStar:
		return true
	}
	return false
}

// Result contains the outcome of a search.
type Result[StateType comparable, ActionType any] struct {
	// Actions leads from the start state to the goal. Empty when the start is
	// a goal, nil when no goal was found.
	Actions []ActionType
	// Path holds the visited states along Actions, start and goal included.
	Path []StateType
	// Cost is the problem's CostOfActions for Actions.
	Cost float64
	// Expanded lists the states whose successors were requested, in order.
	Expanded []StateType
	Found    bool
}

// ExpandedNodes returns the number of expansions performed.
func (r Result[StateType, ActionType]) ExpandedNodes() int { return len(r.Expanded) }

// Search executes algorithm against problem. heuristic is only consulted by A*
// and defaults to NullHeuristic when nil.
//
// Not finding a goal is not an error: the result has Found == false. Errors are
// reserved for unknown algorithms, cancelled contexts, exceeded expansion limits
// and problems that report ErrNotImplemented.
func Search[StateType comparable, ActionType any](
	contextObject context.Context,
	problem Problem[StateType, ActionType],
	algorithm Algorithm,
	heuristic Heuristic[StateType, ActionType],
	options ...Option,
) (result Result[StateType, ActionType], err error) {
	if !algorithm.Valid() {
		return Result[StateType, ActionType]{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	// --- Apply options ---
	searchOptions := applyOptions(options)

	contextObject, span := searchOptions.Tracer.Start(contextObject, "gridsearch.search",
		trace.WithAttributes(attribute.String("search.algorithm", string(algorithm))))
	startedAt := time.Now()

	defer func() {
		if recovered := recover(); recovered != nil {
			recoveredErr, ok := recovered.(error)
			if !ok || !errors.Is(recoveredErr, ErrNotImplemented) {
				span.End()
				panic(recovered)
			}
			result = Result[StateType, ActionType]{}
			err = recoveredErr
		}
		elapsed := time.Since(startedAt)

		span.SetAttributes(
			attribute.Int("search.expanded", len(result.Expanded)),
			attribute.Bool("search.found", result.Found),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			searchOptions.Logger.Warn("search aborted",
				"algorithm", algorithm,
				"expanded", len(result.Expanded),
				"error", err,
			)
		} else {
			searchOptions.Logger.Debug("search finished",
				"algorithm", algorithm,
				"expanded", len(result.Expanded),
				"found", result.Found,
				"cost", result.Cost,
				"elapsed", elapsed,
			)
		}
		span.End()
		searchOptions.Recorder.ObserveSearch(algorithm, len(result.Expanded), result.Found, elapsed)
	}()

	return run(contextObject, problem, algorithm, heuristic, searchOptions.MaxExpansions)
}

// run dispatches to the algorithm without any instrumentation.
func run[StateType comparable, ActionType any](
	contextObject context.Context,
	problem Problem[StateType, ActionType],
	algorithm Algorithm,
	heuristic Heuristic[StateType, ActionType],
	maxExpansions int,
) (Result[StateType, ActionType], error) {
	if heuristic == nil {
		heuristic = NullHeuristic[StateType, ActionType]
	}
	state := &expansion[StateType, ActionType]{
		contextObject: contextObject,
		problem:       problem,
		heuristic:     heuristic,
		maxExpansions: maxExpansions,
	}

	var goalNode *Node[StateType, ActionType]
	var err error
	switch algorithm {
	case AlgorithmDFS:
		goalNode, err = depthFirst(state)
	case AlgorithmBFS:
		goalNode, err = breadthFirst(state)
	case AlgorithmUCS:
		goalNode, err = uniformCost(state)
	case AlgorithmAStar:
		goalNode, err = aStar(state)
	default:
		return Result[StateType, ActionType]{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	if err != nil || goalNode == nil {
		return Result[StateType, ActionType]{Expanded: state.expanded}, err
	}
	actions := goalNode.Actions()
	return Result[StateType, ActionType]{
		Actions:  actions,
		Path:     goalNode.States(),
		Cost:     problem.CostOfActions(actions),
		Expanded: state.expanded,
		Found:    true,
	}, nil
}

// expansion is the per-call state shared by every algorithm: the only place
// successors are requested, so limits and cancellation apply uniformly.
type expansion[StateType comparable, ActionType any] struct {
	contextObject context.Context
	problem       Problem[StateType, ActionType]
	heuristic     Heuristic[StateType, ActionType]
	maxExpansions int
	expanded      []StateType
}

func (e *expansion[StateType, ActionType]) successors(state StateType) ([]Successor[StateType, ActionType], error) {
	if err := e.contextObject.Err(); err != nil {
		return nil, err
	}
	if e.maxExpansions > 0 && len(e.expanded) >= e.maxExpansions {
		return nil, fmt.Errorf("%w after %d states", ErrExpansionLimit, len(e.expanded))
	}
	e.expanded = append(e.expanded, state)
	return e.problem.Successors(state), nil
}

func solve[StateType comparable, ActionType any](
	problem Problem[StateType, ActionType],
	algorithm Algorithm,
	heuristic Heuristic[StateType, ActionType],
) []ActionType {
	// Background context and no limit: run cannot fail here.
	result, _ := run(context.Background(), problem, algorithm, heuristic, 0)
	return result.Actions
}

// DepthFirstSearch explores the deepest nodes first and returns the shortest
// action sequence among the branches that reach a goal.
func DepthFirstSearch[StateType comparable, ActionType any](problem Problem[StateType, ActionType]) []ActionType {
	return solve(problem, AlgorithmDFS, nil)
}

// BreadthFirstSearch explores the shallowest nodes first.
func BreadthFirstSearch[StateType comparable, ActionType any](problem Problem[StateType, ActionType]) []ActionType {
	return solve(problem, AlgorithmBFS, nil)
}

// UniformCostSearch explores the node of least total cost first.
func UniformCostSearch[StateType comparable, ActionType any](problem Problem[StateType, ActionType]) []ActionType {
	return solve(problem, AlgorithmUCS, nil)
}

// AStarSearch explores the node with the lowest cost plus heuristic first.
// A nil heuristic behaves as NullHeuristic.
func AStarSearch[StateType comparable, ActionType any](
	problem Problem[StateType, ActionType],
	heuristic Heuristic[StateType, ActionType],
) []ActionType {
	return solve(problem, AlgorithmAStar, heuristic)
}

// DFS is short for DepthFirstSearch.
func DFS[StateType comparable, ActionType any](problem Problem[StateType, ActionType]) []ActionType {
	return DepthFirstSearch(problem)
}

// BFS is short for BreadthFirstSearch.
func BFS[StateType comparable, ActionType any](problem Problem[StateType, ActionType]) []ActionType {
	return BreadthFirstSearch(problem)
}

// UCS is short for UniformCostSearch.
func UCS[StateType comparable, ActionType any](problem Problem[StateType, ActionType]) []ActionType {
	return UniformCostSearch(problem)
}

// AStar is short for AStarSearch.
func AStar[StateType comparable, ActionType any](
	problem Problem[StateType, ActionType],
	heuristic Heuristic[StateType, ActionType],
) []ActionType {
	return AStarSearch(problem, heuristic)
}
