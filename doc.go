// Package gridsearch provides generic graph-search algorithms over an abstract
// search problem.
//
// It exposes four strategies, each with a long name and a short alias:
//
//   - DepthFirstSearch / DFS
//   - BreadthFirstSearch / BFS
//   - UniformCostSearch / UCS
//   - AStarSearch / AStar
//
// The short entry points return only the action sequence (empty when no goal is
// reachable). Search runs any strategy with a context, logging, metrics, tracing
// and an optional expansion limit and returns a Result. SolveAll runs many
// independent searches on a worker pool, and Stepper replays a finished search
// one expansion at a time to drive UIs or debugging tools.
//
// Every call owns its visited set, so searches never share mutable state.
package gridsearch
