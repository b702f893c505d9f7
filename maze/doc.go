// Package maze is the grid world the search algorithms are exercised on.
//
// Layouts use the classic text format: '%' is a wall, 'P' the agent's start,
// '.' a food pellet and anything else open floor. Coordinates put (0, 0) in
// the bottom-left corner with Y growing north.
//
// Two problems are provided: PositionProblem (reach a single cell) and
// CornersProblem (touch all four inner corners), together with their
// heuristics and a Solve/Compare facade used by the CLI and the HTTP API.
package maze
