package gridsearch_test

import (
	"fmt"

	"github.com/pdrpinto/gridsearch"
)

type (
	edge          = gridsearch.Successor[string, string]
	stringProblem = gridsearch.Problem[string, string]
	cellProblem   = gridsearch.Problem[cell, string]
)

// graphProblem is an explicit directed graph with string states and actions.
type graphProblem struct {
	start string
	goals map[string]bool
	edges map[string][]edge
}

func newGraph(start string, goals ...string) *graphProblem {
	g := &graphProblem{start: start, goals: map[string]bool{}, edges: map[string][]edge{}}
	for _, goal := range goals {
		g.goals[goal] = true
	}
	return g
}

func (g *graphProblem) add(from, to, action string, cost float64) *graphProblem {
	g.edges[from] = append(g.edges[from], edge{State: to, Action: action, Cost: cost})
	return g
}

// problem returns g as the interface the algorithms take, so type arguments
// can be inferred at call sites.
func (g *graphProblem) problem() stringProblem { return g }

func (g *graphProblem) StartState() string { return g.start }
func (g *graphProblem) IsGoal(state string) bool { return g.goals[state] }
func (g *graphProblem) Successors(state string) []edge { return g.edges[state] }
func (g *graphProblem) CostOfActions(actions []string) float64 {
	state, total := g.start, 0.0
	for _, action := range actions {
		moved := false
		for _, e := range g.edges[state] {
			if e.Action == action {
				state, total, moved = e.State, total+e.Cost, true
				break
			}
		}
		if !moved {
			panic(fmt.Sprintf("illegal action %q from %q", action, state))
		}
	}
	return total
}

// corridor is the 1-D corridor 0..length-1 with a single East move per cell.
func corridor(length int) stringProblem {
	g := newGraph("0", fmt.Sprint(length-1))
	for n := 0; n < length-1; n++ {
		g.add(fmt.Sprint(n), fmt.Sprint(n+1), "East", 1)
	}
	return g.problem()
}

// diamond has a cheap and an expensive route to D.
func diamond() stringProblem {
	return newGraph("A", "D").
		add("A", "B", "X", 1).
		add("A", "C", "Y", 5).
		add("B", "D", "Z", 1).
		add("C", "D", "W", 1).
		problem()
}

// detour rewards a longer but cheaper route: S-A-B-G costs 3, S-A-G costs 7.
func detour() stringProblem {
	return newGraph("S", "G").
		add("S", "A", "a", 1).
		add("S", "B", "b", 4).
		add("A", "B", "ab", 1).
		add("A", "G", "ag", 6).
		add("B", "G", "bg", 1).
		problem()
}

type cell struct{ X, Y int }

// openGrid is an obstacle-free size×size grid with unit moves.
type openGrid struct {
	size        int
	start, goal cell
}

func newOpenGrid(size int, start, goal cell) cellProblem {
	return openGrid{size: size, start: start, goal: goal}
}

func (g openGrid) StartState() cell { return g.start }
func (g openGrid) IsGoal(state cell) bool { return state == g.goal }
func (g openGrid) Successors(state cell) []gridsearch.Successor[cell, string] {
	moves := []struct {
		dx, dy int
		name   string
	}{{0, 1, "N"}, {0, -1, "S"}, {1, 0, "E"}, {-1, 0, "W"}}
	var out []gridsearch.Successor[cell, string]
	for _, m := range moves {
		next := cell{state.X + m.dx, state.Y + m.dy}
		if next.X < 0 || next.Y < 0 || next.X >= g.size || next.Y >= g.size {
			continue
		}
		out = append(out, gridsearch.Successor[cell, string]{State: next, Action: m.name, Cost: 1})
	}
	return out
}
func (g openGrid) CostOfActions(actions []string) float64 { return float64(len(actions)) }

func manhattan(state cell, problem cellProblem) float64 {
	goal := problem.(openGrid).goal
	dx, dy := state.X-goal.X, state.Y-goal.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}
