package maze

import "github.com/pdrpinto/gridsearch"

// CornersState is a position plus the set of corners touched so far, one bit
// per entry of Layout.Corners.
type CornersState struct {
	Position Position
	Visited  uint8
}

const allCorners uint8 = 0b1111

// CornersProblem asks for a path that touches all four inner corners.
type CornersProblem struct {
	layout  *Layout
	corners [4]Position
	cost    CostFunction
}

var _ gridsearch.Problem[CornersState, Direction] = (*CornersProblem)(nil)

// NewCornersProblem builds the problem for layout. A nil cost means UnitCost.
func NewCornersProblem(layout *Layout, cost CostFunction) *CornersProblem {
	if cost == nil {
		cost = UnitCost
	}
	return &CornersProblem{layout: layout, corners: layout.Corners(), cost: cost}
}

// Corners returns the targets in Layout.Corners order.
func (c *CornersProblem) Corners() [4]Position { return c.corners }

func (c *CornersProblem) mark(state CornersState) CornersState {
	for i, corner := range c.corners {
		if state.Position == corner {
			state.Visited |= 1 << i
		}
	}
	return state
}

func (c *CornersProblem) StartState() CornersState {
	return c.mark(CornersState{Position: c.layout.Start})
}

func (c *CornersProblem) IsGoal(state CornersState) bool { return state.Visited == allCorners }

func (c *CornersProblem) Successors(state CornersState) []gridsearch.Successor[CornersState, Direction] {
	successors := make([]gridsearch.Successor[CornersState, Direction], 0, len(moveOrder))
	for _, direction := range moveOrder {
		next := state.Position.Move(direction)
		if c.layout.IsWall(next) {
			continue
		}
		successors = append(successors, gridsearch.Successor[CornersState, Direction]{
			State:  c.mark(CornersState{Position: next, Visited: state.Visited}),
			Action: direction,
			Cost:   c.cost(next),
		})
	}
	return successors
}

func (c *CornersProblem) CostOfActions(actions []Direction) float64 {
	current, total := c.layout.Start, 0.0
	for _, action := range actions {
		current = current.Move(action)
		if c.layout.IsWall(current) {
			return IllegalCost
		}
		total += c.cost(current)
	}
	return total
}
