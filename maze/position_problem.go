package maze

import (
	"fmt"
	"math"

	"github.com/pdrpinto/gridsearch"
)

// IllegalCost is what CostOfActions reports for a sequence that walks into a wall.
const IllegalCost = 999999

// CostFunction prices a step by the position it lands on.
type CostFunction func(Position) float64

// UnitCost charges 1 for every step.
func UnitCost(Position) float64 { return 1 }

// StayEastCost makes the west half of the grid expensive: 0.5^x.
func StayEastCost(p Position) float64 { return math.Pow(0.5, float64(p.X)) }

// StayWestCost makes the east half of the grid expensive: 2^x.
func StayWestCost(p Position) float64 { return math.Pow(2, float64(p.X)) }

// CostByName resolves "unit" (or ""), "stay-east" and "stay-west".
func CostByName(name string) (CostFunction, error) {
	switch name {
	case "", "unit":
		return UnitCost, nil
	case "stay-east":
		return StayEastCost, nil
	case "stay-west":
		return StayWestCost, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCost, name)
}

// PositionProblem asks for a path from the start to a single goal cell.
// It is read-only after construction and safe for concurrent searches.
type PositionProblem struct {
	layout *Layout
	start  Position
	goal   Position
	cost   CostFunction
}

var _ gridsearch.Problem[Position, Direction] = (*PositionProblem)(nil)

// PositionOption customises a PositionProblem.
type PositionOption func(*PositionProblem)

// WithCost sets the step cost function.
func WithCost(cost CostFunction) PositionOption {
	return func(p *PositionProblem) {
		if cost != nil {
			p.cost = cost
		}
	}
}

// WithStart overrides the layout's start cell.
func WithStart(start Position) PositionOption {
	return func(p *PositionProblem) { p.start = start }
}

// WithGoal overrides the goal, which defaults to the first food in reading order.
func WithGoal(goal Position) PositionOption {
	return func(p *PositionProblem) { p.goal = goal }
}

// NewPositionProblem builds the problem for layout.
func NewPositionProblem(layout *Layout, options ...PositionOption) (*PositionProblem, error) {
	problem := &PositionProblem{layout: layout, start: layout.Start, goal: Position{-1, -1}, cost: UnitCost}
	if len(layout.Food) > 0 {
		problem.goal = layout.Food[0]
	}
	for _, option := range options {
		option(problem)
	}
	if !layout.InBounds(problem.goal) {
		return nil, ErrNoGoal
	}
	return problem, nil
}

// Goal returns the target cell.
func (p *PositionProblem) Goal() Position { return p.goal }

// Layout returns the grid the problem runs on.
func (p *PositionProblem) Layout() *Layout { return p.layout }

func (p *PositionProblem) StartState() Position { return p.start }

func (p *PositionProblem) IsGoal(state Position) bool { return state == p.goal }

func (p *PositionProblem) Successors(state Position) []gridsearch.Successor[Position, Direction] {
	successors := make([]gridsearch.Successor[Position, Direction], 0, len(moveOrder))
	for _, direction := range moveOrder {
		next := state.Move(direction)
		if p.layout.IsWall(next) {
			continue
		}
		successors = append(successors, gridsearch.Successor[Position, Direction]{
			State:  next,
			Action: direction,
			Cost:   p.cost(next),
		})
	}
	return successors
}

func (p *PositionProblem) CostOfActions(actions []Direction) float64 {
	current, total := p.start, 0.0
	for _, action := range actions {
		current = current.Move(action)
		if p.layout.IsWall(current) {
			return IllegalCost
		}
		total += p.cost(current)
	}
	return total
}
