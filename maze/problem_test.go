package maze

import (
	"context"
	"testing"

	"github.com/pdrpinto/gridsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLayout(t *testing.T, name string) *Layout {
	t.Helper()
	layout, err := Builtin(name)
	require.NoError(t, err)
	return layout
}

func positionProblem(t *testing.T, name string, options ...PositionOption) gridsearch.Problem[Position, Direction] {
	t.Helper()
	problem, err := NewPositionProblem(mustLayout(t, name), options...)
	require.NoError(t, err)
	return problem
}

func TestTinyMaze_EveryAlgorithmFindsTheKnownPath(t *testing.T) {
	problem := positionProblem(t, "tinyMaze")
	want := TinyMazeSearch()

	assert.Equal(t, want, gridsearch.DFS(problem))
	assert.Equal(t, want, gridsearch.BFS(problem))
	assert.Equal(t, want, gridsearch.UCS(problem))
	assert.Equal(t, want, gridsearch.AStar(problem, Manhattan))
	assert.Equal(t, 8.0, problem.CostOfActions(want))
}

func TestPositionProblem_SuccessorOrder(t *testing.T) {
	problem := positionProblem(t, "openMaze")
	successors := problem.Successors(Position{3, 2})

	var actions []Direction
	for _, successor := range successors {
		actions = append(actions, successor.Action)
		assert.Equal(t, 1.0, successor.Cost)
	}
	assert.Equal(t, []Direction{North, South, East, West}, actions)

	corner := problem.Successors(Position{1, 4})
	require.Len(t, corner, 2)
	assert.Equal(t, South, corner[0].Action)
	assert.Equal(t, East, corner[1].Action)
}

func TestPositionProblem_CostOfActions(t *testing.T) {
	problem := positionProblem(t, "openMaze")
	assert.Equal(t, 2.0, problem.CostOfActions([]Direction{East, South}))
	assert.Equal(t, float64(IllegalCost), problem.CostOfActions([]Direction{North}))
	assert.Zero(t, problem.CostOfActions(nil))

	eastward := positionProblem(t, "openMaze", WithCost(StayEastCost))
	assert.Equal(t, 0.25, eastward.CostOfActions([]Direction{East}))
}

func TestPositionProblem_Options(t *testing.T) {
	layout := mustLayout(t, "openMaze")
	problem, err := NewPositionProblem(layout, WithStart(Position{2, 2}), WithGoal(Position{3, 2}))
	require.NoError(t, err)

	assert.Equal(t, Position{2, 2}, problem.StartState())
	assert.Equal(t, Position{3, 2}, problem.Goal())
	assert.Same(t, layout, problem.Layout())
	assert.Equal(t, []Direction{East}, gridsearch.BFS[Position, Direction](problem))

	noFood, err := ParseLayout("%%%%\n%P %\n%%%%\n")
	require.NoError(t, err)
	_, err = NewPositionProblem(noFood)
	assert.ErrorIs(t, err, ErrNoGoal)
}

func TestCostFunctionsSteerUCS(t *testing.T) {
	// The open room has many shortest routes; the cost function decides which
	// side of the room UCS hugs.
	east := positionProblem(t, "openMaze", WithCost(StayEastCost))
	west := positionProblem(t, "openMaze", WithCost(StayWestCost))

	eastActions := gridsearch.UCS(east)
	westActions := gridsearch.UCS(west)

	assert.Equal(t, []Direction{East, East, East, East, East, East, East, South, South, South}, eastActions)
	assert.Equal(t, []Direction{South, South, South, East, East, East, East, East, East, East}, westActions)
}

func TestManhattanBeatsUCSOnExpansions(t *testing.T) {
	// A goal in the start's row: every cell of the room would tie on f if
	// the goal sat in the opposite corner.
	problem := positionProblem(t, "openMaze", WithGoal(Position{6, 4}))

	informed, err := gridsearch.Search(context.Background(), problem, gridsearch.AlgorithmAStar, Manhattan)
	require.NoError(t, err)
	blind, err := gridsearch.Search(context.Background(), problem, gridsearch.AlgorithmUCS, nil)
	require.NoError(t, err)

	assert.Equal(t, blind.Cost, informed.Cost)
	assert.Equal(t, 5.0, informed.Cost)
	assert.Equal(t, 5, informed.ExpandedNodes())
	assert.Less(t, informed.ExpandedNodes(), blind.ExpandedNodes())
}

func TestHeuristics(t *testing.T) {
	problem := positionProblem(t, "openMaze")

	assert.Equal(t, 10.0, Manhattan(problem.StartState(), problem))
	assert.InDelta(t, 7.6158, Euclidean(problem.StartState(), problem), 1e-4)
	assert.Zero(t, Manhattan(Position{8, 1}, problem))

	corners := NewCornersProblem(mustLayout(t, "openMaze"), nil)
	var foreign gridsearch.Problem[Position, Direction] = positionOnly{corners}
	assert.Zero(t, Manhattan(Position{1, 1}, foreign))
	assert.Zero(t, Euclidean(Position{1, 1}, foreign))
}

// positionOnly is a position problem without a Goal method.
type positionOnly struct{ corners *CornersProblem }

func (p positionOnly) StartState() Position { return p.corners.layout.Start }
func (p positionOnly) IsGoal(Position) bool { return false }
func (p positionOnly) Successors(Position) []gridsearch.Successor[Position, Direction] {
	return nil
}
func (p positionOnly) CostOfActions([]Direction) float64 { return 0 }

func TestRegistries(t *testing.T) {
	for _, name := range []string{"", "null", "manhattan", "euclidean"} {
		h, err := HeuristicByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, h, name)
	}
	_, err := HeuristicByName("chebyshev")
	assert.ErrorIs(t, err, ErrUnknownHeuristic)

	for _, name := range []string{"", "null", "corners", "manhattan"} {
		_, err := CornersHeuristicByName(name)
		require.NoError(t, err, name)
	}
	_, err = CornersHeuristicByName("euclidean")
	assert.ErrorIs(t, err, ErrUnknownHeuristic)

	for _, name := range []string{"", "unit", "stay-east", "stay-west"} {
		_, err := CostByName(name)
		require.NoError(t, err, name)
	}
	_, err = CostByName("toll")
	assert.ErrorIs(t, err, ErrUnknownCost)
}

func TestCornersProblem(t *testing.T) {
	layout := mustLayout(t, "tinyCorners")
	problem := NewCornersProblem(layout, nil)
	var asProblem gridsearch.Problem[CornersState, Direction] = problem

	start := problem.StartState()
	assert.Equal(t, layout.Start, start.Position)
	assert.Zero(t, start.Visited)
	assert.False(t, problem.IsGoal(start))

	bfs := gridsearch.BFS(asProblem)
	ucs := gridsearch.UCS(asProblem)
	astar := gridsearch.AStar(asProblem, CornersHeuristic)
	require.NotEmpty(t, bfs)

	assert.Equal(t, float64(len(bfs)), problem.CostOfActions(bfs))
	assert.Equal(t, problem.CostOfActions(bfs), problem.CostOfActions(ucs))
	assert.Equal(t, problem.CostOfActions(ucs), problem.CostOfActions(astar))

	positions, err := layout.Trace(bfs)
	require.NoError(t, err)
	touched := map[Position]bool{}
	for _, p := range positions {
		touched[p] = true
	}
	for _, corner := range problem.Corners() {
		assert.True(t, touched[corner], corner.String())
	}
}

func TestCornersHeuristic_Admissible(t *testing.T) {
	layout := mustLayout(t, "tinyCorners")
	problem := NewCornersProblem(layout, nil)
	var asProblem gridsearch.Problem[CornersState, Direction] = problem

	optimal := problem.CostOfActions(gridsearch.UCS(asProblem))
	assert.LessOrEqual(t, CornersHeuristic(problem.StartState(), problem), optimal)
	assert.Zero(t, CornersHeuristic(CornersState{Position: Position{1, 1}, Visited: allCorners}, problem))
}

func TestCornersProblem_MarksCornerOnEntry(t *testing.T) {
	layout := mustLayout(t, "tinyCorners")
	problem := NewCornersProblem(layout, nil)

	var reached *CornersState
	for _, successor := range problem.Successors(CornersState{Position: Position{1, 2}}) {
		if successor.State.Position == (Position{1, 1}) {
			s := successor.State
			reached = &s
		}
	}
	require.NotNil(t, reached)
	assert.Equal(t, uint8(0b0001), reached.Visited)
}
