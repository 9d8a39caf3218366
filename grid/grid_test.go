package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/grid"
	"github.com/katalvlaran/bestfirst/search"
)

// TestNew_Errors rejects empty and ragged inputs.
func TestNew_Errors(t *testing.T) {
	if _, err := grid.New(nil, grid.DefaultOptions()); !errors.Is(err, grid.ErrEmptyGrid) {
		t.Errorf("nil input: want ErrEmptyGrid, got %v", err)
	}
	if _, err := grid.New([][]int{{}}, grid.DefaultOptions()); !errors.Is(err, grid.ErrEmptyGrid) {
		t.Errorf("empty row: want ErrEmptyGrid, got %v", err)
	}
	ragged := [][]int{{1, 1}, {1}}
	if _, err := grid.New(ragged, grid.DefaultOptions()); !errors.Is(err, grid.ErrNonRectangular) {
		t.Errorf("ragged input: want ErrNonRectangular, got %v", err)
	}
}

// TestNew_Immutable: mutating the input after construction has no effect.
func TestNew_Immutable(t *testing.T) {
	values := [][]int{{1, 1}, {1, 1}}
	g, err := grid.New(values, grid.DefaultOptions())
	require.NoError(t, err)
	values[0][0] = 0
	require.True(t, g.Passable(0, 0))
}

// TestSuccessors_Conn4 checks neighbor generation at a corner and around a
// wall, and that transition costs come from the target cell value.
func TestSuccessors_Conn4(t *testing.T) {
	//  1 0 1
	//  1 2 1
	g, err := grid.New([][]int{
		{1, 0, 1},
		{1, 2, 1},
	}, grid.DefaultOptions())
	require.NoError(t, err)
	next := g.Successors()

	// corner (0,0): wall (1,0) excluded, only (0,1) remains
	succ := next(grid.Cell{X: 0, Y: 0})
	require.Equal(t, []search.Successor[grid.Cell]{
		{State: grid.Cell{X: 0, Y: 1}, Cost: 1},
	}, succ)

	// center of bottom row (1,1): three passable neighbors, costs per cell
	succ = next(grid.Cell{X: 1, Y: 1})
	require.ElementsMatch(t, []search.Successor[grid.Cell]{
		{State: grid.Cell{X: 0, Y: 1}, Cost: 1},
		{State: grid.Cell{X: 2, Y: 1}, Cost: 1},
	}, succ)
}

// TestSuccessors_Conn8 includes diagonal moves.
func TestSuccessors_Conn8(t *testing.T) {
	opts := grid.DefaultOptions()
	opts.Conn = grid.Conn8
	g, err := grid.New([][]int{
		{1, 1},
		{1, 1},
	}, opts)
	require.NoError(t, err)

	succ := g.Successors()(grid.Cell{X: 0, Y: 0})
	require.Len(t, succ, 3) // E, SE, S
}

// TestHeuristics checks the closed-form distances.
func TestHeuristics(t *testing.T) {
	goal := grid.Cell{X: 3, Y: 1}
	m := grid.Manhattan(goal)
	c := grid.Chebyshev(goal)

	require.Equal(t, 0.0, m(goal))
	require.Equal(t, 4.0, m(grid.Cell{X: 0, Y: 0}))
	require.Equal(t, 3.0, c(grid.Cell{X: 0, Y: 0}))
}

// TestAStarOnGrid: a-star with Manhattan finds the optimal detour around a
// wall, and matches the uniform-cost cost.
func TestAStarOnGrid(t *testing.T) {
	//  S 1 1
	//  0 0 1
	//  1 1 G    (0 = wall)
	g, err := grid.New([][]int{
		{1, 1, 1},
		{0, 0, 1},
		{1, 1, 1},
	}, grid.DefaultOptions())
	require.NoError(t, err)

	start := grid.Cell{X: 0, Y: 0}
	goal := grid.Cell{X: 2, Y: 2}

	astar, err := search.Search(start, g.Successors(), grid.GoalCell(goal), search.AStar,
		search.WithHeuristic[grid.Cell](grid.Manhattan(goal)))
	require.NoError(t, err)

	uc, err := search.Search(start, g.Successors(), grid.GoalCell(goal), search.UniformCost)
	require.NoError(t, err)

	require.Equal(t, 4.0, astar.Cost) // right, right, down, down
	require.Equal(t, uc.Cost, astar.Cost)
	require.Equal(t, start, astar.Path[0])
	require.Equal(t, goal, astar.Path[len(astar.Path)-1])
	// a-star should not expand more nodes than uniform-cost here
	require.LessOrEqual(t, astar.Expanded, uc.Expanded)
}

// TestNoPathThroughWalls: a fully blocking wall yields ErrNoPath.
func TestNoPathThroughWalls(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 0, 1},
		{1, 0, 1},
	}, grid.DefaultOptions())
	require.NoError(t, err)

	_, err = search.Search(grid.Cell{X: 0, Y: 0}, g.Successors(),
		grid.GoalCell(grid.Cell{X: 2, Y: 0}), search.UniformCost)
	require.ErrorIs(t, err, search.ErrNoPath)
}
