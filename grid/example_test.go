// Package grid_test provides a runnable example of grid-based pathfinding.
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/bestfirst/grid"
	"github.com/katalvlaran/bestfirst/search"
)

// ExampleGrid demonstrates a-star routing around a wall on a small map.
func ExampleGrid() {
	// 1 = open terrain, 0 = wall; cell value is the cost of entering it.
	g, err := grid.New([][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	}, grid.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	start := grid.Cell{X: 0, Y: 2}
	goal := grid.Cell{X: 3, Y: 0}

	res, err := search.Search(start, g.Successors(), grid.GoalCell(goal), search.AStar,
		search.WithHeuristic[grid.Cell](grid.Manhattan(goal)))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cost:", res.Cost)
	for _, c := range res.Path {
		fmt.Printf("(%d,%d) ", c.X, c.Y)
	}
	fmt.Println()
	// Output:
	// cost: 5
	// (0,2) (0,1) (0,0) (1,0) (2,0) (3,0)
}
