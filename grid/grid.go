// Package grid provides a ready-made search domain: a rectangular grid of
// terrain costs with 4- or 8-directional movement, exposed as a successor
// function and admissible heuristics for the search engine.
//
// Cells with value below the passable threshold are walls; the value of a
// passable cell is the cost of stepping onto it.
package grid

import (
	"errors"
	"math"

	"github.com/katalvlaran/bestfirst/search"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell identifies one grid position. It is the search state type.
type Cell struct {
	X, Y int
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional movement.
	Conn Connectivity
	// PassableThreshold is the minimum cell value considered passable;
	// cells below it are walls.
	PassableThreshold int
}

// DefaultOptions returns Options with Conn4 movement and threshold 1
// (values ≥ 1 are passable).
func DefaultOptions() Options {
	return Options{
		Conn:              Conn4,
		PassableThreshold: 1,
	}
}

// Grid treats a 2D integer cost field as a search domain. It is immutable
// once built. values[y][x] holds the cost of entering cell (x, y).
type Grid struct {
	width, height   int
	values          [][]int
	conn            Connectivity
	threshold       int
	neighborOffsets [][2]int
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		width:           w,
		height:          h,
		values:          cells,
		conn:            opts.Conn,
		threshold:       opts.PassableThreshold,
		neighborOffsets: offsets,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Passable reports whether (x,y) is in bounds and not a wall.
func (g *Grid) Passable(x, y int) bool {
	return g.InBounds(x, y) && g.values[y][x] >= g.threshold
}

// CostAt returns the cost of entering cell (x,y); callers must ensure the
// cell is in bounds.
func (g *Grid) CostAt(x, y int) int {
	return g.values[y][x]
}

// Successors returns the successor function for this grid: every passable
// neighbor of a cell under the configured connectivity, with transition
// cost equal to the neighbor's cell value.
func (g *Grid) Successors() search.NextFunc[Cell] {
	return func(c Cell) []search.Successor[Cell] {
		succ := make([]search.Successor[Cell], 0, len(g.neighborOffsets))
		for _, d := range g.neighborOffsets {
			nx, ny := c.X+d[0], c.Y+d[1]
			if !g.Passable(nx, ny) {
				continue
			}
			succ = append(succ, search.Successor[Cell]{
				State: Cell{X: nx, Y: ny},
				Cost:  float64(g.values[ny][nx]),
			})
		}

		return succ
	}
}

// GoalCell returns a goal predicate matching exactly the given cell.
func GoalCell(goal Cell) search.GoalFunc[Cell] {
	return func(c Cell) bool { return c == goal }
}

// Manhattan returns the L1 distance heuristic to goal. It is admissible
// and consistent for Conn4 movement with unit step costs.
func Manhattan(goal Cell) search.HeuristicFunc[Cell] {
	return func(c Cell) float64 {
		return math.Abs(float64(c.X-goal.X)) + math.Abs(float64(c.Y-goal.Y))
	}
}

// Chebyshev returns the L∞ distance heuristic to goal. It is admissible
// and consistent for Conn8 movement with unit step costs.
func Chebyshev(goal Cell) search.HeuristicFunc[Cell] {
	return func(c Cell) float64 {
		return math.Max(math.Abs(float64(c.X-goal.X)), math.Abs(float64(c.Y-goal.Y)))
	}
}
