// Package gridgraph treats a 2D grid of integer cell values as a search space.
//
// Cells with value ≥ WallThreshold are walls; every other cell is free.
package gridgraph

import (
	"fmt"
	"iter"
	"math"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrBadDiagonalCost for a
// negative or NaN DiagonalCost.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	diag := opts.DiagonalCost
	if diag == 0 {
		diag = math.Sqrt2
	}
	if !(diag >= 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadDiagonalCost, opts.DiagonalCost)
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

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		WallThreshold: opts.WallThreshold,
		DiagonalCost:  diag,
		offsets:       offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsWall reports whether (x,y) is out of bounds or holds a wall.
func (gg *GridGraph) IsWall(x, y int) bool {
	return !gg.InBounds(x, y) || gg.CellValues[y][x] >= gg.WallThreshold
}

// At returns the cell (x,y) bound to gg, or ErrOutOfBounds.
func (gg *GridGraph) At(x, y int) (Cell, error) {
	if !gg.InBounds(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}

	return Cell{X: x, Y: y, gg: gg}, nil
}

// NeighborOffsets returns the precomputed neighbor offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// canStep reports whether a move by (dx,dy) from (x,y) is legal: the target is
// free and, for a diagonal, the two orthogonal cells it passes between are
// not both walls.
func (gg *GridGraph) canStep(x, y, dx, dy int) bool {
	if gg.IsWall(x+dx, y+dy) {
		return false
	}
	if dx != 0 && dy != 0 && gg.IsWall(x+dx, y) && gg.IsWall(x, y+dy) {
		return false
	}

	return true
}

// stepCost is 1 for orthogonal moves and DiagonalCost otherwise.
func (gg *GridGraph) stepCost(dx, dy int) float64 {
	if dx != 0 && dy != 0 {
		return gg.DiagonalCost
	}
	return 1
}

// Actions yields the legal steps from c in the grid's offset order
// (clockwise from north).
func (c Cell) Actions() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		gg := c.gg
		if gg == nil {
			return
		}
		for _, d := range gg.offsets {
			if !gg.canStep(c.X, c.Y, d[0], d[1]) {
				continue
			}
			if !yield(Step{DX: d[0], DY: d[1], cost: gg.stepCost(d[0], d[1])}) {
				return
			}
		}
	}
}

// Point returns the coordinates of c.
func (c Cell) Point() [2]int { return [2]int{c.X, c.Y} }

// String formats c as "(x,y)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }
