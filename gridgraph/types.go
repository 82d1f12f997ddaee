// Package gridgraph defines core types, options, and sentinel errors
// for grid path finding.
package gridgraph

import (
	"errors"
	"math"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlocked indicates a start or goal cell on a wall.
	ErrBlocked = errors.New("gridgraph: cell is a wall")
	// ErrBadDiagonalCost indicates a negative or NaN diagonal move cost.
	ErrBadDiagonalCost = errors.New("gridgraph: diagonal cost must be non-negative")
	// ErrBadSymbol indicates an unknown character in a text maze.
	ErrBadSymbol = errors.New("gridgraph: unknown maze symbol")
	// ErrMissingEndpoint indicates a text maze without exactly one S and one G.
	ErrMissingEndpoint = errors.New("gridgraph: maze needs exactly one S and one G")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// GridOptions contains tunable parameters for grid path finding.
type GridOptions struct {
	// WallThreshold is the minimum cell value treated as a wall.
	WallThreshold int
	// Conn chooses 4- or 8-directional movement.
	Conn Connectivity
	// DiagonalCost is the cost of one diagonal move under Conn8; 0 selects √2.
	DiagonalCost float64
}

// DefaultGridOptions returns WallThreshold=1 (values ≥1 are walls), Conn=Conn4
// and DiagonalCost=√2.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WallThreshold: 1,
		Conn:          Conn4,
		DiagonalCost:  math.Sqrt2,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the input value.
// offsets is precomputed from Conn.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	WallThreshold int
	DiagonalCost  float64
	offsets       [][2]int
}

// Cell is the search state: a position in a particular grid.
// Cells built by At (or returned by a search) are bound to their grid;
// literal Cell{X, Y} values are bound when passed to PathProblem.
type Cell struct {
	X, Y int
	gg   *GridGraph
}

// Step moves by (DX, DY); orthogonal steps cost 1, diagonal steps the grid's DiagonalCost.
type Step struct {
	DX, DY int
	cost   float64
}

// Cost returns the step cost.
func (s Step) Cost() float64 { return s.cost }
