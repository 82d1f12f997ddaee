package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// Walk is the problem of moving from Start to Goal through free cells.
type Walk struct {
	gg          *GridGraph
	Start, Goal Cell
}

var _ search.Problem[Cell, Step] = (*Walk)(nil)

// PathProblem binds start and goal to gg and returns the walk between them.
// Returns ErrOutOfBounds if either lies outside the grid and ErrBlocked if
// either is a wall.
func (gg *GridGraph) PathProblem(start, goal Cell) (*Walk, error) {
	for _, c := range []Cell{start, goal} {
		if !gg.InBounds(c.X, c.Y) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
		if gg.IsWall(c.X, c.Y) {
			return nil, fmt.Errorf("%w: %v", ErrBlocked, c)
		}
	}
	start.gg, goal.gg = gg, gg

	return &Walk{gg: gg, Start: start, Goal: goal}, nil
}

// Grid returns the grid being walked.
func (w *Walk) Grid() *GridGraph { return w.gg }

// InitialState returns the start cell.
func (w *Walk) InitialState() Cell { return w.Start }

// Transition applies s to c.
func (w *Walk) Transition(c Cell, s Step) Cell {
	return Cell{X: c.X + s.DX, Y: c.Y + s.DY, gg: w.gg}
}

// IsGoal reports whether c is the goal cell.
func (w *Walk) IsGoal(c Cell) bool { return c.X == w.Goal.X && c.Y == w.Goal.Y }

// Heuristic returns an admissible distance estimate for the grid's
// movement rules: Manhattan for Conn4, Octile for Conn8 with a diagonal
// cost in [1, 2], and Chebyshev scaled by the cheapest move otherwise.
func (w *Walk) Heuristic() search.Heuristic[Cell] {
	diag := w.gg.DiagonalCost
	switch {
	case w.gg.Conn != Conn8:
		return Manhattan(w.Goal)
	case diag >= 1 && diag <= 2:
		return Octile(w.Goal, diag)
	default:
		cheb, step := Chebyshev(w.Goal), math.Min(1, diag)
		return func(c Cell) float64 { return step * cheb(c) }
	}
}

// Render draws the grid with '#' for walls, '.' for free cells, '*' for
// cells on path, and 'S' and 'G' for the walk's endpoints.
func (w *Walk) Render(path []Cell) string {
	gg := w.gg
	on := make(map[int]bool, len(path))
	for _, c := range path {
		on[gg.index(c.X, c.Y)] = true
	}
	buf := make([]byte, 0, (gg.Width+1)*gg.Height)
	for y := 0; y < gg.Height; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := 0; x < gg.Width; x++ {
			switch {
			case x == w.Start.X && y == w.Start.Y:
				buf = append(buf, 'S')
			case x == w.Goal.X && y == w.Goal.Y:
				buf = append(buf, 'G')
			case gg.IsWall(x, y):
				buf = append(buf, '#')
			case on[gg.index(x, y)]:
				buf = append(buf, '*')
			default:
				buf = append(buf, '.')
			}
		}
	}

	return string(buf)
}
