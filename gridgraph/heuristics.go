package gridgraph

import (
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// Manhattan returns |dx| + |dy| to goal. Admissible under Conn4.
func Manhattan(goal Cell) search.Heuristic[Cell] {
	return func(c Cell) float64 {
		dx, dy := delta(c, goal)
		return dx + dy
	}
}

// Octile returns the exact obstacle-free Conn8 distance to goal when
// diagonal moves cost diag: max·1 + min·(diag-1).
// Admissible under Conn8 for 1 ≤ diag ≤ 2.
func Octile(goal Cell, diag float64) search.Heuristic[Cell] {
	return func(c Cell) float64 {
		dx, dy := delta(c, goal)
		lo, hi := math.Min(dx, dy), math.Max(dx, dy)
		return hi + lo*(diag-1)
	}
}

// Chebyshev returns max(|dx|, |dy|) to goal. Admissible under Conn8 with
// diagonal cost ≥ 1.
func Chebyshev(goal Cell) search.Heuristic[Cell] {
	return func(c Cell) float64 {
		dx, dy := delta(c, goal)
		return math.Max(dx, dy)
	}
}

// Euclidean returns the straight-line distance to goal. Admissible under
// Conn4, and under Conn8 with diagonal cost ≥ √2.
func Euclidean(goal Cell) search.Heuristic[Cell] {
	return func(c Cell) float64 {
		dx, dy := delta(c, goal)
		return math.Hypot(dx, dy)
	}
}

func delta(a, b Cell) (float64, float64) {
	return math.Abs(float64(a.X - b.X)), math.Abs(float64(a.Y - b.Y))
}
