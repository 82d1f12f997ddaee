package gridgraph

import (
	"fmt"
	"strings"
)

// Maze symbols understood by ParseRows.
const (
	SymbolWall  = '#'
	SymbolFree  = '.'
	SymbolStart = 'S'
	SymbolGoal  = 'G'
)

// ParseRows reads a text maze, one string per row: '#' is a wall, '.' free,
// 'S' the start and 'G' the goal (both free). Surrounding whitespace on each
// row is ignored and blank rows are skipped. opts.WallThreshold is forced
// to 1 so walls parse as value 1.
//
// Returns the walk from S to G, or ErrEmptyGrid, ErrNonRectangular,
// ErrBadSymbol, ErrMissingEndpoint.
func ParseRows(rows []string, opts GridOptions) (*Walk, error) {
	var (
		values      [][]int
		start, goal []Cell
	)
	for _, line := range rows {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		y := len(values)
		row := make([]int, 0, len(line))
		for x, r := range []rune(line) {
			switch r {
			case SymbolWall:
				row = append(row, 1)
				continue
			case SymbolFree:
			case SymbolStart:
				start = append(start, Cell{X: x, Y: y})
			case SymbolGoal:
				goal = append(goal, Cell{X: x, Y: y})
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, r, x, y)
			}
			row = append(row, 0)
		}
		values = append(values, row)
	}
	if len(start) != 1 || len(goal) != 1 {
		if len(values) == 0 {
			return nil, ErrEmptyGrid
		}
		return nil, fmt.Errorf("%w: found %d S and %d G", ErrMissingEndpoint, len(start), len(goal))
	}

	opts.WallThreshold = 1
	gg, err := NewGridGraph(values, opts)
	if err != nil {
		return nil, err
	}

	return gg.PathProblem(start[0], goal[0])
}
