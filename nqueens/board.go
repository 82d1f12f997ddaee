package nqueens

import (
	"fmt"
	"iter"
	"strings"
)

// MaxN is the largest supported board size; each row index is stored in one byte.
const MaxN = 255

// Board is an immutable N-Queens placement: one queen per column, byte c
// holding the row of the queen in column c. Being a string, a Board is
// comparable and can key the search engine's explored map directly.
type Board string

// NewBoard builds a Board from per-column row indices.
// Returns ErrEmptyBoard for zero columns, ErrBoardTooLarge above MaxN,
// and ErrRowOutOfRange for any row outside [0, len(rows)).
func NewBoard(rows []int) (Board, error) {
	n := len(rows)
	if n == 0 {
		return "", ErrEmptyBoard
	}
	if n > MaxN {
		return "", fmt.Errorf("%w: n=%d", ErrBoardTooLarge, n)
	}
	buf := make([]byte, n)
	for col, row := range rows {
		if row < 0 || row >= n {
			return "", fmt.Errorf("%w: column %d has row %d, n=%d", ErrRowOutOfRange, col, row, n)
		}
		buf[col] = byte(row)
	}

	return Board(buf), nil
}

// Uniform returns an n×n board with every queen on the given row.
func Uniform(n, row int) (Board, error) {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = row
	}

	return NewBoard(rows)
}

// N returns the board size.
func (b Board) N() int { return len(b) }

// Row returns the row of the queen in column col.
func (b Board) Row(col int) int { return int(b[col]) }

// Rows returns a fresh slice of per-column rows.
func (b Board) Rows() []int {
	rows := make([]int, len(b))
	for col := range rows {
		rows[col] = int(b[col])
	}

	return rows
}

// Place returns a copy of b with the queen of column col moved to row.
func (b Board) Place(col, row int) Board {
	buf := []byte(b)
	buf[col] = byte(row)

	return Board(buf)
}

// Actions yields every move of a single queen to another row of its column,
// column by column, rows ascending.
func (b Board) Actions() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		n := b.N()
		for col := 0; col < n; col++ {
			for row := 0; row < n; row++ {
				if b.Row(col) == row {
					continue
				}
				if !yield(Move{Col: col, Row: row}) {
					return
				}
			}
		}
	}
}

// String renders the board row by row, "Q" for a queen and "." otherwise.
func (b Board) String() string {
	n := b.N()
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b.Row(c) == r {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		if r < n-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Move relocates the queen of column Col to row Row.
type Move struct {
	Col, Row int
}

// Cost is uniform: every move costs 1.
func (Move) Cost() float64 { return 1 }

// String formats the move as "col→row".
func (m Move) String() string { return fmt.Sprintf("%d→%d", m.Col, m.Row) }
