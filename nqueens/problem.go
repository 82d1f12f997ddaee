package nqueens

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors for board and problem construction.
var (
	// ErrEmptyBoard indicates a board with zero columns.
	ErrEmptyBoard = errors.New("nqueens: board must have at least one column")

	// ErrBoardTooLarge indicates more than MaxN columns.
	ErrBoardTooLarge = errors.New("nqueens: board exceeds maximum size")

	// ErrRowOutOfRange indicates a queen placed outside the board.
	ErrRowOutOfRange = errors.New("nqueens: row out of range")

	// ErrSizeMismatch indicates an initial board whose size differs from n.
	ErrSizeMismatch = errors.New("nqueens: initial board size does not match n")
)

// Problem is the N-Queens search problem: starting from an arbitrary
// one-queen-per-column placement, move queens within their columns until no
// two share a row or a diagonal.
type Problem struct {
	n       int
	initial Board
}

var _ search.Problem[Board, Move] = Problem{}

// New returns the n-queens problem starting at initial.
func New(n int, initial Board) (Problem, error) {
	if n <= 0 || initial.N() == 0 {
		return Problem{}, ErrEmptyBoard
	}
	if initial.N() != n {
		return Problem{}, fmt.Errorf("%w: n=%d, board has %d columns", ErrSizeMismatch, n, initial.N())
	}

	return Problem{n: n, initial: initial}, nil
}

// N returns the board size.
func (p Problem) N() int { return p.n }

// InitialState returns the starting board.
func (p Problem) InitialState() Board { return p.initial }

// Transition moves one queen; b is left untouched.
func (p Problem) Transition(b Board, m Move) Board { return b.Place(m.Col, m.Row) }

// IsGoal reports whether no two queens share a row or a diagonal.
func (p Problem) IsGoal(b Board) bool { return attacks(b, true) == 0 }
