// Package nqueens instantiates the search engine for the N-Queens puzzle.
//
// A Board places one queen per column and records its row. Every Move
// relocates a single queen within its column and costs 1, so uniform-cost
// search finds the fewest moves from the initial board to a placement where
// no two queens share a row or a diagonal.
//
// Heuristics:
//
//   - NoQueenAttack:    pairs of queens sharing a row or a diagonal.
//   - NoQueenRowAttack: pairs of queens sharing a row.
//
// Both are plain functions of a Board and plug directly into
// search.AStarSearch or search.GreedySearch:
//
//	start, _ := nqueens.Uniform(8, 0)
//	p, _ := nqueens.New(8, start)
//	goal, expansions, err := search.AStarSearch(p, nqueens.NoQueenAttack)
package nqueens
