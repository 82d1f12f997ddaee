// Package gridgraph treats a 2D grid of cells as a path-finding search space.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; cells with value ≥ WallThreshold are walls.
//   - Cell is the search state and Step the action; Walk binds a start and a goal.
//   - Heuristics Manhattan, Octile, Chebyshev and Euclidean estimate remaining distance.
//   - ConnectedComponents and Reachable answer reachability without searching.
//   - ToGraph converts the free cells into a graph.Graph for Dijkstra cross-checks.
//   - ParseRows reads text mazes ('#', '.', 'S', 'G').
//
// Movement:
//
//   - Conn4: N, E, S, W, each costing 1.
//   - Conn8: adds the diagonals at GridOptions.DiagonalCost (√2 by default).
//     A diagonal may not squeeze between two walls that touch at a corner.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ToGraph:             O(W×H×d), Memory: O(W×H×d).
//   - A* with Walk.Heuristic explores at most the W×H free cells, each possibly
//     more than once when the heuristic is not consistent.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a start, goal or At cell lies outside the grid.
//   - ErrBlocked: a start or goal is a wall.
//   - ErrBadDiagonalCost, ErrBadSymbol, ErrMissingEndpoint: invalid options or maze text.
package gridgraph
