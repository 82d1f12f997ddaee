// Package lvsearch is a small toolkit for best-first search over
// user-defined problems.
//
// Everything lives in subpackages:
//
//	search/    generic engine: uniform-cost, A*, weighted A*, greedy, BFS
//	nqueens/   the N-Queens puzzle as a search problem, with two heuristics
//	graph/     weighted adjacency graph, point-to-point routing and Dijkstra
//	gridgraph/ 2D mazes with 4- or 8-connectivity and distance heuristics
//
// The lvsearch command (cmd/lvsearch) solves any of the three problem kinds
// from flags or from a YAML run file, logs through log/slog and can expose
// Prometheus metrics for each run.
//
// Quick example:
//
//	start, _ := nqueens.Uniform(8, 0)
//	p, _ := nqueens.New(8, start)
//	goal, expansions, err := search.AStarSearch(p, nqueens.NoQueenAttack)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(goal.State.Rows(), goal.PathCost, expansions)
package lvsearch
