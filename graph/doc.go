// Package graph is a weighted route network with a shortest-path oracle.
//
// A Graph stores outgoing edges per vertex in insertion order; undirected
// graphs mirror every edge. RouteProblem exposes a trip between two vertices
// as a search problem whose states are Vertex values and whose actions are
// Edge values costing their weight:
//
//	g := graph.NewGraph(graph.WithDirected(true))
//	_ = g.AddEdge("A", "B", 2)
//	_ = g.AddEdge("B", "C", 3)
//	route, _ := graph.RouteProblem(g, "A", "C")
//	goal, _, _ := search.UniformCostSearch(route)
//	fmt.Println(graph.IDs(goal.Path()), goal.PathCost) // [A B C] 5
//
// Distances runs Dijkstra from a source and serves as an independent oracle
// for search results. ExactHeuristic runs it on the reversed graph, giving
// A* a perfect heuristic.
//
// Concurrency: all Graph methods are safe for concurrent use. A search may
// run while edges are being added; it sees the edges present when each
// vertex is expanded.
package graph
