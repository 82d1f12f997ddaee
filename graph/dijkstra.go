package graph

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// Distances computes the shortest distance from source to every vertex of g
// with Dijkstra's algorithm. Unreachable vertices map to +Inf.
//
// It uses a lazy decrease-key heap: improved distances are pushed again and
// outdated entries are skipped when popped.
//
// Errors: ErrNilGraph, ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Distances(g *Graph, source string) (map[string]float64, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	// 2) Prepare the runner and run the main loop.
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		source:  source,
		dist:    make(map[string]float64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(distPQ, 0, len(vertices)),
	}
	r.init(vertices)
	r.process()

	return r.dist, nil
}

// ExactHeuristic returns the true remaining distance to goal for every
// vertex, computed by Dijkstra on the reversed graph. It is admissible and
// consistent; vertices that cannot reach goal get +Inf.
func ExactHeuristic(g *Graph, goal string) (search.Heuristic[Vertex], error) {
	rev, err := Reverse(g)
	if err != nil {
		return nil, err
	}
	dist, err := Distances(rev, goal)
	if err != nil {
		return nil, err
	}

	return func(v Vertex) float64 {
		if d, ok := dist[v.ID]; ok {
			return d
		}
		return math.Inf(1)
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *Graph             // read-only input
	source  string             // start vertex
	dist    map[string]float64 // best known distance per vertex
	visited map[string]bool    // finalized vertices
	pq      distPQ             // lazy min-heap
}

// init sets every distance to +Inf and pushes the source at 0.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, distItem{id: r.source, dist: 0})
}

// process pops vertices in distance order and relaxes their edges.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(distItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax improves the distance of every neighbor reachable from u.
func (r *runner) relax(u string) {
	for _, e := range r.g.outgoing(u) {
		nd := r.dist[u] + e.Weight
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		heap.Push(&r.pq, distItem{id: e.To, dist: nd})
	}
}

// distItem is a heap entry: a vertex and a tentative distance.
type distItem struct {
	id   string
	dist float64
}

// distPQ is a min-heap of distItem ordered by dist.
type distPQ []distItem

func (pq distPQ) Len() int           { return len(pq) }
func (pq distPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x to the heap.
func (pq *distPQ) Push(x any) { *pq = append(*pq, x.(distItem)) }

// Pop removes and returns the last element.
func (pq *distPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
