package graph

import (
	"fmt"
	"sort"
)

// AddVertex ensures a vertex with the given id exists.
// Returns ErrEmptyVertexID if id is empty.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}

	return nil
}

// AddEdge connects from→to with weight w, creating missing endpoints.
// In undirected graphs the mirrored edge to→from is added as well
// (self-loops are stored once).
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrNegativeWeight if w < 0 or w is NaN.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, w float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !(w >= 0) {
		return fmt.Errorf("%w: %s→%s weight=%g", ErrNegativeWeight, from, to, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: w})
	if _, ok := g.adjacency[to]; !ok {
		g.adjacency[to] = nil
	}
	g.edgeCount++
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: w})
	}

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of AddEdge calls that succeeded;
// a mirrored undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Neighbors returns a copy of the outgoing edges of id in insertion order.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	out, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return append([]Edge(nil), out...), nil
}

// outgoing returns the live adjacency slice of id. Edges are only ever
// appended, so the returned prefix stays valid after the lock is released.
func (g *Graph) outgoing(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[id]
}

// Reverse returns a new graph with every edge flipped.
// An undirected graph is its own reverse; Reverse then returns a copy.
// Complexity: O(V + E).
func Reverse(g *Graph) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	r := NewGraph(WithDirected(true))
	r.directed = g.directed
	for _, id := range sortedKeys(g.adjacency) {
		if _, ok := r.adjacency[id]; !ok {
			r.adjacency[id] = nil
		}
		for _, e := range g.adjacency[id] {
			r.adjacency[e.To] = append(r.adjacency[e.To], Edge{From: e.To, To: e.From, Weight: e.Weight})
		}
	}
	r.edgeCount = g.edgeCount

	return r, nil
}

func sortedKeys(m map[string][]Edge) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
