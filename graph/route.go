package graph

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvsearch/search"
)

// Vertex is the search state for a route through a Graph.
// Two Vertex values are equal when they name the same vertex of the same graph.
type Vertex struct {
	ID string
	g  *Graph
}

// Actions yields the outgoing edges of v in insertion order.
func (v Vertex) Actions() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if v.g == nil {
			return
		}
		for _, e := range v.g.outgoing(v.ID) {
			if !yield(e) {
				return
			}
		}
	}
}

// String returns the vertex ID.
func (v Vertex) String() string { return v.ID }

// Route asks for the cheapest walk from one vertex to another.
type Route struct {
	g        *Graph
	from, to string
}

var _ search.Problem[Vertex, Edge] = (*Route)(nil)

// RouteProblem binds g to the search engine for a trip from → to.
// Returns ErrNilGraph, ErrEmptyVertexID, or a wrapped ErrVertexNotFound.
func RouteProblem(g *Graph, from, to string) (*Route, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	for _, id := range []string{from, to} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	return &Route{g: g, from: from, to: to}, nil
}

// From returns the start vertex ID.
func (r *Route) From() string { return r.from }

// To returns the destination vertex ID.
func (r *Route) To() string { return r.to }

// InitialState returns the start vertex.
func (r *Route) InitialState() Vertex { return Vertex{ID: r.from, g: r.g} }

// Transition follows e to its head.
func (r *Route) Transition(_ Vertex, e Edge) Vertex { return Vertex{ID: e.To, g: r.g} }

// IsGoal reports whether v is the destination.
func (r *Route) IsGoal(v Vertex) bool { return v.ID == r.to }

// IDs maps a state path to vertex IDs.
func IDs(path []Vertex) []string {
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = v.ID
	}

	return out
}
