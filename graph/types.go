// Package graph defines a weighted route network and binds it to the search
// engine: vertices become states, outgoing edges become actions.
//
// This file declares Graph, Vertex, Edge, GraphOption, the sentinel errors
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNilGraph        - graph pointer is nil.
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrNegativeWeight  - edge weight is negative or NaN.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNegativeWeight indicates an edge weight below zero (or NaN).
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

// Edge is a one-way connection From→To with a non-negative Weight.
// Undirected graphs store one Edge per direction.
// Edge is also the search action taken when leaving From along it.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Cost returns the edge weight.
func (e Edge) Cost() float64 { return e.Weight }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is an in-memory weighted adjacency list.
//
// Vertices are created implicitly by AddEdge or explicitly by AddVertex.
// Outgoing edges keep insertion order, which fixes the action order seen by
// the search engine. mu guards vertices and adjacency.
type Graph struct {
	mu sync.RWMutex

	directed bool

	// adjacency[from] = outgoing edges in insertion order
	adjacency map[string][]Edge
	edgeCount int
}

// NewGraph creates an empty Graph. By default it is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[string][]Edge)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
