package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/graph"
)

// VertexID formats the graph vertex identifier for cell (x,y).
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToGraph converts the free cells of gg into a directed *graph.Graph.
// Each free cell (x,y) becomes vertex "x,y"; every legal step becomes an
// edge weighted with its cost. Walls produce no vertices.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToGraph() (*graph.Graph, error) {
	g := graph.NewGraph(graph.WithDirected(true))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.IsWall(x, y) {
				continue
			}
			if err := g.AddVertex(VertexID(x, y)); err != nil {
				return nil, err
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := Cell{X: x, Y: y, gg: gg}
			if gg.IsWall(x, y) {
				continue
			}
			for s := range c.Actions() {
				if err := g.AddEdge(VertexID(x, y), VertexID(x+s.DX, y+s.DY), s.Cost()); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
