package search_test

import (
	"fmt"
	"iter"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvsearch/search"
)

// edge is a weighted action leading to vertex `to`.
type edge struct {
	to   string
	cost float64
}

func (e edge) Cost() float64 { return e.cost }

// network is an explicit directed graph used as a test problem.
// Adjacency order is insertion order, so action order is deterministic.
type network struct {
	adj   map[string][]edge
	start string
	goals map[string]bool
}

func newNetwork(start string, goals ...string) *network {
	n := &network{adj: make(map[string][]edge), start: start, goals: make(map[string]bool)}
	for _, g := range goals {
		n.goals[g] = true
	}

	return n
}

func (n *network) link(from, to string, cost float64) *network {
	n.adj[from] = append(n.adj[from], edge{to: to, cost: cost})

	return n
}

// vertex is the comparable state; it carries the network so it can list actions.
type vertex struct {
	id  string
	net *network
}

func (v vertex) Actions() iter.Seq[edge] {
	return func(yield func(edge) bool) {
		for _, e := range v.net.adj[v.id] {
			if !yield(e) {
				return
			}
		}
	}
}

func (n *network) InitialState() vertex               { return vertex{id: n.start, net: n} }
func (n *network) Transition(s vertex, a edge) vertex { return vertex{id: a.to, net: s.net} }
func (n *network) IsGoal(s vertex) bool               { return n.goals[s.id] }

// ids maps a state path to vertex IDs.
func ids(path []vertex) []string {
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = v.id
	}

	return out
}

// index parses the numeric suffix of a random-network vertex ID ("v7" → 7).
func index(id string) int {
	var i int
	_, _ = fmt.Sscanf(id, "v%d", &i)

	return i
}

// zero is the trivially admissible heuristic.
func zero(vertex) float64 { return 0 }

// randomNetwork builds a seeded random digraph with n vertices "v0".."v{n-1}",
// start v0, goal v{n-1}, and non-negative integer costs in [0, maxCost].
func randomNetwork(rng *rand.Rand, n, edges, maxCost int) *network {
	net := newNetwork("v0", fmt.Sprintf("v%d", n-1))
	for i := 0; i < edges; i++ {
		u := rng.Intn(n)
		v := rng.Intn(n)
		net.link(fmt.Sprintf("v%d", u), fmt.Sprintf("v%d", v), float64(rng.Intn(maxCost+1)))
	}

	return net
}

// allPairs computes shortest distances with Floyd–Warshall; it is the oracle
// the search results are checked against.
func allPairs(net *network, n int) [][]float64 {
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = math.Inf(1)
			}
		}
	}
	for i := 0; i < n; i++ {
		for _, e := range net.adj[fmt.Sprintf("v%d", i)] {
			j := index(e.to)
			if e.cost < d[i][j] {
				d[i][j] = e.cost
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	return d
}

// counter is an unbounded problem: states are integers, each has one +1 action.
type counter int

type inc struct{}

func (inc) Cost() float64 { return 1 }

func (c counter) Actions() iter.Seq[inc] {
	return func(yield func(inc) bool) { yield(inc{}) }
}

type endless struct{}

func (endless) InitialState() counter               { return 0 }
func (endless) Transition(s counter, _ inc) counter { return s + 1 }
func (endless) IsGoal(counter) bool                 { return false }

// compile-time interface checks
var (
	_ search.Problem[vertex, edge] = (*network)(nil)
	_ search.Problem[counter, inc] = endless{}
)
