// Package config loads YAML run files for the lvsearch CLI.
//
// A run file names one problem, the algorithm to solve it with and the
// engine limits:
//
//	problem: grid
//	algorithm: astar
//	max_expansions: 100000
//	time_limit: 5s
//	grid:
//	  conn: 8
//	  rows:
//	    - "S..#"
//	    - ".#.G"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/graph"
)

// Problem kinds.
const (
	ProblemNQueens = "nqueens"
	ProblemGrid    = "grid"
	ProblemRoute   = "route"
)

// Algorithms understood by the CLI.
const (
	AlgoAStar    = "astar"
	AlgoUCS      = "ucs"
	AlgoGreedy   = "greedy"
	AlgoBFS      = "bfs"
	AlgoWeighted = "wastar"
)

// Sentinel errors for run-file validation.
var (
	ErrUnknownProblem   = errors.New("config: unknown problem")
	ErrUnknownAlgorithm = errors.New("config: unknown algorithm")
	ErrMissingSection   = errors.New("config: missing problem section")
	ErrInvalid          = errors.New("config: invalid value")
)

// Run is the top-level run file.
type Run struct {
	Problem       string        `yaml:"problem"`
	Algorithm     string        `yaml:"algorithm"`
	Weight        float64       `yaml:"weight"`
	MaxExpansions int           `yaml:"max_expansions"`
	TimeLimit     time.Duration `yaml:"time_limit"`
	SkipStale     bool          `yaml:"skip_stale"`
	LogLevel      string        `yaml:"log_level"`

	NQueens *NQueens `yaml:"nqueens"`
	Grid    *Grid    `yaml:"grid"`
	Route   *Route   `yaml:"route"`
}

// NQueens configures an N-Queens run. An empty Start means all queens on row 0.
type NQueens struct {
	N         int    `yaml:"n"`
	Start     []int  `yaml:"start"`
	Heuristic string `yaml:"heuristic"`
}

// Grid configures a maze run; Rows takes precedence over File.
type Grid struct {
	File         string   `yaml:"file"`
	Rows         []string `yaml:"rows"`
	Conn         int      `yaml:"conn"`
	DiagonalCost float64  `yaml:"diagonal_cost"`
}

// Route configures a trip through a network given inline or in File.
type Route struct {
	File      string   `yaml:"file"`
	Network   *Network `yaml:"network"`
	From      string   `yaml:"from"`
	To        string   `yaml:"to"`
	Heuristic string   `yaml:"heuristic"`
}

// Network is a weighted edge list.
type Network struct {
	Directed bool       `yaml:"directed"`
	Edges    []EdgeSpec `yaml:"edges"`
}

// EdgeSpec is one network edge.
type EdgeSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Load reads and validates the run file at path.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a run file, fills defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Run, error) {
	var r Run
	if err := decodeStrict(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse run file: %w", err)
	}
	r.applyDefaults()
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// applyDefaults fills unset fields.
func (r *Run) applyDefaults() {
	if r.Algorithm == "" {
		r.Algorithm = AlgoAStar
	}
	if r.Weight == 0 {
		r.Weight = 1
	}
	if r.LogLevel == "" {
		r.LogLevel = "info"
	}
	if r.NQueens != nil && r.NQueens.Heuristic == "" {
		r.NQueens.Heuristic = "attack"
	}
	if r.Grid != nil && r.Grid.Conn == 0 {
		r.Grid.Conn = 4
	}
	if r.Route != nil && r.Route.Heuristic == "" {
		r.Route.Heuristic = "exact"
	}
}

// Validate checks the run file for consistency.
func (r *Run) Validate() error {
	switch r.Algorithm {
	case AlgoAStar, AlgoUCS, AlgoGreedy, AlgoBFS, AlgoWeighted:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, r.Algorithm)
	}
	if r.Weight < 1 {
		return fmt.Errorf("%w: weight must be ≥ 1, got %g", ErrInvalid, r.Weight)
	}
	if r.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions must be ≥ 0, got %d", ErrInvalid, r.MaxExpansions)
	}
	if r.TimeLimit < 0 {
		return fmt.Errorf("%w: time_limit must be ≥ 0, got %s", ErrInvalid, r.TimeLimit)
	}

	switch r.Problem {
	case ProblemNQueens:
		if r.NQueens == nil {
			return fmt.Errorf("%w: %s", ErrMissingSection, r.Problem)
		}
		return r.NQueens.validate()
	case ProblemGrid:
		if r.Grid == nil {
			return fmt.Errorf("%w: %s", ErrMissingSection, r.Problem)
		}
		return r.Grid.validate()
	case ProblemRoute:
		if r.Route == nil {
			return fmt.Errorf("%w: %s", ErrMissingSection, r.Problem)
		}
		return r.Route.validate()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProblem, r.Problem)
	}
}

func (q *NQueens) validate() error {
	if q.N <= 0 {
		return fmt.Errorf("%w: nqueens.n must be positive, got %d", ErrInvalid, q.N)
	}
	if len(q.Start) != 0 && len(q.Start) != q.N {
		return fmt.Errorf("%w: nqueens.start has %d rows, want %d", ErrInvalid, len(q.Start), q.N)
	}
	switch q.Heuristic {
	case "attack", "row":
		return nil
	default:
		return fmt.Errorf("%w: nqueens.heuristic %q", ErrInvalid, q.Heuristic)
	}
}

func (g *Grid) validate() error {
	if len(g.Rows) == 0 && g.File == "" {
		return fmt.Errorf("%w: grid needs rows or file", ErrInvalid)
	}
	if g.Conn != 4 && g.Conn != 8 {
		return fmt.Errorf("%w: grid.conn must be 4 or 8, got %d", ErrInvalid, g.Conn)
	}
	if g.DiagonalCost < 0 {
		return fmt.Errorf("%w: grid.diagonal_cost must be ≥ 0, got %g", ErrInvalid, g.DiagonalCost)
	}

	return nil
}

func (rt *Route) validate() error {
	if rt.Network == nil && rt.File == "" {
		return fmt.Errorf("%w: route needs network or file", ErrInvalid)
	}
	if rt.From == "" || rt.To == "" {
		return fmt.Errorf("%w: route needs from and to", ErrInvalid)
	}
	switch rt.Heuristic {
	case "exact", "zero":
		return nil
	default:
		return fmt.Errorf("%w: route.heuristic %q", ErrInvalid, rt.Heuristic)
	}
}

// LoadNetwork reads a network file: a Network document at the top level.
func LoadNetwork(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read network file: %w", err)
	}
	var n Network
	if err := decodeStrict(data, &n); err != nil {
		return nil, fmt.Errorf("failed to parse network file: %w", err)
	}

	return &n, nil
}

// Build turns the edge list into a graph.Graph.
func (n *Network) Build() (*graph.Graph, error) {
	g := graph.NewGraph(graph.WithDirected(n.Directed))
	for i, e := range n.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}
