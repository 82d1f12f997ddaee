package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/graph"
	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/search"
)

func newRouteCmd(a *app) *cobra.Command {
	r := &config.Run{Problem: config.ProblemRoute, Route: &config.Route{}}
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the cheapest route through a weighted network",
		Long: `Loads a YAML edge list:

  directed: false
  edges:
    - {from: A, to: B, weight: 2}

and prints the cheapest route between two vertices.`,
		Example: `  lvsearch route --file roads.yaml --from Kyiv --to Lviv
  lvsearch route --file roads.yaml --from A --to B --algo astar --heuristic exact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.Validate(); err != nil {
				return err
			}
			return a.solveRoute(cmd.Context(), cmd.OutOrStdout(), r, "")
		},
	}
	cmd.Flags().StringVar(&r.Route.File, "file", "", "Network YAML file")
	cmd.Flags().StringVar(&r.Route.From, "from", "", "Start vertex")
	cmd.Flags().StringVar(&r.Route.To, "to", "", "Destination vertex")
	cmd.Flags().StringVar(&r.Route.Heuristic, "heuristic", "exact", "Heuristic: exact (reverse Dijkstra) or zero")
	addAlgoFlags(cmd, r, config.AlgoUCS)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *app) solveRoute(ctx context.Context, out io.Writer, r *config.Run, baseDir string) error {
	rt := r.Route
	network := rt.Network
	if network == nil {
		var err error
		if network, err = config.LoadNetwork(resolve(baseDir, rt.File)); err != nil {
			return err
		}
	}
	g, err := network.Build()
	if err != nil {
		return err
	}
	p, err := graph.RouteProblem(g, rt.From, rt.To)
	if err != nil {
		return err
	}

	h := func(graph.Vertex) float64 { return 0 }
	if rt.Heuristic == "exact" {
		if h, err = graph.ExactHeuristic(g, rt.To); err != nil {
			return err
		}
	}

	goal, n, err := solve(ctx, a, r.Problem, r.Algorithm, r.Weight, search.Problem[graph.Vertex, graph.Edge](p), h)
	if err != nil {
		return err
	}
	report(out, goal, n)
	if goal != nil {
		fmt.Fprintf(out, "route: %s\n", strings.Join(graph.IDs(goal.Path()), " → "))
	}

	return nil
}
