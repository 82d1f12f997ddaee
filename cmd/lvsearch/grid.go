package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/search"
)

func newGridCmd(a *app) *cobra.Command {
	r := &config.Run{Problem: config.ProblemGrid, Grid: &config.Grid{}}
	cmd := &cobra.Command{
		Use:   "grid [maze.txt]",
		Short: "Find a shortest walk through a text maze",
		Long: `Reads a maze drawn with '#' (wall), '.' (free), 'S' (start) and 'G' (goal)
and prints the cheapest walk from S to G.`,
		Example: `  lvsearch grid maze.txt
  lvsearch grid --file maze.txt --conn 8 --algo ucs`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && !cmd.Flags().Changed("file") {
				r.Grid.File = args[0]
			}
			if err := r.Validate(); err != nil {
				return err
			}
			return a.solveGrid(cmd.Context(), cmd.OutOrStdout(), r, "")
		},
	}
	cmd.Flags().StringVar(&r.Grid.File, "file", "", "Maze file")
	cmd.Flags().IntVar(&r.Grid.Conn, "conn", 4, "Connectivity: 4 or 8")
	cmd.Flags().Float64Var(&r.Grid.DiagonalCost, "diagonal-cost", 0, "Cost of a diagonal move under --conn 8 (0 = √2)")
	addAlgoFlags(cmd, r, config.AlgoAStar)

	return cmd
}

// solveGrid loads the maze (inline rows win over a file resolved against
// baseDir) and searches it.
func (a *app) solveGrid(ctx context.Context, out io.Writer, r *config.Run, baseDir string) error {
	g := r.Grid
	rows := g.Rows
	if len(rows) == 0 {
		data, err := os.ReadFile(resolve(baseDir, g.File))
		if err != nil {
			return fmt.Errorf("failed to read maze: %w", err)
		}
		rows = strings.Split(string(data), "\n")
	}

	opts := gridgraph.DefaultGridOptions()
	if g.Conn == 8 {
		opts.Conn = gridgraph.Conn8
	}
	opts.DiagonalCost = g.DiagonalCost
	w, err := gridgraph.ParseRows(rows, opts)
	if err != nil {
		return err
	}
	if !w.Grid().Reachable(w.Start, w.Goal) {
		a.logger.Info("goal is not reachable from start; search will exhaust the component")
	}

	goal, n, err := solve(ctx, a, r.Problem, r.Algorithm, r.Weight, search.Problem[gridgraph.Cell, gridgraph.Step](w), w.Heuristic())
	if err != nil {
		return err
	}
	report(out, goal, n)
	if goal != nil {
		fmt.Fprintln(out, w.Render(goal.Path()))
	}

	return nil
}

// resolve interprets path relative to baseDir unless it is absolute.
func resolve(baseDir, path string) string {
	if baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
