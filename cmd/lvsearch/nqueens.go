package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/nqueens"
	"github.com/katalvlaran/lvsearch/search"
)

func newNQueensCmd(a *app) *cobra.Command {
	r := &config.Run{Problem: config.ProblemNQueens, NQueens: &config.NQueens{}}
	cmd := &cobra.Command{
		Use:   "nqueens",
		Short: "Place N queens so that none attack each other",
		Long: `Starts from a board with one queen per column and moves queens within
their columns, one move at a time, until no two share a row or a diagonal.`,
		Example: `  lvsearch nqueens --n 8
  lvsearch nqueens --n 5 --algo ucs --start 0,0,0,0,0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.Validate(); err != nil {
				return err
			}
			return a.solveNQueens(cmd.Context(), cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().IntVar(&r.NQueens.N, "n", 8, "Board size")
	cmd.Flags().IntSliceVar(&r.NQueens.Start, "start", nil, "Initial row per column (default all zeros)")
	cmd.Flags().StringVar(&r.NQueens.Heuristic, "heuristic", "attack", "Heuristic: attack (rows and diagonals) or row")
	addAlgoFlags(cmd, r, config.AlgoAStar)

	return cmd
}

// addAlgoFlags registers --algo and --weight on cmd.
func addAlgoFlags(cmd *cobra.Command, r *config.Run, def string) {
	cmd.Flags().StringVar(&r.Algorithm, "algo", def, "Algorithm: astar, ucs, greedy, bfs or wastar")
	cmd.Flags().Float64Var(&r.Weight, "weight", 1, "Heuristic weight for wastar (≥ 1)")
}

func (a *app) solveNQueens(ctx context.Context, out io.Writer, r *config.Run) error {
	q := r.NQueens
	var (
		start nqueens.Board
		err   error
	)
	if len(q.Start) == 0 {
		start, err = nqueens.Uniform(q.N, 0)
	} else {
		start, err = nqueens.NewBoard(q.Start)
	}
	if err != nil {
		return err
	}
	p, err := nqueens.New(q.N, start)
	if err != nil {
		return err
	}

	var h search.Heuristic[nqueens.Board] = nqueens.NoQueenAttack
	if q.Heuristic == "row" {
		h = nqueens.NoQueenRowAttack
	}

	goal, n, err := solve(ctx, a, r.Problem, r.Algorithm, r.Weight, search.Problem[nqueens.Board, nqueens.Move](p), h)
	if err != nil {
		return err
	}
	report(out, goal, n)
	if goal == nil {
		return nil
	}
	fmt.Fprintf(out, "rows: %v\n", goal.State.Rows())
	fmt.Fprintf(out, "moves: %v\n", goal.Actions())
	fmt.Fprintln(out, goal.State)

	return nil
}
