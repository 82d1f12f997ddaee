package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/logging"
)

func newRunCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "run [run.yaml]",
		Short: "Run a search described by a YAML run file",
		Example: `  lvsearch run --config examples/eight-queens.yaml
  lvsearch run maze-run.yaml --max-expansions 1000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && !cmd.Flags().Changed("config") {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("%w: no run file given", config.ErrInvalid)
			}
			r, err := config.Load(path)
			if err != nil {
				return err
			}
			if err := a.applyRunFile(cmd, r); err != nil {
				return err
			}

			return a.execute(cmd.Context(), cmd.OutOrStdout(), r, filepath.Dir(path))
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "Run file")

	return cmd
}

// applyRunFile lets run-file settings fill in persistent flags the user did
// not set explicitly.
func (a *app) applyRunFile(cmd *cobra.Command, r *config.Run) error {
	flags := cmd.Flags()
	if !flags.Changed("max-expansions") && r.MaxExpansions > 0 {
		a.flags.maxExpansions = r.MaxExpansions
	}
	if !flags.Changed("skip-stale") && r.SkipStale {
		a.flags.skipStale = true
	}
	if !flags.Changed("timeout") && r.TimeLimit > 0 {
		a.flags.timeout = r.TimeLimit
	}
	if !flags.Changed("log-level") {
		level, err := logging.ParseLevel(r.LogLevel)
		if err != nil {
			return err
		}
		a.logger = logging.NewWriter(cmd.ErrOrStderr(), level)
	}

	return nil
}

// execute dispatches a validated run to its solver.
func (a *app) execute(ctx context.Context, out io.Writer, r *config.Run, baseDir string) error {
	switch r.Problem {
	case config.ProblemNQueens:
		return a.solveNQueens(ctx, out, r)
	case config.ProblemGrid:
		return a.solveGrid(ctx, out, r, baseDir)
	case config.ProblemRoute:
		return a.solveRoute(ctx, out, r, baseDir)
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownProblem, r.Problem)
	}
}
