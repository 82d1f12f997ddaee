package main

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/search"
)

// solve runs algo on p, feeding metrics and logging the outcome.
// h is required by astar, wastar and greedy and ignored otherwise.
func solve[S search.State[A], A search.Action](
	ctx context.Context,
	a *app,
	kind, algo string,
	weight float64,
	p search.Problem[S, A],
	h search.Heuristic[S],
) (*search.Node[S, A], int, error) {
	opts, cancel := a.searchOptions(ctx)
	defer cancel()

	run := a.metrics.Start(kind, algo)
	opts = append(opts, run.Options()...)

	a.logger.Debug("starting search", "problem", kind, "algorithm", algo)

	var (
		goal *search.Node[S, A]
		n    int
		err  error
	)
	switch algo {
	case config.AlgoUCS:
		goal, n, err = search.UniformCostSearch(p, opts...)
	case config.AlgoAStar:
		goal, n, err = search.AStarSearch(p, h, opts...)
	case config.AlgoWeighted:
		goal, n, err = search.WeightedAStarSearch(p, h, weight, opts...)
	case config.AlgoGreedy:
		goal, n, err = search.GreedySearch(p, h, opts...)
	case config.AlgoBFS:
		goal, n, err = search.BreadthFirstSearch(p, opts...)
	default:
		err = fmt.Errorf("%w: %q", config.ErrUnknownAlgorithm, algo)
	}

	var cost float64
	if goal != nil {
		cost = goal.PathCost
	}
	run.Finish(goal != nil, cost, n, err)

	if err != nil {
		a.logger.Warn("search failed", "problem", kind, "algorithm", algo, "expansions", n, "error", err)
		return nil, n, err
	}
	a.logger.Info("search finished",
		"problem", kind,
		"algorithm", algo,
		"found", goal != nil,
		"expansions", n,
		"cost", cost,
	)

	return goal, n, nil
}

// report prints the common summary lines.
func report[S comparable, A search.Action](out io.Writer, goal *search.Node[S, A], n int) {
	if goal == nil {
		fmt.Fprintf(out, "no solution (expansions: %d)\n", n)
		return
	}
	fmt.Fprintf(out, "cost: %g\n", goal.PathCost)
	fmt.Fprintf(out, "steps: %d\n", goal.Depth)
	fmt.Fprintf(out, "expansions: %d\n", n)
}
