package search_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestBestFirst_NilProblem(t *testing.T) {
	goal, n, err := search.BestFirst[vertex, edge](nil, search.UniformCost[vertex, edge]())
	assert.Nil(t, goal)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, search.ErrNilProblem)
}

func TestBestFirst_NilEvaluator(t *testing.T) {
	net := newNetwork("A", "A")
	goal, n, err := search.BestFirst[vertex, edge](net, nil)
	assert.Nil(t, goal)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, search.ErrNilEvaluator)
}

func TestAStarSearch_NilHeuristic(t *testing.T) {
	net := newNetwork("A", "A")
	_, _, err := search.AStarSearch[vertex, edge](net, nil)
	assert.ErrorIs(t, err, search.ErrNilHeuristic)

	_, _, err = search.GreedySearch[vertex, edge](net, nil)
	assert.ErrorIs(t, err, search.ErrNilHeuristic)

	_, _, err = search.WeightedAStarSearch[vertex, edge](net, nil, 2)
	assert.ErrorIs(t, err, search.ErrNilHeuristic)
}

func TestWeightedAStarSearch_BadWeight(t *testing.T) {
	net := newNetwork("A", "A")
	_, _, err := search.WeightedAStarSearch(net, zero, 0.5)
	assert.ErrorIs(t, err, search.ErrBadWeight)
}

func TestBestFirst_NegativeMaxExpansions(t *testing.T) {
	net := newNetwork("A", "A")
	_, _, err := search.UniformCostSearch(net, search.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Trivial problems
// ------------------------------------------------------------------------

func TestBestFirst_Unsolvable_SingleState(t *testing.T) {
	// A single state that is never a goal and has no actions.
	net := newNetwork("A")
	goal, n, err := search.UniformCostSearch(net)
	require.NoError(t, err)
	assert.Nil(t, goal)
	assert.Equal(t, 1, n)
}

func TestBestFirst_RootIsGoal(t *testing.T) {
	net := newNetwork("A", "A").link("A", "B", 1)
	goal, n, err := search.UniformCostSearch(net)
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.True(t, goal.IsRoot())
	assert.Equal(t, 1, n)
	assert.Equal(t, 0.0, goal.PathCost)
	assert.Equal(t, []string{"A"}, ids(goal.Path()))
	assert.Nil(t, goal.Actions())
}

func TestBestFirst_UnreachableGoal(t *testing.T) {
	// A→B→C, goal D is never generated: all three states are expanded once.
	net := newNetwork("A", "D").link("A", "B", 1).link("B", "C", 1).link("C", "A", 1)
	goal, n, err := search.UniformCostSearch(net)
	require.NoError(t, err)
	assert.Nil(t, goal)
	assert.Equal(t, 3, n)
}

// ------------------------------------------------------------------------
// 3. Optimality
// ------------------------------------------------------------------------

func TestUniformCost_Triangle(t *testing.T) {
	// A-B(1), B-C(2), A-C(5): cheapest A→C goes through B.
	net := newNetwork("A", "C").
		link("A", "C", 5).
		link("A", "B", 1).
		link("B", "C", 2)

	goal, n, err := search.UniformCostSearch(net)
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.Equal(t, 3.0, goal.PathCost)
	assert.Equal(t, []string{"A", "B", "C"}, ids(goal.Path()))
	assert.Equal(t, 2, goal.Depth)
	assert.Equal(t, 3, n)
}

func TestAStar_AdmissibleMatchesUniformCost(t *testing.T) {
	net := newNetwork("A", "D").
		link("A", "B", 2).
		link("A", "C", 1).
		link("C", "B", 1).
		link("B", "D", 3).
		link("C", "D", 5)
	// exact remaining distances: A=5, B=3, C=4, D=0; halve them to stay admissible.
	h := func(v vertex) float64 {
		return map[string]float64{"A": 2.5, "B": 1.5, "C": 2, "D": 0}[v.id]
	}

	ucs, _, err := search.UniformCostSearch(net)
	require.NoError(t, err)
	astar, _, err := search.AStarSearch(net, h)
	require.NoError(t, err)

	require.NotNil(t, ucs)
	require.NotNil(t, astar)
	assert.Equal(t, 5.0, ucs.PathCost)
	assert.Equal(t, ucs.PathCost, astar.PathCost)
	// A→B→D and A→C→B→D both cost 5; the first one pushed wins.
	assert.Equal(t, []string{"A", "B", "D"}, ids(astar.Path()))
}

func TestAStar_InadmissibleMayMissOptimum(t *testing.T) {
	// Overestimating h(B) hides the cheap route; the engine does not guard against it.
	net := newNetwork("A", "C").link("A", "C", 5).link("A", "B", 1).link("B", "C", 2)
	h := func(v vertex) float64 {
		if v.id == "B" {
			return 100
		}
		return 0
	}

	goal, _, err := search.AStarSearch(net, h)
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.Equal(t, 5.0, goal.PathCost)
}

func TestOptimality_RandomNetworks(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 60; trial++ {
		const n = 12
		net := randomNetwork(rng, n, 40, 9)
		dist := allPairs(net, n)
		want := dist[0][n-1]

		// admissible heuristic: a fraction of the exact remaining distance
		h := func(v vertex) float64 {
			d := dist[index(v.id)][n-1]
			if math.IsInf(d, 1) {
				return 0
			}
			return 0.75 * d
		}

		ucs, ucsN, err := search.UniformCostSearch(net)
		require.NoError(t, err)
		astar, astarN, err := search.AStarSearch(net, h)
		require.NoError(t, err)

		if math.IsInf(want, 1) {
			assert.Nil(t, ucs, "trial %d: goal unreachable", trial)
			assert.Nil(t, astar, "trial %d: goal unreachable", trial)
			continue
		}
		require.NotNil(t, ucs, "trial %d", trial)
		require.NotNil(t, astar, "trial %d", trial)
		assert.Equal(t, want, ucs.PathCost, "trial %d: uniform cost", trial)
		assert.Equal(t, want, astar.PathCost, "trial %d: A*", trial)
		assert.Positive(t, ucsN)
		assert.Positive(t, astarN)
	}
}

// ------------------------------------------------------------------------
// 4. Re-opening policy and expansion counting
// ------------------------------------------------------------------------

// reopenNetwork finds B at cost 5 first, then at cost 2 via C, leaving a
// stale B(5) entry in the frontier ahead of the goal G(12).
func reopenNetwork() *network {
	return newNetwork("A", "G").
		link("A", "B", 5).
		link("A", "C", 1).
		link("C", "B", 1).
		link("B", "G", 10)
}

func TestBestFirst_StaleEntryIsExpandedByDefault(t *testing.T) {
	var order []string
	var costs []float64
	goal, n, err := search.UniformCostSearch(reopenNetwork(), search.WithOnExpand(func(e search.Event) {
		order = append(order, e.State.(vertex).id)
		costs = append(costs, e.PathCost)
	}))
	require.NoError(t, err)
	require.NotNil(t, goal)

	assert.Equal(t, 12.0, goal.PathCost)
	assert.Equal(t, 5, n)
	assert.Equal(t, []string{"A", "C", "B", "B", "G"}, order)
	assert.Equal(t, []float64{0, 1, 2, 5, 12}, costs)
}

func TestBestFirst_SkipStale(t *testing.T) {
	var order []string
	goal, n, err := search.UniformCostSearch(reopenNetwork(),
		search.WithSkipStale(),
		search.WithOnExpand(func(e search.Event) { order = append(order, e.State.(vertex).id) }),
	)
	require.NoError(t, err)
	require.NotNil(t, goal)

	// same answer, one fewer expansion
	assert.Equal(t, 12.0, goal.PathCost)
	assert.Equal(t, 4, n)
	assert.Equal(t, []string{"A", "C", "B", "G"}, order)
}

func TestBestFirst_EqualCostDuplicateIsNotPushed(t *testing.T) {
	// Two routes to D of equal cost: only the first discovered is kept.
	net := newNetwork("A", "D").
		link("A", "B", 1).
		link("A", "C", 1).
		link("B", "D", 1).
		link("C", "D", 1)

	var enqueued []string
	goal, _, err := search.UniformCostSearch(net, search.WithOnEnqueue(func(e search.Event) {
		enqueued = append(enqueued, e.State.(vertex).id)
	}))
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.Equal(t, []string{"A", "B", "C", "D"}, enqueued)
	assert.Equal(t, []string{"A", "B", "D"}, ids(goal.Path()))
}

func TestBestFirst_ExpansionCounterIsMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	net := randomNetwork(rng, 30, 120, 5)

	var seen []int
	_, n, err := search.UniformCostSearch(net, search.WithOnExpand(func(e search.Event) {
		seen = append(seen, e.Expansions)
	}))
	require.NoError(t, err)
	require.Len(t, seen, n)
	for i, v := range seen {
		assert.Equal(t, i+1, v)
	}
}

func TestBestFirst_SkipStaleBoundedByReachableStates(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 30; trial++ {
		const n = 25
		net := randomNetwork(rng, n, 90, 6)
		net.goals = map[string]bool{} // force exhaustive exploration

		reachable := map[string]bool{}
		_, expansions, err := search.UniformCostSearch(net,
			search.WithSkipStale(),
			search.WithOnExpand(func(e search.Event) { reachable[e.State.(vertex).id] = true }),
		)
		require.NoError(t, err)
		assert.LessOrEqual(t, expansions, len(reachable), "trial %d", trial)
		assert.Equal(t, expansions, len(reachable), "trial %d: each state expanded once", trial)
	}
}

// ------------------------------------------------------------------------
// 5. Determinism and path reconstruction
// ------------------------------------------------------------------------

func TestBestFirst_FIFOTieBreak(t *testing.T) {
	// Star: every child of A has the same priority, so they come out in
	// generation order.
	net := newNetwork("A").
		link("A", "B", 1).
		link("A", "C", 1).
		link("A", "D", 1).
		link("A", "E", 1)

	var order []string
	_, n, err := search.UniformCostSearch(net, search.WithOnExpand(func(e search.Event) {
		order = append(order, e.State.(vertex).id)
	}))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, order)
}

func TestBestFirst_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	net := randomNetwork(rng, 40, 160, 3)

	run := func() ([]int, []string) {
		var seqs []int
		var states []string
		_, _, err := search.UniformCostSearch(net, search.WithOnExpand(func(e search.Event) {
			seqs = append(seqs, e.Seq)
			states = append(states, e.State.(vertex).id)
		}))
		require.NoError(t, err)
		return seqs, states
	}

	seqs1, states1 := run()
	seqs2, states2 := run()
	assert.Equal(t, seqs1, seqs2)
	assert.Equal(t, states1, states2)
}

func TestReplay_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	checked := 0
	for trial := 0; trial < 40; trial++ {
		net := randomNetwork(rng, 15, 45, 4)
		goal, _, err := search.UniformCostSearch(net)
		require.NoError(t, err)
		if goal == nil {
			continue
		}
		checked++

		path := goal.Path()
		actions := goal.Actions()
		require.Len(t, actions, len(path)-1)
		assert.Equal(t, path, search.Replay(net, actions), "trial %d", trial)

		// costs along the path are non-decreasing and sum to the goal cost
		steps := goal.Steps()
		total := 0.0
		for i := 1; i < len(steps); i++ {
			assert.GreaterOrEqual(t, steps[i].PathCost, steps[i-1].PathCost)
			assert.Same(t, steps[i-1], steps[i].Parent)
			total += steps[i].Action.Cost()
		}
		assert.Equal(t, goal.PathCost, total)
	}
	assert.Positive(t, checked)
}

func TestNode_NilPath(t *testing.T) {
	var n *search.Node[vertex, edge]
	assert.Nil(t, n.Path())
	assert.Nil(t, n.Steps())
	assert.Nil(t, n.Actions())
}

// ------------------------------------------------------------------------
// 6. Bounds, cancellation, cost validation and faults
// ------------------------------------------------------------------------

func TestBestFirst_MaxExpansions(t *testing.T) {
	goal, n, err := search.UniformCostSearch[counter, inc](endless{}, search.WithMaxExpansions(10))
	assert.Nil(t, goal)
	assert.Equal(t, 10, n)
	assert.ErrorIs(t, err, search.ErrExpansionLimit)
}

func TestBestFirst_MaxExpansionsNotHitOnExhaustion(t *testing.T) {
	// Three states, cap of three: the space runs out exactly at the cap.
	net := newNetwork("A").link("A", "B", 1).link("B", "C", 1)
	goal, n, err := search.UniformCostSearch(net, search.WithMaxExpansions(3))
	require.NoError(t, err)
	assert.Nil(t, goal)
	assert.Equal(t, 3, n)
}

func TestBestFirst_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, n, err := search.UniformCostSearch[counter, inc](endless{}, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func TestBestFirst_ContextCanceledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, n, err := search.UniformCostSearch[counter, inc](endless{},
		search.WithContext(ctx),
		search.WithOnExpand(func(e search.Event) {
			if e.Expansions == 25 {
				cancel()
			}
		}),
	)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 25, n)
}

func TestBestFirst_CostValidation(t *testing.T) {
	net := newNetwork("A", "C").link("A", "B", 1).link("B", "C", -3)

	// Without validation the engine trusts the problem.
	goal, _, err := search.UniformCostSearch(net)
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.Equal(t, -2.0, goal.PathCost)

	_, _, err = search.UniformCostSearch(net, search.WithCostValidation())
	assert.ErrorIs(t, err, search.ErrNegativeCost)
}

func TestBestFirst_ProblemPanicPropagates(t *testing.T) {
	p := panicky{network: newNetwork("A", "B").link("A", "B", 1)}
	assert.PanicsWithValue(t, "goal test exploded", func() {
		_, _, _ = search.UniformCostSearch[vertex, edge](p)
	})
}

// panicky fails its goal test on any non-root state.
type panicky struct{ *network }

func (p panicky) IsGoal(s vertex) bool {
	if s.id != p.start {
		panic("goal test exploded")
	}
	return false
}

// ------------------------------------------------------------------------
// 7. Other evaluators
// ------------------------------------------------------------------------

func TestBreadthFirst_FewestActions(t *testing.T) {
	// Cheap long route vs expensive short route.
	net := newNetwork("A", "D").
		link("A", "B", 1).
		link("B", "C", 1).
		link("C", "D", 1).
		link("A", "D", 10)

	goal, _, err := search.BreadthFirstSearch(net)
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.Equal(t, 1, goal.Depth)
	assert.Equal(t, 10.0, goal.PathCost)

	ucs, _, err := search.UniformCostSearch(net)
	require.NoError(t, err)
	assert.Equal(t, 3.0, ucs.PathCost)
}

func TestGreedy_FollowsHeuristic(t *testing.T) {
	net := newNetwork("A", "G").
		link("A", "B", 1).
		link("A", "C", 10).
		link("B", "G", 10).
		link("C", "G", 1)
	h := func(v vertex) float64 {
		return map[string]float64{"A": 2, "B": 1, "C": 5, "G": 0}[v.id]
	}

	goal, n, err := search.GreedySearch(net, h)
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.Equal(t, []string{"A", "B", "G"}, ids(goal.Path()))
	assert.Equal(t, 3, n)
}

func TestWeightedAStar_OneEqualsAStar(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	net := randomNetwork(rng, 20, 70, 5)

	a, an, err := search.AStarSearch(net, zero)
	require.NoError(t, err)
	w, wn, err := search.WeightedAStarSearch(net, zero, 1)
	require.NoError(t, err)
	assert.Equal(t, an, wn)
	if a != nil {
		require.NotNil(t, w)
		assert.Equal(t, a.PathCost, w.PathCost)
	}
}

func TestEvaluatorConstructors_Panic(t *testing.T) {
	assert.Panics(t, func() { search.AStar[vertex, edge](nil) })
	assert.Panics(t, func() { search.Greedy[vertex, edge](nil) })
	assert.Panics(t, func() { search.WeightedAStar[vertex, edge](zero, 0.9) })
}

func TestEvaluatorFunc(t *testing.T) {
	// Depth-first flavor: deeper nodes first.
	deepest := search.EvaluatorFunc[vertex, edge](func(n *search.Node[vertex, edge]) float64 {
		return -float64(n.Depth)
	})
	net := newNetwork("A", "Z").
		link("A", "B", 1).
		link("A", "C", 1).
		link("B", "D", 1).
		link("D", "Z", 1)

	var order []string
	goal, _, err := search.BestFirst(net, deepest, search.WithOnExpand(func(e search.Event) {
		order = append(order, e.State.(vertex).id)
	}))
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.Equal(t, []string{"A", "B", "D", "Z"}, order)
}

func TestHooks_ChainInOrder(t *testing.T) {
	var calls []string
	net := newNetwork("A", "C").link("A", "B", 1).link("B", "C", 2)
	_, n, err := search.UniformCostSearch(net,
		search.WithOnExpand(func(search.Event) { calls = append(calls, "first") }),
		search.WithOnExpand(nil),
		search.WithOnExpand(func(search.Event) { calls = append(calls, "second") }),
	)
	require.NoError(t, err)
	require.Len(t, calls, 2*n)
	assert.Equal(t, []string{"first", "second"}, calls[:2])
}
