package search

import (
	"container/heap"
	"fmt"
)

// BestFirst explores the states of p in the order given by eval and returns
// the first goal node popped from the frontier together with the number of
// expansions performed.
//
// Returns:
//
//   - goal:       the goal node, or nil when the reachable space holds no goal.
//   - expansions: number of nodes popped and counted (always ≥ 1 on success).
//   - err:        ErrNilProblem, ErrNilEvaluator, ErrOptionViolation, or one of
//     the opt-in failures (ctx.Err(), ErrExpansionLimit, ErrNegativeCost).
//
// Algorithm:
//
//  1. Push the root with priority eval(root) and sequence 0.
//  2. Pop the entry with the lowest (priority, sequence) and count it.
//  3. If its state is a goal, return it.
//  4. Record it in the explored map under its state, overwriting any entry.
//  5. For each action, build the child. If its state is unexplored, or the
//     explored record is strictly more expensive, push the child and make it
//     the explored record.
//
// Superseded frontier entries are not removed; they are expanded again when
// popped unless WithSkipStale is set. Panics raised by the problem propagate
// to the caller unchanged.
//
// Complexity:
//
//   - Time:  O(E log E) for E generated children that pass the explored check.
//   - Space: O(E) for the frontier plus O(V) for the explored map.
func BestFirst[S State[A], A Action](p Problem[S, A], eval Evaluator[S, A], opts ...Option) (*Node[S, A], int, error) {
	// 1) Validate inputs
	if p == nil {
		return nil, 0, ErrNilProblem
	}
	if eval == nil {
		return nil, 0, ErrNilEvaluator
	}

	// 2) Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}

	// 3) Prepare the runner; every call owns a fresh frontier and explored map.
	r := &runner[S, A]{
		problem:  p,
		eval:     eval,
		opts:     o,
		frontier: make(frontier[S, A], 0, 64),
		explored: make(map[S]*Node[S, A], 64),
	}

	o.Logger.Debug("search started",
		"evaluator", fmt.Sprintf("%T", eval),
		"max_expansions", o.MaxExpansions,
		"skip_stale", o.SkipStale,
	)

	// 4) Seed the frontier and run the main loop.
	r.init()
	goal, err := r.process()

	o.Logger.Debug("search finished",
		"found", goal != nil,
		"expansions", r.expansions,
		"enqueued", r.seq,
		"explored", len(r.explored),
		"error", err,
	)

	return goal, r.expansions, err
}

// UniformCostSearch runs BestFirst with the UniformCost evaluator.
// With non-negative action costs the returned goal has minimal path cost.
func UniformCostSearch[S State[A], A Action](p Problem[S, A], opts ...Option) (*Node[S, A], int, error) {
	return BestFirst(p, UniformCost[S, A](), opts...)
}

// AStarSearch runs BestFirst with the AStar evaluator built from h.
// With an admissible h and non-negative costs the returned goal has minimal
// path cost.
func AStarSearch[S State[A], A Action](p Problem[S, A], h Heuristic[S], opts ...Option) (*Node[S, A], int, error) {
	if h == nil {
		return nil, 0, ErrNilHeuristic
	}

	return BestFirst(p, AStar[S, A](h), opts...)
}

// WeightedAStarSearch runs BestFirst with the WeightedAStar evaluator.
func WeightedAStarSearch[S State[A], A Action](p Problem[S, A], h Heuristic[S], w float64, opts ...Option) (*Node[S, A], int, error) {
	if h == nil {
		return nil, 0, ErrNilHeuristic
	}
	if !(w >= 1) {
		return nil, 0, fmt.Errorf("%w: got %g", ErrBadWeight, w)
	}

	return BestFirst(p, WeightedAStar[S, A](h, w), opts...)
}

// GreedySearch runs BestFirst with the Greedy evaluator built from h.
func GreedySearch[S State[A], A Action](p Problem[S, A], h Heuristic[S], opts ...Option) (*Node[S, A], int, error) {
	if h == nil {
		return nil, 0, ErrNilHeuristic
	}

	return BestFirst(p, Greedy[S, A](h), opts...)
}

// BreadthFirstSearch runs BestFirst with the BreadthFirst evaluator.
// The returned goal has the fewest actions among all goals.
func BreadthFirstSearch[S State[A], A Action](p Problem[S, A], opts ...Option) (*Node[S, A], int, error) {
	return BestFirst(p, BreadthFirst[S, A](), opts...)
}

// runner holds the mutable state for a single best-first execution.
type runner[S State[A], A Action] struct {
	problem    Problem[S, A]     // read-only problem definition
	eval       Evaluator[S, A]   // priority function
	opts       Options           // configuration and hooks
	frontier   frontier[S, A]    // min-heap of (priority, seq, node)
	explored   map[S]*Node[S, A] // best known node per state
	expansions int               // counted pops
	seq        int               // next insertion sequence number
}

// init pushes the root node with sequence 0.
func (r *runner[S, A]) init() {
	heap.Init(&r.frontier)
	r.push(newRoot[S, A](r.problem.InitialState()))
}

// push evaluates n and inserts it into the frontier with the next sequence number.
func (r *runner[S, A]) push(n *Node[S, A]) {
	priority := r.eval.Evaluate(n)
	heap.Push(&r.frontier, entry[S, A]{priority: priority, seq: r.seq, node: n})
	r.opts.OnEnqueue(r.event(n, priority, r.seq))
	r.seq++
}

// process is the EXPAND loop. It returns the goal node, or nil when the
// frontier empties first.
func (r *runner[S, A]) process() (*Node[S, A], error) {
	ctx := r.opts.Ctx
	for r.frontier.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// The cap only trips while work remains, so exhausting the space on
		// exactly MaxExpansions still reports "no goal".
		if r.opts.MaxExpansions > 0 && r.expansions >= r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions, %d frontier entries left",
				ErrExpansionLimit, r.expansions, r.frontier.Len())
		}

		// 1) Pop the lowest (priority, seq) entry.
		item := heap.Pop(&r.frontier).(entry[S, A])
		current := item.node

		if r.opts.SkipStale && r.stale(current) {
			continue
		}

		// 2) Count the expansion.
		r.expansions++
		r.opts.OnExpand(r.event(current, item.priority, item.seq))

		// 3) Goal test on pop, not on generation.
		if r.problem.IsGoal(current.State) {
			return current, nil
		}

		// 4) Record current as the explored node for its state.
		r.explored[current.State] = current

		// 5) Generate children.
		if err := r.expand(current); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// expand generates every child of current and pushes those that are new or
// strictly cheaper than the explored record for their state.
func (r *runner[S, A]) expand(current *Node[S, A]) error {
	for a := range current.State.Actions() {
		cost := a.Cost()
		if r.opts.ValidateCosts && cost < 0 {
			return fmt.Errorf("%w: cost=%g at depth %d", ErrNegativeCost, cost, current.Depth)
		}

		child := newChild(current, a, r.problem.Transition(current.State, a), cost)

		// Note: "<=" keeps the first node found among equal-cost duplicates.
		if prev, seen := r.explored[child.State]; seen && prev.PathCost <= child.PathCost {
			continue
		}

		r.push(child)
		r.explored[child.State] = child
	}

	return nil
}

// stale reports whether a cheaper node for n's state is already recorded.
func (r *runner[S, A]) stale(n *Node[S, A]) bool {
	best, ok := r.explored[n.State]

	return ok && best.PathCost < n.PathCost
}

// event snapshots n for the hooks.
func (r *runner[S, A]) event(n *Node[S, A], priority float64, seq int) Event {
	return Event{
		Seq:        seq,
		Expansions: r.expansions,
		Depth:      n.Depth,
		PathCost:   n.PathCost,
		Priority:   priority,
		State:      n.State,
	}
}
