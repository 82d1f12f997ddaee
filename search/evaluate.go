package search

// Evaluator maps a node to its frontier priority; lower values are expanded first.
type Evaluator[S State[A], A Action] interface {
	Evaluate(n *Node[S, A]) float64
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc[S State[A], A Action] func(n *Node[S, A]) float64

// Evaluate calls f(n).
func (f EvaluatorFunc[S, A]) Evaluate(n *Node[S, A]) float64 { return f(n) }

// Heuristic estimates the remaining cost from a state to the nearest goal.
// A heuristic that never overestimates is admissible; the engine does not
// check this.
type Heuristic[S any] func(s S) float64

// uniformCost orders nodes by path cost alone.
type uniformCost[S State[A], A Action] struct{}

func (uniformCost[S, A]) Evaluate(n *Node[S, A]) float64 { return n.PathCost }

// UniformCost returns the evaluator f(n) = g(n).
func UniformCost[S State[A], A Action]() Evaluator[S, A] {
	return uniformCost[S, A]{}
}

// aStar orders nodes by g(n) + w·h(n).
type aStar[S State[A], A Action] struct {
	h Heuristic[S]
	w float64
}

func (e aStar[S, A]) Evaluate(n *Node[S, A]) float64 {
	return n.PathCost + e.w*e.h(n.State)
}

// AStar returns the evaluator f(n) = g(n) + h(n).
// Panics with ErrNilHeuristic if h is nil.
func AStar[S State[A], A Action](h Heuristic[S]) Evaluator[S, A] {
	if h == nil {
		panic(ErrNilHeuristic.Error())
	}

	return aStar[S, A]{h: h, w: 1}
}

// WeightedAStar returns the evaluator f(n) = g(n) + w·h(n).
// With w > 1 the search trades optimality (bounded by a factor of w for
// admissible h) for fewer expansions.
// Panics with ErrNilHeuristic if h is nil and ErrBadWeight if w < 1.
func WeightedAStar[S State[A], A Action](h Heuristic[S], w float64) Evaluator[S, A] {
	if h == nil {
		panic(ErrNilHeuristic.Error())
	}
	if !(w >= 1) {
		panic(ErrBadWeight.Error())
	}

	return aStar[S, A]{h: h, w: w}
}

// greedy orders nodes by the heuristic alone.
type greedy[S State[A], A Action] struct {
	h Heuristic[S]
}

func (e greedy[S, A]) Evaluate(n *Node[S, A]) float64 { return e.h(n.State) }

// Greedy returns the evaluator f(n) = h(n). Not optimal.
// Panics with ErrNilHeuristic if h is nil.
func Greedy[S State[A], A Action](h Heuristic[S]) Evaluator[S, A] {
	if h == nil {
		panic(ErrNilHeuristic.Error())
	}

	return greedy[S, A]{h: h}
}

// breadthFirst orders nodes by depth.
type breadthFirst[S State[A], A Action] struct{}

func (breadthFirst[S, A]) Evaluate(n *Node[S, A]) float64 { return float64(n.Depth) }

// BreadthFirst returns the evaluator f(n) = depth(n). Combined with the
// frontier's FIFO tie-break it expands nodes level by level.
func BreadthFirst[S State[A], A Action]() Evaluator[S, A] {
	return breadthFirst[S, A]{}
}
