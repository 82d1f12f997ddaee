// Package search implements generic best-first graph search over abstract
// problems, with uniform-cost, A*, weighted A*, greedy and breadth-first
// evaluation strategies built on a single engine.
//
// Overview:
//
//   - A Problem supplies an initial state, a pure transition function and a
//     goal test. States are comparable values that enumerate their applicable
//     actions; actions report a non-negative cost.
//   - An Evaluator maps a search Node to a priority. The engine always expands
//     the frontier entry with the lowest priority, breaking ties by insertion
//     order (first in, first out).
//   - BestFirst returns the goal node and the number of expansions performed.
//     A nil node with a nil error means the reachable space has no goal.
//   - Node.Path, Node.Actions and Replay rebuild the solution from the parent
//     links.
//
// Re-opening policy:
//
//   - Each state is keyed in an explored map holding the cheapest node known
//     for it. A generated child is pushed only when its state is new or
//     strictly cheaper than the recorded node, and it immediately becomes the
//     recorded node.
//   - Superseded frontier entries are never deleted ("lazy decrease-key"). By
//     default they are expanded again when popped; WithSkipStale drops them
//     at pop time instead, without counting them.
//
// Guarantees:
//
//   - Terminates on finite reachable spaces with non-negative costs.
//   - UniformCost returns a minimum-cost goal for non-negative costs.
//   - AStar returns a minimum-cost goal for admissible heuristics. The engine
//     neither checks admissibility nor, unless WithCostValidation is given,
//     the sign of action costs.
//   - The same problem, evaluator and action order always yield the same
//     expansion order.
//
// Complexity:
//
//   - Time:  O(E log E), E = number of children pushed.
//   - Space: O(E + V), V = number of distinct states generated.
//
// Errors (sentinel):
//
//	– ErrNilProblem, ErrNilEvaluator, ErrNilHeuristic  for missing inputs.
//	– ErrOptionViolation                               for invalid options.
//	– ErrExpansionLimit                                when WithMaxExpansions is exhausted.
//	– ErrNegativeCost                                  under WithCostValidation.
//	– ErrBadWeight                                     for weighted-A* weights below 1.
//
// Concurrency:
//
//	A call runs to completion on the calling goroutine and owns its frontier
//	and explored map. Problems may be shared between concurrent calls as long
//	as they are free of side effects.
//
// Example usage:
//
//	goal, expansions, err := search.AStarSearch(problem, heuristic)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if goal == nil {
//	    fmt.Println("no solution after", expansions, "expansions")
//	    return
//	}
//	for _, s := range goal.Path() {
//	    fmt.Println(s)
//	}
package search
