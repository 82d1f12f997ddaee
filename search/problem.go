package search

import "iter"

// Action is a problem-defined transition label. Cost must be non-negative
// for the optimality guarantees of UniformCost and AStar to hold; the engine
// only checks it under WithCostValidation.
type Action interface {
	Cost() float64
}

// State is the constraint satisfied by every problem state.
// Being comparable gives states the equality and hashing the explored map
// keys on. Actions yields a finite sequence of applicable actions; its order
// only matters for tie-breaking between equal-priority nodes.
//
// States are treated as immutable: transitions build new states.
type State[A Action] interface {
	comparable
	Actions() iter.Seq[A]
}

// Problem describes a search problem over states S and actions A.
// Implementations must be pure: Transition returns an equal state for equal
// inputs and neither method mutates its arguments.
type Problem[S State[A], A Action] interface {
	InitialState() S
	Transition(s S, a A) S
	IsGoal(s S) bool
}

// Node links a state to the node and action that produced it.
// Nodes are built once by the engine and never modified afterwards;
// Parent pointers form a tree rooted at the initial state's node.
//
// The root node has a nil Parent, a zero Action, PathCost 0 and Depth 0.
type Node[S comparable, A Action] struct {
	State    S
	Parent   *Node[S, A]
	Action   A
	PathCost float64
	Depth    int
}

// IsRoot reports whether n has no parent.
func (n *Node[S, A]) IsRoot() bool { return n.Parent == nil }

// newRoot wraps the initial state.
func newRoot[S comparable, A Action](s S) *Node[S, A] {
	return &Node[S, A]{State: s}
}

// newChild builds the node reached from parent by applying a, landing in s.
func newChild[S comparable, A Action](parent *Node[S, A], a A, s S, cost float64) *Node[S, A] {
	return &Node[S, A]{
		State:    s,
		Parent:   parent,
		Action:   a,
		PathCost: parent.PathCost + cost,
		Depth:    parent.Depth + 1,
	}
}
