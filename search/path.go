package search

// Steps returns the nodes from the root to n, inclusive.
// A nil node yields a nil slice.
func (n *Node[S, A]) Steps() []*Node[S, A] {
	if n == nil {
		return nil
	}
	// build reversed chain
	steps := make([]*Node[S, A], 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		steps = append(steps, cur)
	}
	// reverse to get root → n
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}

// Path returns the states from the initial state to n.State, inclusive.
func (n *Node[S, A]) Path() []S {
	steps := n.Steps()
	if steps == nil {
		return nil
	}
	path := make([]S, len(steps))
	for i, s := range steps {
		path[i] = s.State
	}

	return path
}

// Actions returns the actions applied from the root to reach n.
// The root itself contributes no action, so len(Actions) == len(Path)-1.
func (n *Node[S, A]) Actions() []A {
	steps := n.Steps()
	if len(steps) < 2 {
		return nil
	}
	actions := make([]A, 0, len(steps)-1)
	for _, s := range steps[1:] {
		actions = append(actions, s.Action)
	}

	return actions
}

// Replay applies actions to p's initial state in order and returns every
// visited state, starting with the initial one. For a node returned by a
// search, Replay(p, goal.Actions()) equals goal.Path() element-wise.
func Replay[S State[A], A Action](p Problem[S, A], actions []A) []S {
	s := p.InitialState()
	states := make([]S, 0, len(actions)+1)
	states = append(states, s)
	for _, a := range actions {
		s = p.Transition(s, a)
		states = append(states, s)
	}

	return states
}
