package search

// entry is a frontier record. seq is a monotonically increasing insertion
// counter that breaks priority ties, so nodes never need to be ordered
// themselves and equal priorities come out first-in, first-out.
type entry[S comparable, A Action] struct {
	priority float64
	seq      int
	node     *Node[S, A]
}

// frontier is a min-heap of entries ordered by (priority, seq) ascending.
// Superseded entries are never removed: a cheaper path to a state pushes a
// new entry and the old one stays until popped ("lazy decrease-key").
type frontier[S comparable, A Action] []entry[S, A]

// Len returns the number of entries in the heap.
func (f frontier[S, A]) Len() int { return len(f) }

// Less orders by priority, then by insertion sequence.
func (f frontier[S, A]) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two entries in the heap.
func (f frontier[S, A]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap. Called by heap.Push; x must be an entry[S, A].
func (f *frontier[S, A]) Push(x any) { *f = append(*f, x.(entry[S, A])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier[S, A]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[S, A]{} // release the node for GC
	*f = old[:n-1]

	return item
}
