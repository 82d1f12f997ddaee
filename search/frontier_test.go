package search

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
)

type unit struct{}

func (unit) Cost() float64 { return 1 }

func TestFrontier_OrdersByPriorityThenSequence(t *testing.T) {
	f := make(frontier[string, unit], 0)
	heap.Init(&f)

	pushes := []struct {
		id       string
		priority float64
	}{
		{"a", 3}, {"b", 1}, {"c", 2}, {"d", 1}, {"e", 3}, {"f", 0.5}, {"g", 1},
	}
	for seq, p := range pushes {
		heap.Push(&f, entry[string, unit]{priority: p.priority, seq: seq, node: newRoot[string, unit](p.id)})
	}

	var got []string
	for f.Len() > 0 {
		got = append(got, heap.Pop(&f).(entry[string, unit]).node.State)
	}
	assert.Equal(t, []string{"f", "b", "d", "g", "c", "a", "e"}, got)
}

func TestFrontier_PopReleasesSlot(t *testing.T) {
	f := make(frontier[string, unit], 0, 4)
	heap.Push(&f, entry[string, unit]{priority: 1, seq: 0, node: newRoot[string, unit]("x")})
	heap.Push(&f, entry[string, unit]{priority: 2, seq: 1, node: newRoot[string, unit]("y")})

	_ = heap.Pop(&f)
	_ = heap.Pop(&f)
	backing := f[:cap(f)]
	assert.Nil(t, backing[0].node)
	assert.Nil(t, backing[1].node)
}

func TestNewChild_AccumulatesCostAndDepth(t *testing.T) {
	root := newRoot[string, unit]("r")
	c1 := newChild(root, unit{}, "c1", 2.5)
	c2 := newChild(c1, unit{}, "c2", 0)

	assert.True(t, root.IsRoot())
	assert.False(t, c2.IsRoot())
	assert.Equal(t, 2.5, c2.PathCost)
	assert.Equal(t, 2, c2.Depth)
	assert.Same(t, c1, c2.Parent)
	assert.Equal(t, []string{"r", "c1", "c2"}, c2.Path())
}
