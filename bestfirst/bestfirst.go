package bestfirst

import (
	"container/heap"

	"github.com/NATHANIELCROSBY1/webppl/core"
)

// Frontier is a max-heap of core.FrontierState ordered by Score
// descending: Pop always returns the highest cumulative log-score
// pending branch.
type Frontier struct {
	items stateHeap
}

// New returns an empty best-first frontier.
func New() *Frontier {
	f := &Frontier{items: make(stateHeap, 0)}
	heap.Init(&f.items)
	return f
}

// Push adds a pending branch to the heap.
func (f *Frontier) Push(s core.FrontierState) {
	heap.Push(&f.items, s)
}

// Pop removes and returns the branch with the highest cumulative
// log-score. ok is false if the frontier is empty.
func (f *Frontier) Pop() (core.FrontierState, bool) {
	if f.items.Len() == 0 {
		return core.FrontierState{}, false
	}
	return heap.Pop(&f.items).(core.FrontierState), true
}

// Len reports the number of pending branches.
func (f *Frontier) Len() int {
	return f.items.Len()
}

// stateHeap implements container/heap.Interface over FrontierState: a
// max-heap keyed by Score, so the root is always the pending branch
// with the highest cumulative log-score.
type stateHeap []core.FrontierState

func (h stateHeap) Len() int { return len(h) }

func (h stateHeap) Less(i, j int) bool { return h[i].Score > h[j].Score }

func (h stateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *stateHeap) Push(x any) {
	*h = append(*h, x.(core.FrontierState))
}

func (h *stateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
