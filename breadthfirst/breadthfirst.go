package breadthfirst

import "github.com/NATHANIELCROSBY1/webppl/core"

// Frontier is a FIFO queue of core.FrontierState: Pop always returns the
// branch that has been waiting longest.
type Frontier struct {
	items []core.FrontierState
}

// New returns an empty breadth-first frontier.
func New() *Frontier {
	return &Frontier{}
}

// Push enqueues a pending branch.
func (f *Frontier) Push(s core.FrontierState) {
	f.items = append(f.items, s)
}

// Pop dequeues the oldest pending branch. ok is false if empty.
func (f *Frontier) Pop() (core.FrontierState, bool) {
	if len(f.items) == 0 {
		return core.FrontierState{}, false
	}
	s := f.items[0]
	f.items = f.items[1:]
	return s, true
}

// Len reports the number of pending branches.
func (f *Frontier) Len() int {
	return len(f.items)
}
