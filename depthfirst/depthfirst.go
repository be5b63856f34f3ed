package depthfirst

import "github.com/NATHANIELCROSBY1/webppl/core"

// Frontier is a LIFO stack of core.FrontierState: Pop always returns the
// most recently pushed branch.
type Frontier struct {
	items []core.FrontierState
}

// New returns an empty depth-first frontier.
func New() *Frontier {
	return &Frontier{}
}

// Push adds a pending branch to the top of the stack.
func (f *Frontier) Push(s core.FrontierState) {
	f.items = append(f.items, s)
}

// Pop removes and returns the most recently pushed branch. ok is false
// if the frontier is empty.
func (f *Frontier) Pop() (core.FrontierState, bool) {
	n := len(f.items)
	if n == 0 {
		return core.FrontierState{}, false
	}
	s := f.items[n-1]
	f.items = f.items[:n-1]
	return s, true
}

// Len reports the number of pending branches.
func (f *Frontier) Len() int {
	return len(f.items)
}
