package enumerate

import (
	"github.com/NATHANIELCROSBY1/webppl/bestfirst"
	"github.com/NATHANIELCROSBY1/webppl/breadthfirst"
	"github.com/NATHANIELCROSBY1/webppl/core"
	"github.com/NATHANIELCROSBY1/webppl/depthfirst"
)

// Discipline selects the queue order enumeration explores its search
// tree with.
type Discipline int

const (
	// BestFirst always expands the pending branch with the highest
	// cumulative log-score first. This is the default: it tends to reach
	// high-probability complete executions earliest, which matters when
	// MaxExecutions truncates the search.
	BestFirst Discipline = iota

	// DepthFirst descends one execution path to completion before
	// backtracking to the next pending branch.
	DepthFirst

	// BreadthFirst expands every branch at the current sample depth
	// before moving to the next.
	BreadthFirst
)

// Options configures a Run invocation.
type Options struct {
	// MaxExecutions bounds how many complete executions (Exit calls)
	// enumeration will run before returning whatever marginal it has
	// accumulated so far. A finite-support program with a search tree
	// smaller than MaxExecutions always terminates exactly; a larger or
	// infinite one is truncated.
	MaxExecutions int

	// Discipline selects the frontier's exploration order.
	Discipline Discipline
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns the configuration Run uses absent overrides:
// best-first order, 1000 maximum executions.
func DefaultOptions() Options {
	return Options{MaxExecutions: 1000, Discipline: BestFirst}
}

// WithMaxExecutions overrides the default execution cap. n must be
// positive.
func WithMaxExecutions(n int) Option {
	return func(o *Options) { o.MaxExecutions = n }
}

// WithDiscipline overrides the default frontier discipline.
func WithDiscipline(d Discipline) Option {
	return func(o *Options) { o.Discipline = d }
}

// newFrontier builds the concrete core.Frontier for a Discipline.
func newFrontier(d Discipline) core.Frontier {
	switch d {
	case DepthFirst:
		return depthfirst.New()
	case BreadthFirst:
		return breadthfirst.New()
	default:
		return bestfirst.New()
	}
}
