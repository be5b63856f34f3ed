package webppl

import (
	"github.com/NATHANIELCROSBY1/webppl/cache"
	"github.com/NATHANIELCROSBY1/webppl/core"
	"github.com/NATHANIELCROSBY1/webppl/enumerate"
	"github.com/NATHANIELCROSBY1/webppl/ffi"
	"github.com/NATHANIELCROSBY1/webppl/forward"
	"github.com/NATHANIELCROSBY1/webppl/particlefilter"
)

// ERP, Step, Cont, and Program are re-exported from core so a host only
// needs to import this one package to write and run a user computation.
type (
	ERP     = core.ERP
	Step    = core.Step
	Cont    = core.Cont
	Program = core.Program
)

// Built-in distribution singletons.
var (
	UniformERP       = core.UniformERP
	BernoulliERP     = core.BernoulliERP
	RandomIntegerERP = core.RandomIntegerERP
	GaussianERP      = core.GaussianERP
	DiscreteERP      = core.DiscreteERP
)

// NewERP builds a custom distribution from (sample, score, support?).
func NewERP(
	sample func(params []float64) any,
	score func(params []float64, value any) float64,
	support func(params []float64) ([]any, bool),
) ERP {
	return core.NewERP(sample, score, support)
}

// Sample suspends a user computation on a random choice: next is
// invoked with the drawn value once a strategy's driver resumes it.
// This is the constructor a Program uses to build its Step chain, not
// a synchronous draw: building the chain lazily is what lets a driver
// loop trampoline through arbitrarily many suspensions without growing
// the native call stack.
func Sample(dist ERP, params []float64, next Cont) Step {
	return core.Sample(dist, params, next)
}

// Factor suspends a user computation to record a log-weight.
func Factor(logWeight float64, next func() Step) Step {
	return core.Factor(logWeight, next)
}

// Exit constructs the terminal Step carrying a computation's return value.
func Exit(value any) Step {
	return core.Exit(value)
}

// SampleWithFactor suspends a user computation on a random choice and a
// log-weight in one combined suspension: the drawn value is scored by
// scoreFn and folded into the run's weight before next resumes with the
// value. A strategy that can draw and weight in a single operation
// (enumerate folds scoreFn into a branch's cumulative score rather than
// spawning a separate Factor suspension) uses that path; every other
// strategy falls back to a plain draw followed by an ordinary Factor.
func SampleWithFactor(dist ERP, params []float64, scoreFn func(value any) float64, next Cont) Step {
	return core.SampleWithFactor(dist, params, scoreFn, next)
}

// Display surfaces a value to the operator via the shared logger and
// resumes k with it; it has no effect on inference.
func Display(k Cont, value any) Step {
	return ffi.Display(k, value)
}

// CallPrimitive invokes a non-suspending host function synchronously and
// resumes k with its result.
func CallPrimitive(k Cont, f func(args ...any) any, args ...any) Step {
	return ffi.CallPrimitive(k, f, args...)
}

// Cache returns a memoized version of a deterministic CPS host function:
// a call with previously seen args resumes its continuation with the
// stored result instead of calling f again.
func Cache(f func(k Cont, args ...any) Step) func(k Cont, args ...any) Step {
	return cache.Wrap(f)
}

// Forward runs userFn once under prior (forward) sampling.
func Forward(userFn Program) (ERP, error) {
	return forward.Run(userFn)
}

// Enumerate runs userFn under best-first enumeration, the recommended
// default. opts accepts enumerate.WithMaxExecutions and
// enumerate.WithDiscipline.
func Enumerate(userFn Program, opts ...enumerate.Option) (ERP, error) {
	return enumerate.Enumerate(userFn, opts...)
}

// EnumerateLikelyFirst is an alias for Enumerate.
func EnumerateLikelyFirst(userFn Program, opts ...enumerate.Option) (ERP, error) {
	return enumerate.EnumerateLikelyFirst(userFn, opts...)
}

// EnumerateDepthFirst runs userFn under depth-first enumeration.
func EnumerateDepthFirst(userFn Program, opts ...enumerate.Option) (ERP, error) {
	return enumerate.EnumerateDepthFirst(userFn, opts...)
}

// EnumerateBreadthFirst runs userFn under breadth-first enumeration.
func EnumerateBreadthFirst(userFn Program, opts ...enumerate.Option) (ERP, error) {
	return enumerate.EnumerateBreadthFirst(userFn, opts...)
}

// ParticleFilter runs userFn as n particles synchronized at every
// factor via sequential importance resampling.
func ParticleFilter(userFn Program, n int) (ERP, error) {
	return particlefilter.Run(userFn, n)
}

// MultinomialSample draws an index 0..len(theta)-1 proportional to
// theta.
func MultinomialSample(theta []float64) int {
	return core.MultinomialSample(theta)
}
