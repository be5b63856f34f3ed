package core

// Strategy is the interface every inference strategy implements. The
// three dispatch functions below (DispatchSample, DispatchFactor,
// ExitProgram) forward to whichever Strategy is on top of the coroutine
// stack.
type Strategy interface {
	// Sample handles a random-choice suspension: draw (or otherwise
	// decide) a value and produce the Step that resumes the computation.
	Sample(k Cont, dist ERP, params []float64) Step

	// Factor handles a log-weight suspension.
	Factor(k func() Step, logWeight float64) Step

	// Exit handles computation termination, returning the Step (if any)
	// that hands a result back to whatever installed this Strategy.
	Exit(value any) Step
}

// FactorSampler is implemented by strategies that can draw from dist and
// weight the draw by scoreFn(value) more efficiently than the generic
// Sample+Factor composition (SampleWithFactor's fallback).
type FactorSampler interface {
	SampleWithFactor(k Cont, dist ERP, params []float64, scoreFn func(value any) float64) Step
}

// defaultStrategy sits at the floor of the coroutine stack. It passes
// Sample straight through to the distribution and refuses Factor:
// conditioning only makes sense while an inference strategy is active.
type defaultStrategy struct{}

func (defaultStrategy) Sample(k Cont, dist ERP, params []float64) Step {
	return k(dist.Sample(params))
}

func (defaultStrategy) Factor(func() Step, float64) Step {
	panic(ErrFactorOutsideInference)
}

func (defaultStrategy) Exit(value any) Step {
	return Exit(value)
}

// stack is the process-wide coroutine slot: a LIFO of installed
// strategies. It is not a bare global strategies reach into directly;
// it is mutated only through Push/Pop, so nesting depth always matches
// the dynamic call depth of inference invocations, and the floor
// (defaultStrategy) is never popped.
var stack = []Strategy{defaultStrategy{}}

// Push installs s as the active strategy. Every strategy entry point
// must pair this with a deferred Pop so the slot unwinds on every exit
// path, including a panic carrying one of the sentinel errors.
func Push(s Strategy) {
	stack = append(stack, s)
}

// Pop restores the previously active strategy.
func Pop() {
	if len(stack) <= 1 {
		return
	}
	stack = stack[:len(stack)-1]
}

// Current returns the strategy on top of the coroutine stack.
func Current() Strategy {
	return stack[len(stack)-1]
}

// DispatchSample dispatches a random draw to the currently installed
// strategy. This is distinct from the Sample Step constructor in
// step.go: that one builds a suspension value for a driver loop to
// inspect later; this one resolves the suspension immediately against
// whichever strategy is on top of the coroutine stack right now.
func DispatchSample(k Cont, dist ERP, params []float64) Step {
	return Current().Sample(k, dist, params)
}

// DispatchFactor dispatches a log-weight update to the currently
// installed strategy.
func DispatchFactor(k func() Step, logWeight float64) Step {
	return Current().Factor(k, logWeight)
}

// ExitProgram dispatches computation termination to the currently
// installed strategy.
func ExitProgram(value any) Step {
	return Current().Exit(value)
}

// DispatchSampleWithFactor draws from dist and weights the draw by
// scoreFn(v) in one suspension, resolved immediately against whichever
// strategy is on top of the coroutine stack right now (the synchronous
// counterpart to the SampleWithFactor Step constructor in step.go, the
// same way DispatchSample/DispatchFactor/ExitProgram are the synchronous
// counterparts of Sample/Factor/Exit). If the current strategy implements
// FactorSampler, its override is used; otherwise the generic fallback
// composes Sample and Factor: draw v, then resume through a Factor step
// carrying scoreFn(v), whose own resumption delivers v to k. This
// preserves "draw from dist and weight by scoreFn(v)" regardless of
// which strategy is installed.
func DispatchSampleWithFactor(k Cont, dist ERP, params []float64, scoreFn func(value any) float64) Step {
	if fs, ok := Current().(FactorSampler); ok {
		return fs.SampleWithFactor(k, dist, params, scoreFn)
	}
	return DispatchSample(func(v any) Step {
		return DispatchFactor(func() Step { return k(v) }, scoreFn(v))
	}, dist, params)
}
