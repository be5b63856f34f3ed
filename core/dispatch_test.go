package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NATHANIELCROSBY1/webppl/core"
)

// fakeStrategy lets tests install an arbitrary Strategy without pulling
// in a real inference package.
type fakeStrategy struct {
	sampleFn func(core.Cont, core.ERP, []float64) core.Step
	factorFn func(func() core.Step, float64) core.Step
	exitFn   func(any) core.Step
}

func (f fakeStrategy) Sample(k core.Cont, dist core.ERP, params []float64) core.Step {
	return f.sampleFn(k, dist, params)
}

func (f fakeStrategy) Factor(k func() core.Step, logWeight float64) core.Step {
	return f.factorFn(k, logWeight)
}

func (f fakeStrategy) Exit(value any) core.Step {
	return f.exitFn(value)
}

func TestDefaultStrategyPassesSampleThrough(t *testing.T) {
	step := core.DispatchSample(func(v any) core.Step {
		return core.Exit(v)
	}, core.BernoulliERP, []float64{1.0})
	v, ok := step.IsExit()
	require.True(t, ok)
	assert.Equal(t, true, v)
}

func TestDefaultStrategyRejectsFactor(t *testing.T) {
	assert.PanicsWithValue(t, core.ErrFactorOutsideInference, func() {
		core.DispatchFactor(func() core.Step { return core.Exit(nil) }, 0)
	})
}

// TestCoroutineSlotRestoration checks that after any inference call,
// success or failure, a subsequent top-level Factor must raise
// ErrFactorOutsideInference again.
func TestCoroutineSlotRestoration(t *testing.T) {
	// A strategy that supports Factor, installed then popped normally.
	s := fakeStrategy{
		factorFn: func(k func() core.Step, w float64) core.Step { return k() },
	}
	core.Push(s)
	_ = core.DispatchFactor(func() core.Step { return core.Exit(nil) }, 1.0)
	core.Pop()

	assert.PanicsWithValue(t, core.ErrFactorOutsideInference, func() {
		core.DispatchFactor(func() core.Step { return core.Exit(nil) }, 0)
	})
}

// TestCoroutineSlotRestorationOnPanic checks the slot still unwinds when
// the strategy itself panics (the error path a real strategy's deferred
// Pop must also cover).
func TestCoroutineSlotRestorationOnPanic(t *testing.T) {
	s := fakeStrategy{
		sampleFn: func(k core.Cont, d core.ERP, p []float64) core.Step {
			panic("boom")
		},
	}
	func() {
		core.Push(s)
		defer core.Pop()
		defer func() { _ = recover() }()
		core.DispatchSample(func(any) core.Step { return core.Exit(nil) }, core.BernoulliERP, []float64{0.5})
	}()

	assert.PanicsWithValue(t, core.ErrFactorOutsideInference, func() {
		core.DispatchFactor(func() core.Step { return core.Exit(nil) }, 0)
	})
}

func TestDispatchSampleWithFactorFallback(t *testing.T) {
	var gotWeight float64
	s := fakeStrategy{
		factorFn: func(k func() core.Step, w float64) core.Step {
			gotWeight = w
			return k()
		},
		sampleFn: func(k core.Cont, d core.ERP, p []float64) core.Step {
			return k(d.Sample(p))
		},
	}
	core.Push(s)
	defer core.Pop()

	step := core.DispatchSampleWithFactor(func(v any) core.Step {
		return core.Exit(v)
	}, core.RandomIntegerERP, []float64{3}, func(v any) float64 {
		return float64(v.(int))
	})

	v, ok := step.IsExit()
	require.True(t, ok)
	assert.Equal(t, float64(v.(int)), gotWeight)
}

func TestDispatchSampleWithFactorOverride(t *testing.T) {
	called := false
	s := withOverrideStrategy{
		onSampleWithFactor: func(k core.Cont, d core.ERP, p []float64, scoreFn func(any) float64) core.Step {
			called = true
			return k(42)
		},
	}
	core.Push(s)
	defer core.Pop()

	step := core.DispatchSampleWithFactor(func(v any) core.Step {
		return core.Exit(v)
	}, core.RandomIntegerERP, []float64{3}, func(any) float64 { return 0 })

	v, ok := step.IsExit()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.True(t, called)
}

// withOverrideStrategy implements both Strategy and FactorSampler.
type withOverrideStrategy struct {
	onSampleWithFactor func(core.Cont, core.ERP, []float64, func(any) float64) core.Step
}

func (w withOverrideStrategy) Sample(k core.Cont, d core.ERP, p []float64) core.Step {
	return k(d.Sample(p))
}

func (w withOverrideStrategy) Factor(k func() core.Step, logWeight float64) core.Step {
	return k()
}

func (w withOverrideStrategy) Exit(value any) core.Step {
	return core.Exit(value)
}

func (w withOverrideStrategy) SampleWithFactor(k core.Cont, d core.ERP, p []float64, scoreFn func(any) float64) core.Step {
	return w.onSampleWithFactor(k, d, p, scoreFn)
}
