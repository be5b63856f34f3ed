package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NATHANIELCROSBY1/webppl/core"
)

// TestSampleWithFactorStepRoundTrip checks that the Step built by
// core.SampleWithFactor carries its distribution, parameters, and score
// function through to IsSampleWithFactor, and that IsSample/IsFactor/
// IsExit all report false against it.
func TestSampleWithFactorStepRoundTrip(t *testing.T) {
	scoreFn := func(v any) float64 { return float64(v.(int)) * 2 }
	step := core.SampleWithFactor(core.RandomIntegerERP, []float64{4}, scoreFn, func(v any) core.Step {
		return core.Exit(v)
	})

	dist, params, gotScoreFn, next, ok := step.IsSampleWithFactor()
	require.True(t, ok)
	assert.Equal(t, core.RandomIntegerERP, dist)
	assert.Equal(t, []float64{4}, params)
	assert.Equal(t, 6.0, gotScoreFn(3))

	resumed := next(3)
	v, exitOk := resumed.IsExit()
	require.True(t, exitOk)
	assert.Equal(t, 3, v)

	_, _, _, ok = step.IsSample()
	assert.False(t, ok)
	_, _, ok = step.IsFactor()
	assert.False(t, ok)
	_, ok = step.IsExit()
	assert.False(t, ok)
}
