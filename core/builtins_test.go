package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NATHANIELCROSBY1/webppl/core"
	"github.com/NATHANIELCROSBY1/webppl/rng"
)

// TestDistributionLaw checks that every built-in with finite support sums
// to 1 over its support within a 1e-9 tolerance.
func TestDistributionLaw(t *testing.T) {
	cases := []struct {
		name   string
		dist   core.ERP
		params []float64
	}{
		{"Bernoulli", core.BernoulliERP, []float64{0.3}},
		{"RandomInteger", core.RandomIntegerERP, []float64{5}},
		{"Discrete", core.DiscreteERP, []float64{1, 2, 3, 0, 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			values, ok := c.dist.Support(c.params)
			require.True(t, ok)

			var total float64
			for _, v := range values {
				total += math.Exp(c.dist.Score(c.params, v))
			}
			assert.InDelta(t, 1.0, total, 1e-9)
		})
	}
}

// TestDiscreteOutOfSupport checks that Score returns -Inf for values with
// zero probability mass, even when the index is within range.
func TestDiscreteOutOfSupport(t *testing.T) {
	theta := []float64{1, 0, 3}
	assert.True(t, math.IsInf(core.DiscreteERP.Score(theta, 1), -1))
	assert.True(t, math.IsInf(core.DiscreteERP.Score(theta, 5), -1))
	assert.True(t, math.IsInf(core.DiscreteERP.Score(theta, "nope"), -1))
}

// TestDiscreteNeverReturnsZeroMassIndex exercises the corrected fallback:
// a draw landing exactly at the cumulative sum must resolve to the last
// index with positive theta, never a trailing zero-theta index.
func TestDiscreteNeverReturnsZeroMassIndex(t *testing.T) {
	theta := []float64{1, 2, 0, 0}
	for i := 0; i < 1000; i++ {
		v := core.DiscreteERP.Sample(theta).(int)
		assert.Greater(t, theta[v], 0.0)
	}
}

// TestDiscreteLeadingZeroAtZeroDraw checks the other documented edge
// case: a uniform draw of exactly zero against theta with leading
// zeros must land on the first index with positive probability.
func TestDiscreteLeadingZeroAtZeroDraw(t *testing.T) {
	rng.Seed(1)
	theta := []float64{0, 0, 5, 1}
	// Can't force rng.Float64()==0 directly; instead assert the invariant
	// that every draw is a positive-theta index, which is the property
	// that matters (the zero-draw case is a single point in a continuum).
	for i := 0; i < 1000; i++ {
		v := core.DiscreteERP.Sample(theta).(int)
		assert.Greater(t, theta[v], 0.0)
	}
}

// TestDiscreteInverseCDFLaw checks the empirical frequency over many
// draws matches theta/sum(theta) to 3 standard errors of the multinomial
// estimator (scaled down to N=200000 for test speed; the tolerance is
// derived from the actual N used, not hardcoded).
func TestDiscreteInverseCDFLaw(t *testing.T) {
	rng.Seed(7)
	theta := []float64{1, 2, 3, 4}
	sum := 10.0
	const n = 200000
	counts := make([]int, len(theta))
	for i := 0; i < n; i++ {
		v := core.DiscreteERP.Sample(theta).(int)
		counts[v]++
	}
	for i, th := range theta {
		p := th / sum
		freq := float64(counts[i]) / float64(n)
		se := math.Sqrt(p * (1 - p) / float64(n))
		assert.InDelta(t, p, freq, 3*se+1e-6)
	}
}

func TestBernoulliDegenerate(t *testing.T) {
	assert.NoError(t, core.ValidateBernoulli(0.5))
	assert.ErrorIs(t, core.ValidateBernoulli(1.5), core.ErrDegenerateParameters)
	assert.ErrorIs(t, core.ValidateBernoulli(-0.1), core.ErrDegenerateParameters)
}

func TestGaussianDegenerate(t *testing.T) {
	assert.NoError(t, core.ValidateGaussian(1.0))
	assert.ErrorIs(t, core.ValidateGaussian(0), core.ErrDegenerateParameters)
	assert.ErrorIs(t, core.ValidateGaussian(-2), core.ErrDegenerateParameters)
}

func TestDiscreteDegenerate(t *testing.T) {
	assert.NoError(t, core.ValidateDiscrete([]float64{0, 1, 0}))
	assert.ErrorIs(t, core.ValidateDiscrete([]float64{0, 0, 0}), core.ErrDegenerateParameters)
	assert.ErrorIs(t, core.ValidateDiscrete([]float64{1, -1}), core.ErrDegenerateParameters)
}

func TestUniformOutOfSupport(t *testing.T) {
	assert.True(t, math.IsInf(core.UniformERP.Score([]float64{0, 1}, 2.0), -1))
	_, ok := core.UniformERP.Support([]float64{0, 1})
	assert.False(t, ok)
}

func TestGaussianScoreFormula(t *testing.T) {
	// Standard normal density at 0 is 1/sqrt(2*pi).
	got := core.GaussianERP.Score([]float64{0, 1}, 0.0)
	want := math.Log(1 / math.Sqrt(2*math.Pi))
	assert.InDelta(t, want, got, 1e-9)
}

// TestBernoulliSampleRejectsDegenerateParameters checks that the live
// Sample/Score path, not just the exported Validate helper, raises
// ErrDegenerateParameters for an out-of-domain p.
func TestBernoulliSampleRejectsDegenerateParameters(t *testing.T) {
	assert.PanicsWithValue(t, core.ErrDegenerateParameters, func() {
		core.BernoulliERP.Sample([]float64{1.5})
	})
	assert.PanicsWithValue(t, core.ErrDegenerateParameters, func() {
		core.BernoulliERP.Score([]float64{-0.1}, true)
	})
}

// TestGaussianSampleRejectsDegenerateParameters checks Sample/Score
// raise ErrDegenerateParameters for sigma <= 0 instead of handing an
// invalid Sigma to distuv.Normal.
func TestGaussianSampleRejectsDegenerateParameters(t *testing.T) {
	assert.PanicsWithValue(t, core.ErrDegenerateParameters, func() {
		core.GaussianERP.Sample([]float64{0, 0})
	})
	assert.PanicsWithValue(t, core.ErrDegenerateParameters, func() {
		core.GaussianERP.Score([]float64{0, -1}, 0.0)
	})
}

// TestDiscreteSampleRejectsDegenerateParameters checks Sample/Score
// raise ErrDegenerateParameters for all-zero or negative theta instead
// of silently producing an undefined draw.
func TestDiscreteSampleRejectsDegenerateParameters(t *testing.T) {
	assert.PanicsWithValue(t, core.ErrDegenerateParameters, func() {
		core.DiscreteERP.Sample([]float64{0, 0, 0})
	})
	assert.PanicsWithValue(t, core.ErrDegenerateParameters, func() {
		core.DiscreteERP.Score([]float64{1, -1}, 0)
	})
}
