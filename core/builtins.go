package core

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/NATHANIELCROSBY1/webppl/rng"
)

// Required built-ins. Each is an unexported singleton type implementing
// ERP; Sample delegates to gonum's stat/distuv where a matching
// distribution exists (Uniform, Bernoulli, Gaussian) backed by the
// engine's shared rng.Source(), and Score/Support are written by hand
// so out-of-support values (including non-integers passed to an
// integer-valued distribution) always score -Inf, regardless of what
// distuv.LogProb would return for the same input.

// uniformERP is continuous on [a,b]; no finite support.
type uniformERP struct{}

// UniformERP is the built-in Uniform(a,b) distribution: continuous on
// [a,b], no finite support.
var UniformERP ERP = uniformERP{}

func (uniformERP) Sample(params []float64) any {
	a, b := params[0], params[1]
	return distuv.Uniform{Min: a, Max: b, Src: rng.Source()}.Rand()
}

func (uniformERP) Score(params []float64, value any) float64 {
	a, b := params[0], params[1]
	v, ok := value.(float64)
	if !ok || v < a || v > b || a >= b {
		return negInf
	}
	return -math.Log(b - a)
}

func (uniformERP) Support([]float64) ([]any, bool) { return nil, false }

// bernoulliERP is boolean-valued with support {true, false} in that order.
type bernoulliERP struct{}

// BernoulliERP is the built-in Bernoulli(p) distribution.
var BernoulliERP ERP = bernoulliERP{}

func (bernoulliERP) Sample(params []float64) any {
	p := params[0]
	if err := ValidateBernoulli(p); err != nil {
		panic(err)
	}
	return distuv.Bernoulli{P: p, Src: rng.Source()}.Rand() == 1
}

func (bernoulliERP) Score(params []float64, value any) float64 {
	p := params[0]
	if err := ValidateBernoulli(p); err != nil {
		panic(err)
	}
	v, ok := value.(bool)
	if !ok {
		return negInf
	}
	if v {
		return math.Log(p)
	}
	return math.Log(1 - p)
}

func (bernoulliERP) Support([]float64) ([]any, bool) {
	return []any{true, false}, true
}

// randomIntegerERP is integer-valued in [0,n), support 0..n-1 ascending.
type randomIntegerERP struct{}

// RandomIntegerERP is the built-in RandomInteger(n) distribution.
var RandomIntegerERP ERP = randomIntegerERP{}

func (randomIntegerERP) Sample(params []float64) any {
	n := int(params[0])
	return int(rng.Float64() * float64(n))
}

func (randomIntegerERP) Score(params []float64, value any) float64 {
	n := int(params[0])
	v, ok := value.(int)
	if !ok || v < 0 || v >= n {
		return negInf
	}
	return -math.Log(float64(n))
}

func (randomIntegerERP) Support(params []float64) ([]any, bool) {
	n := int(params[0])
	vals := make([]any, n)
	for i := 0; i < n; i++ {
		vals[i] = i
	}
	return vals, true
}

// gaussianERP is continuous with mean mu and standard deviation sigma; no
// finite support.
type gaussianERP struct{}

// GaussianERP is the built-in Gaussian(mu, sigma) distribution.
var GaussianERP ERP = gaussianERP{}

func (gaussianERP) Sample(params []float64) any {
	mu, sigma := params[0], params[1]
	if err := ValidateGaussian(sigma); err != nil {
		panic(err)
	}
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: rng.Source()}.Rand()
}

func (gaussianERP) Score(params []float64, value any) float64 {
	mu, sigma := params[0], params[1]
	if err := ValidateGaussian(sigma); err != nil {
		panic(err)
	}
	v, ok := value.(float64)
	if !ok {
		return negInf
	}
	z := (v - mu) / sigma
	return -0.5*z*z - math.Log(sigma) - 0.5*math.Log(2*math.Pi)
}

func (gaussianERP) Support([]float64) ([]any, bool) { return nil, false }

// discreteERP is integer-valued over 0..len(theta)-1, proportional to
// theta (theta is unnormalized and non-negative).
type discreteERP struct{}

// DiscreteERP is the built-in Discrete(theta) distribution.
var DiscreteERP ERP = discreteERP{}

func thetaSum(theta []float64) float64 {
	var sum float64
	for _, t := range theta {
		sum += t
	}
	return sum
}

func (discreteERP) Sample(params []float64) any {
	if err := ValidateDiscrete(params); err != nil {
		panic(err)
	}
	sum := thetaSum(params)
	draw := rng.Float64() * sum

	var cum float64
	lastPositive := -1
	for i, t := range params {
		if t > 0 {
			lastPositive = i
		}
		cum += t
		if draw < cum && t > 0 {
			return i
		}
	}
	// The draw never crossed a bin with positive mass (can happen when
	// theta has trailing zeros and draw lands exactly at sum): fall back
	// to the last index with positive theta — Discrete's inverse-CDF
	// contract never returns a zero-mass index.
	return lastPositive
}

func (discreteERP) Score(params []float64, value any) float64 {
	if err := ValidateDiscrete(params); err != nil {
		panic(err)
	}
	sum := thetaSum(params)
	v, ok := value.(int)
	if !ok || v < 0 || v >= len(params) || params[v] <= 0 {
		return negInf
	}
	return math.Log(params[v] / sum)
}

func (discreteERP) Support(params []float64) ([]any, bool) {
	vals := make([]any, len(params))
	for i := range params {
		vals[i] = i
	}
	return vals, true
}

// MultinomialSample draws an index 0..len(theta)-1 proportional to theta,
// the host-visible utility used directly by residual resampling's
// stochastic-remainder step and exposed at the module root.
func MultinomialSample(theta []float64) int {
	v := DiscreteERP.Sample(theta)
	return v.(int)
}

// ValidateBernoulli reports ErrDegenerateParameters if p is out of [0,1].
func ValidateBernoulli(p float64) error {
	if p < 0 || p > 1 {
		return ErrDegenerateParameters
	}
	return nil
}

// ValidateGaussian reports ErrDegenerateParameters if sigma <= 0.
func ValidateGaussian(sigma float64) error {
	if sigma <= 0 {
		return ErrDegenerateParameters
	}
	return nil
}

// ValidateDiscrete reports ErrDegenerateParameters if every theta is zero
// or any theta is negative.
func ValidateDiscrete(theta []float64) error {
	anyPositive := false
	for _, t := range theta {
		if t < 0 {
			return ErrDegenerateParameters
		}
		if t > 0 {
			anyPositive = true
		}
	}
	if !anyPositive {
		return ErrDegenerateParameters
	}
	return nil
}
