package core

import "math"

// ERP ("elementary random primitive") is the uniform interface every
// distribution in the engine implements, built-in or constructed at
// runtime by a strategy (e.g. the marginal builder).
//
// Sample and Score are pure apart from Sample's use of the shared PRNG.
// Support is optional: a continuous distribution omits it by returning
// ok=false, and any strategy that requires finite support (enumeration)
// must check ok itself rather than assume Support is always meaningful.
type ERP interface {
	// Sample draws a value consistent with the density over params.
	Sample(params []float64) any

	// Score returns the log-probability of value under params. Returns
	// math.Inf(-1) for any value outside the distribution's support,
	// including non-integer values passed to an integer-valued ERP.
	Score(params []float64, value any) float64

	// Support enumerates every value with positive measure, in
	// deterministic order, when finite; ok is false for continuous ERPs.
	Support(params []float64) (values []any, ok bool)
}

// erpFuncs adapts three plain functions into an ERP; NewERP is the
// constructor for distributions built from functions. Types elsewhere
// (the built-ins below, the marginal package's ERPs) implement the
// interface directly instead.
type erpFuncs struct {
	sample  func(params []float64) any
	score   func(params []float64, value any) float64
	support func(params []float64) ([]any, bool)
}

func (e erpFuncs) Sample(params []float64) any { return e.sample(params) }

func (e erpFuncs) Score(params []float64, value any) float64 { return e.score(params, value) }

func (e erpFuncs) Support(params []float64) ([]any, bool) {
	if e.support == nil {
		return nil, false
	}
	return e.support(params)
}

// NewERP builds a distribution from its three operations. support may be
// nil for a continuous (non-enumerable) distribution.
func NewERP(
	sample func(params []float64) any,
	score func(params []float64, value any) float64,
	support func(params []float64) ([]any, bool),
) ERP {
	return erpFuncs{sample: sample, score: score, support: support}
}

// negInf is the log-probability of an out-of-support value.
var negInf = math.Inf(-1)
