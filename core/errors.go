package core

import "errors"

// Sentinel errors shared by every inference strategy.
var (
	// ErrFactorOutsideInference indicates that Factor was called while the
	// default strategy (or Forward) is installed; neither supports conditioning.
	ErrFactorOutsideInference = errors.New("core: factor invoked outside of inference")

	// ErrDegenerateParameters indicates a built-in ERP was constructed with
	// parameters outside its domain (e.g. Bernoulli(p) with p not in [0,1]).
	ErrDegenerateParameters = errors.New("core: degenerate distribution parameters")
)
