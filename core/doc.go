// Package core defines the central types of the inference engine: the
// Distribution (ERP) interface, the Step/Cont representation a user
// computation is driven through, the process-wide coroutine slot that
// routes sample/factor/exit to the currently installed inference
// strategy, and the built-in distributions every strategy samples from.
//
// A user computation never touches a strategy directly. It builds
// Sample, Factor or Exit Steps, which a strategy's driver loop (see Run)
// answers; the synchronous DispatchSample, DispatchFactor and
// ExitProgram functions instead forward at once to whichever Strategy
// is on top of the coroutine stack (see Push/Pop/Current).
// This indirection is the one process-wide mutable resource in the
// engine: every strategy entry point pushes itself on entry and pops
// on exit, success or failure alike, so the stack always unwinds to
// its predecessor.
//
// Errors:
//
//	ErrFactorOutsideInference - Factor invoked with no strategy that supports it installed.
//	ErrDegenerateParameters   - a built-in ERP was constructed with out-of-domain parameters.
package core
