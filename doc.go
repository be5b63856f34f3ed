// Package webppl is the inference runtime of a small probabilistic
// programming language: a continuation-passing engine that intercepts
// every random choice (sample) and every log-weight statement (factor)
// a user computation makes, and answers them according to whichever
// inference strategy is installed, producing a normalized marginal
// distribution over the computation's return values.
//
// Three strategies are provided:
//
//	forward        — draws one sample from the prior, rejects factor.
//	enumerate      — exhaustive (or, past a cap, truncated) search over
//	                 a discrete support tree, in best-first, depth-first,
//	                 or breadth-first order.
//	particlefilter — sequential importance resampling with N particles
//	                 synchronized at every factor.
//
// User computations are compiled into the tagged-variant continuation
// shape core.Step exposes (core.Sample/core.Factor/core.Exit); this
// package's job is orchestrating which strategy answers each
// suspension, not compiling the user program into that shape.
//
// Subpackages:
//
//	core/           — ERP interface, Step/Cont/Program, the coroutine
//	                  stack, the built-in distributions, the shared
//	                  trampoline driver.
//	marginal/       — the weighted-accumulator marginal builder and the
//	                  delta (point-mass) ERP Forward produces.
//	forward/        — the Forward strategy.
//	enumerate/      — the Enumeration strategy and its three frontier
//	                  disciplines (bestfirst/, depthfirst/, breadthfirst/).
//	particlefilter/ — the particle filter strategy.
//	cache/          — deterministic subcomputation memoization.
//	ffi/            — host primitive calls and display.
//	rng/            — the shared PRNG backing every built-in ERP's Sample.
//	obslog/         — structured logging every strategy reports through.
//	cmd/webppl/     — a CLI driving each strategy against the worked
//	                  examples from the runtime's test scenarios.
package webppl
