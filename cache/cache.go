package cache

import (
	"github.com/NATHANIELCROSBY1/webppl/core"
	"github.com/NATHANIELCROSBY1/webppl/marginal"
)

// Wrap returns a memoized version of f: the first call with a given set
// of arguments evaluates f and stores the result, keyed by the
// canonical serialization of args; every subsequent call with
// structurally equal args resumes k with the stored result without
// calling f again. Correctness presumes f is deterministic across every
// execution path that reaches it — a memoized draw from a built-in ERP,
// for instance, would only ever be sampled once.
func Wrap(f func(k core.Cont, args ...any) core.Step) func(k core.Cont, args ...any) core.Step {
	seen := make(map[string]any)
	return func(k core.Cont, args ...any) core.Step {
		key := marginal.CanonicalKey(args)
		if result, ok := seen[key]; ok {
			return k(result)
		}
		return f(func(result any) core.Step {
			seen[key] = result
			return k(result)
		}, args...)
	}
}
