// Package cache memoizes a deterministic host computation keyed on its
// arguments' canonical form. Wrapping a function that is not
// deterministic, or whose result depends on which execution path called
// it, silently violates inference semantics: the cache has no way to
// tell a legitimate repeat call from one that should have recomputed.
package cache
