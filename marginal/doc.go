// Package marginal builds the normalized discrete ERP every inference
// strategy hands back to its caller once it has finished exploring the
// user program's execution paths.
//
// A Builder accumulates (key, weight, representative value) bins as a
// strategy discovers completed executions; Build normalizes the
// accumulated weights and wraps them as a core.ERP whose Sample, Score,
// and Support are all defined directly against the bins — no further
// exploration of the user program is needed once a marginal exists.
//
// Keys are computed by CanonicalKey, a %#v rendering, not by the
// %v-style string serialization the engine's reference implementation
// used: structurally equal values of the same type share a bin,
// independent of how a map happened to iterate when they were
// formatted.
package marginal
