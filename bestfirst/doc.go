// Package bestfirst implements the "likely-first" enumeration frontier:
// a priority queue that always dequeues the pending branch with the
// highest cumulative log-score next, so exploration visits the most
// probable executions first.
//
// The frontier is a max-heap over container/heap: Push never needs to
// remove or adjust an existing entry, since every pushed branch is a
// genuinely distinct, still-live state — there is no "stale entry"
// concept to reconcile on Pop.
//
// Complexity:
//
//   - Push: O(log n)
//   - Pop:  O(log n)
package bestfirst
