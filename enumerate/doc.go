// Package enumerate implements exact (or, past MaxExecutions,
// truncated) enumeration over a user program's discrete support: every
// Sample branches into one frontier state per value in its
// distribution's support, weighted by the cumulative log-score
// accumulated so far; every Factor adjusts that running score in place;
// every Exit bins the completed execution's unnormalized weight into a
// marginal accumulator and, while the frontier still holds pending
// branches and MaxExecutions has not been reached, dequeues the next one
// to resume.
//
// Three interchangeable queue disciplines determine exploration order
// (see the bestfirst, depthfirst, and breadthfirst sibling packages):
// Enumerate and EnumerateLikelyFirst both mean best-first (the default),
// EnumerateDepthFirst explores one path to completion before
// backtracking, EnumerateBreadthFirst explores level by level. All three
// produce identical marginals for a finite-support program that
// terminates within MaxExecutions; they differ only in which
// truncated approximation you get when it doesn't.
package enumerate
