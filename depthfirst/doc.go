// Package depthfirst implements the LIFO enumeration frontier: the most
// recently discovered branch is explored next, descending into one
// execution path to completion before backtracking to the next pending
// branch.
package depthfirst
