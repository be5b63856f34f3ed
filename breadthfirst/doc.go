// Package breadthfirst implements the FIFO enumeration frontier:
// branches are explored in the order they were discovered, a
// level-order discipline that expands every branch at the current
// sample depth before moving to the next.
package breadthfirst
