package core

// FrontierState is one pending enumeration branch: the resumption
// waiting to be driven, the value that led to it, and the cumulative
// log-score accumulated up to (and including) that choice. It is owned
// by whichever Frontier holds it and is destroyed on Pop.
type FrontierState struct {
	Cont  Cont
	Value any
	Score float64
}

// Frontier is the queue discipline enumeration explores its search tree
// with. The three disciplines (best-first, depth-first, breadth-first)
// are interchangeable implementations of this interface; enumeration
// itself is agnostic to which one is installed.
type Frontier interface {
	Push(FrontierState)
	Pop() (FrontierState, bool)
	Len() int
}
