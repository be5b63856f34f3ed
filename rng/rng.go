// Package rng holds the engine's single shared PRNG.
//
// The PRNG is a single process-wide generator shared by every caller,
// whose seeding policy is left to the host process; this package is
// that resource. A sync.Mutex guards the underlying generator: one mutex for one piece
// of shared state, held only across the call that needs it.
package rng

import (
	"sync"

	"golang.org/x/exp/rand"
)

var (
	mu  sync.Mutex
	gen = rand.New(rand.NewSource(1))
)

// Float64 returns a pseudo-random number in [0.0, 1.0).
func Float64() float64 {
	mu.Lock()
	defer mu.Unlock()
	return gen.Float64()
}

// Seed reseeds the shared generator. Exposed for deterministic tests.
func Seed(seed uint64) {
	mu.Lock()
	defer mu.Unlock()
	gen = rand.New(rand.NewSource(seed))
}

// lockedSource adapts the shared, mutex-guarded generator to the
// golang.org/x/exp/rand.Source interface gonum's distuv constructors
// expect, so built-in ERPs can hand it a Src without bypassing the lock.
type lockedSource struct{}

func (lockedSource) Uint64() uint64 {
	mu.Lock()
	defer mu.Unlock()
	return gen.Uint64()
}

func (lockedSource) Seed(seed uint64) {
	Seed(seed)
}

// Source returns a rand.Source backed by the shared, locked generator.
func Source() rand.Source {
	return lockedSource{}
}
