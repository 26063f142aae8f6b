// Package rng holds the random-number sources used for tile generation.
// Sources are always passed in explicitly; nothing here keeps global state.
package rng

import (
	"math/rand"
	"sync"
)

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
// Intn panics when n <= 0, so callers must check for an empty range first.
type Source interface {
	Intn(n int) int
}

// New returns a source seeded with seed. Picking a seed (from the clock,
// say) is up to the caller.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Locked serializes draws from a wrapped source so that several goroutines
// can share it.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked wraps src.
func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

// Intn implements Source.
func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Intn(n)
}
