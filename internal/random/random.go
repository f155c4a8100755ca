// Package random wraps math/rand/v2 behind a mutex so the same seedable
// source can feed catalog generation at startup and per-request response
// enrichment under concurrent handlers.
package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a source seeded with seed. Seed 0 means "not pinned" and falls
// back to the current time.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
}

// IntN returns a uniform int in [0, n).
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// IntBetween returns a uniform int in [lo, hi], both bounds inclusive.
func (s *Source) IntBetween(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.IntN(hi-lo+1)
}

// Int64Between returns a uniform int64 in [lo, hi], both bounds inclusive.
func (s *Source) Int64Between(lo, hi int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.Int64N(hi-lo+1)
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// FloatBetween returns a uniform float64 in [lo, hi).
func (s *Source) FloatBetween(lo, hi float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Source) Bool() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(2) == 1
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](s *Source, items []T) T {
	return items[s.IntN(len(items))]
}

// Sample returns n distinct elements of items in random order. The input
// slice is not modified.
func Sample[T any](s *Source, items []T, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.rng.Perm(len(items))
	out := make([]T, 0, n)
	for _, i := range idx[:n] {
		out = append(out, items[i])
	}
	return out
}
