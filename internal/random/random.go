// Package random provides the injectable random source shared by the generators.
//
// Every generator holds its own Source so tests can seed or script it. A
// *math/rand.Rand satisfies Source directly.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the capability the generators draw from.
type Source interface {
	// Intn returns a uniform integer in [0, n). n must be > 0.
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// New creates a seeded generator. If seed is 0 the current time is used;
// the chosen seed is returned so callers can log it for reproducibility.
func New(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

var (
	defaultOnce sync.Once
	defaultSrc  *lockedSource
)

// Default returns a process-wide generator safe for concurrent use.
func Default() Source {
	defaultOnce.Do(func() {
		r, _ := New(0)
		defaultSrc = &lockedSource{r: r}
	})
	return defaultSrc
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Between returns a uniform integer in [lo, hi], inclusive on both ends.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Uniform returns a uniform float in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Pick returns a uniformly chosen element. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// Weighted is one entry of a weighted table.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// PickWeighted draws from a weighted table. Weights need not sum to 1.
// An empty or zero-weight table returns the zero value.
func PickWeighted[T any](src Source, table []Weighted[T]) T {
	var total float64
	for _, w := range table {
		total += w.Weight
	}
	var zero T
	if total <= 0 {
		return zero
	}
	roll := src.Float64() * total
	for _, w := range table {
		if roll < w.Weight {
			return w.Value
		}
		roll -= w.Weight
	}
	return table[len(table)-1].Value
}
