// Package random contains the [Source] interface used by randomized retry strategies and its
// implementations.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source generates uniformly distributed numbers.
//
// Implementations must be safe for concurrent use, since a single strategy can serve many
// sessions at once.
type Source interface {
	// Float64 returns a number in [0, upper].
	Float64(upper float64) float64
	// IntN returns an integer in [0, upper). It panics if upper <= 0.
	IntN(upper int) int
}

// Default returns a [Source] backed by the global generator of math/rand/v2.
func Default() Source {
	return global{}
}

type global struct{}

func (global) Float64(upper float64) float64 {
	return fraction(rand.Uint64N(steps+1), upper)
}

func (global) IntN(upper int) int {
	return rand.IntN(upper)
}

// New returns a deterministic [Source] seeded with seed. Two sources created with the same seed
// produce the same sequence.
func New(seed uint64) Source {
	return &seeded{rand: rand.New(rand.NewPCG(seed, seed))}
}

type seeded struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func (s *seeded) Float64(upper float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fraction(s.rand.Uint64N(steps+1), upper)
}

func (s *seeded) IntN(upper int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.IntN(upper)
}

// Number of equally likely values in [0, 1]. Drawing from [0, steps] instead of using
// rand.Float64 lets the upper bound itself be returned.
const steps = 1 << 53

func fraction(n uint64, upper float64) float64 {
	return float64(n) / steps * upper
}

// Pick returns a random element of choices. It returns false if choices is empty.
func Pick[T any](src Source, choices []T) (T, bool) {
	if len(choices) == 0 {
		var zero T
		return zero, false
	}
	return choices[src.IntN(len(choices))], true
}
