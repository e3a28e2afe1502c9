package retry_test

import (
	"sync"
	"testing"
)

const (
	// Number of samples drawn from randomized strategies.
	SAMPLES = 10000
)

func run(t *testing.T, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		t.Helper()
		t.Parallel()
		fn(t)
	})
}

// stubSource returns the configured fractions of the requested upper bound from Float64 and the
// configured ints, capped below the upper bound, from IntN. Both read one shared counter and
// cycle when exhausted.
type stubSource struct {
	mu        sync.Mutex
	fractions []float64
	ints      []int
	calls     int
}

func (s *stubSource) Float64(upper float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.fractions[s.calls%len(s.fractions)]
	s.calls++
	return f * upper
}

func (s *stubSource) IntN(upper int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.ints[s.calls%len(s.ints)]
	s.calls++
	return min(v, upper-1)
}
