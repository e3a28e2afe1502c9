package retry

import (
	"math"
	"time"

	"github.com/teenjuna/again/random"
)

const (
	// Highest slot of the contention window. It bounds the delay at (2^32 - 1) * base.
	maxSlot = 32
)

type ExponentialStrategy struct {
	base   time.Duration
	random random.Source
}

var _ Strategy = (*ExponentialStrategy)(nil)

// Exponential returns a strategy implementing randomized exponential backoff. The delay of
// attempt n is k*base, where k is drawn uniformly from a window that doubles with each attempt:
//
//   - attempt 1: k ∈ {0, 1};
//   - attempt 2: k ∈ {0, 1, 2, 3};
//   - attempt n >= 3: k ∈ [0, 2^min(n, 32) - 1], not restricted to integers.
func Exponential(base time.Duration) *ExponentialStrategy {
	if base < 0 {
		panic("base can't be < 0")
	}
	return &ExponentialStrategy{
		base:   base,
		random: random.Default(),
	}
}

func (s *ExponentialStrategy) WithRandom(src random.Source) *ExponentialStrategy {
	if src == nil {
		panic("random can't be nil")
	}
	s.random = src
	return s
}

func (s *ExponentialStrategy) Delay(attempt int) time.Duration {
	var k float64
	switch {
	case attempt <= 1:
		k = float64(s.random.IntN(2))
	case attempt == 2:
		k = float64(s.random.IntN(4))
	default:
		slot := min(attempt, maxSlot)
		k = s.random.Float64(math.Exp2(float64(slot)) - 1)
	}
	return scale(s.base, k)
}

func (*ExponentialStrategy) strategy() {}
