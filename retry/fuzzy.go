package retry

import (
	"time"

	"github.com/teenjuna/again/random"
)

type FuzzyStrategy struct {
	factor float64
	inner  Strategy
	random random.Source
}

var _ Strategy = (*FuzzyStrategy)(nil)

// Fuzzy returns a strategy that multiplies the delay of inner by a random factor from
// [1-factor, 1+factor]. It decorrelates retries of many callers sharing the same strategy.
//
// A factor above 1 is accepted and can produce negative delays, which [Policy.Delay] clamps to
// zero.
func Fuzzy(factor float64, inner Strategy) *FuzzyStrategy {
	if factor <= 0 {
		panic("factor can't be <= 0")
	}
	if inner == nil {
		panic("strategy can't be nil")
	}
	return &FuzzyStrategy{
		factor: factor,
		inner:  inner,
		random: random.Default(),
	}
}

func (s *FuzzyStrategy) WithRandom(src random.Source) *FuzzyStrategy {
	if src == nil {
		panic("random can't be nil")
	}
	s.random = src
	return s
}

func (s *FuzzyStrategy) Delay(attempt int) time.Duration {
	f := 1 - s.factor + s.random.Float64(2*s.factor)
	return scale(s.inner.Delay(attempt), f)
}

func (*FuzzyStrategy) strategy() {}
