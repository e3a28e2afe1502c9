package retry

import (
	"time"
)

type CustomStrategy struct {
	fn func(attempt int) time.Duration
}

var _ Strategy = (*CustomStrategy)(nil)

// Custom returns a strategy that delegates to fn. The result of fn is used verbatim.
func Custom(fn func(attempt int) time.Duration) *CustomStrategy {
	if fn == nil {
		panic("func can't be nil")
	}
	return &CustomStrategy{fn: fn}
}

func (s *CustomStrategy) Delay(attempt int) time.Duration {
	return s.fn(attempt)
}

func (*CustomStrategy) strategy() {}
