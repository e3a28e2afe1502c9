package retry

import (
	"time"
)

type LinearStrategy struct {
	step time.Duration
}

var _ Strategy = (*LinearStrategy)(nil)

// Linear returns a strategy whose delay grows by step with every attempt: attempt n waits
// step*n.
func Linear(step time.Duration) *LinearStrategy {
	if step < 0 {
		panic("step can't be < 0")
	}
	return &LinearStrategy{step: step}
}

func (s *LinearStrategy) Delay(attempt int) time.Duration {
	return scale(s.step, float64(attempt))
}

func (*LinearStrategy) strategy() {}
