package retry

import (
	"time"
)

type ConstantStrategy struct {
	delay time.Duration
}

var _ Strategy = (*ConstantStrategy)(nil)

// Constant returns a strategy that waits the same delay before every attempt.
func Constant(delay time.Duration) *ConstantStrategy {
	if delay < 0 {
		panic("delay can't be < 0")
	}
	return &ConstantStrategy{delay: delay}
}

func (s *ConstantStrategy) Delay(int) time.Duration {
	return s.delay
}

func (*ConstantStrategy) strategy() {}
