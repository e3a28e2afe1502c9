// This package contains the [Strategy] interface with its implementations, and the [Policy] and
// [State] values that drive a retry session.
package retry

import (
	"time"
)

// Strategy computes the delay before a retry attempt.
//
// The set of strategies is closed: use [Custom] for anything the built-in ones can't express.
// Implementations are safe for concurrent use.
type Strategy interface {
	// Delay returns the duration to wait before the attempt with the given index. The first retry
	// has index 1.
	Delay(attempt int) time.Duration

	strategy()
}

// Policy pairs a [Strategy] with the maximum number of retries made after the first attempt.
//
// An instance can be created only by the [NewPolicy] function. The zero value is invalid.
type Policy struct {
	strategy   Strategy
	maxRetries int
}

func NewPolicy(strategy Strategy, maxRetries int) Policy {
	if strategy == nil {
		panic("strategy can't be nil")
	}
	if maxRetries < 0 {
		panic("max retries can't be < 0")
	}
	return Policy{
		strategy:   strategy,
		maxRetries: maxRetries,
	}
}

func (p Policy) Strategy() Strategy {
	return p.strategy
}

func (p Policy) MaxRetries() int {
	return p.maxRetries
}

// Delay returns the delay of the strategy for the given attempt. Negative delays are clamped to
// zero.
func (p Policy) Delay(attempt int) time.Duration {
	return max(p.strategy.Delay(attempt), 0)
}
