// Package stream retries sequences of values.
//
// A [Source] is subscribed to on every attempt. Values are handed to the downstream as soon as
// they are produced, while the terminal outcome of the sequence decides whether the session is
// retried.
package stream

import (
	"iter"

	"github.com/teenjuna/again"
	"github.com/teenjuna/again/retry"
)

// Source subscribes to a sequence. Every call must start the production from scratch. A pair with
// a non-nil error terminates the sequence with that error.
type Source[T any] func() iter.Seq2[T, error]

// Task returns a task that subscribes to source on a new goroutine and forwards every value to
// emit. The task fails with the first error of the sequence and succeeds when the sequence ends
// without one.
func Task[T any](source Source[T], emit func(T)) again.Task[struct{}] {
	if source == nil {
		panic("source can't be nil")
	}
	if emit == nil {
		panic("emit can't be nil")
	}
	return func(done func(again.Result[struct{}])) {
		go func() {
			for v, err := range source() {
				if err != nil {
					done(again.Fail[struct{}](err))
					return
				}
				emit(v)
			}
			done(again.Ok(struct{}{}))
		}()
	}
}

// Run starts a session that resubscribes to source according to policy. Values of every attempt
// are forwarded to emit. The done function is called exactly once, with nil when a subscription
// completes or with the error of the last one.
func Run[T any](
	policy retry.Policy,
	source Source[T],
	emit func(T),
	done func(error),
	configFuncs ...func(c *again.Config),
) {
	if done == nil {
		panic("done can't be nil")
	}
	again.Run(policy, Task(source, emit), func(r again.Result[struct{}]) {
		done(r.Err)
	}, configFuncs...)
}
