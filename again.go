// Package again re-invokes asynchronous tasks until they succeed or a retry budget is exhausted.
//
// A session is started with [Run], [Go] or [Executor.Run]. The task is invoked, and every time it
// reports a failure the [retry.Policy] decides whether another attempt is made and how long to
// wait before it. Waiting never blocks a goroutine: the next attempt is scheduled on a timer.
package again

import (
	"github.com/teenjuna/again/retry"
)

// Task is an asynchronous action. It must call done exactly once per invocation. It may call it
// from any goroutine, including synchronously before returning.
type Task[T any] func(done func(Result[T]))

// Result is the outcome of one attempt. A non-nil Err marks a failure.
type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Failed reports whether the result carries an error.
func (r Result[T]) Failed() bool {
	return r.Err != nil
}

// Run starts a session that invokes task according to policy and calls done exactly once with the
// terminal result: the first successful one, or the last failure when the retries are exhausted.
func Run[T any](
	policy retry.Policy,
	task Task[T],
	done func(Result[T]),
	configFuncs ...func(c *Config),
) {
	New[T](configFuncs...).Run(policy, task, done)
}

// Go is like [Run], but delivers the terminal result through a channel. The channel is buffered,
// so the session never waits for a reader.
func Go[T any](
	policy retry.Policy,
	task Task[T],
	configFuncs ...func(c *Config),
) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	Run(policy, task, func(r Result[T]) { ch <- r }, configFuncs...)
	return ch
}

// Async adapts a blocking function into a [Task] that runs fn on its own goroutine.
func Async[T any](fn func() (T, error)) Task[T] {
	if fn == nil {
		panic("func can't be nil")
	}
	return func(done func(Result[T])) {
		go func() {
			v, err := fn()
			done(Result[T]{Value: v, Err: err})
		}()
	}
}
