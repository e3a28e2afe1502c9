package again

import (
	"log/slog"
	"sync"
	"time"

	"github.com/teenjuna/again/internal"
	"github.com/teenjuna/again/retry"
)

// Executor drives retry sessions of tasks producing T.
//
// An Executor has no per-session state and can run any number of sessions concurrently.
type Executor[T any] struct {
	cfg     *Config
	metrics *metrics
}

func New[T any](configFuncs ...func(c *Config)) *Executor[T] {
	cfg := newConfig(configFuncs...)
	return &Executor[T]{
		cfg:     cfg,
		metrics: cfg.prometheus.metrics(),
	}
}

// Run starts a session with the first attempt of policy. See [Executor.Execute].
func (e *Executor[T]) Run(policy retry.Policy, task Task[T], done func(Result[T])) {
	e.Execute(retry.NewState(policy), task, done)
}

// Execute starts a session at the given state. The task is invoked on the calling goroutine;
// retries are invoked by the scheduler.
//
// When the task reports a success, done is called with it. When it reports a failure and the
// state has retries left, the next attempt is scheduled after the delay of the policy. Otherwise,
// done is called with the failure. The done function is called exactly once. A session whose task
// never reports a result never finishes.
func (e *Executor[T]) Execute(state retry.State, task Task[T], done func(Result[T])) {
	if task == nil {
		panic("task can't be nil")
	}
	if done == nil {
		panic("done can't be nil")
	}

	s := &session[T]{
		executor: e,
		logger: e.cfg.logger.With(
			"session", internal.SessionID(),
			"max_retries", state.Policy().MaxRetries(),
		),
		task:     task,
		done:     done,
		inFlight: state.Try(),
		started:  time.Now(),
	}

	e.metrics.sessions.Inc()
	s.attempt(state)
}

type session[T any] struct {
	executor *Executor[T]
	logger   *slog.Logger
	task     Task[T]
	done     func(Result[T])
	started  time.Time

	// Guards the decision made on completion of an attempt.
	mu       sync.Mutex
	inFlight int
	finished bool
}

func (s *session[T]) attempt(state retry.State) {
	s.executor.metrics.attempts.Inc()
	s.task(func(result Result[T]) {
		s.complete(state, result)
	})
}

func (s *session[T]) complete(state retry.State, result Result[T]) {
	s.mu.Lock()

	// Only the first report of the attempt in flight counts. Anything else is either a repeated
	// call of done or a late report of an attempt that was already settled.
	if s.finished || state.Try() != s.inFlight {
		s.mu.Unlock()
		s.logger.Debug("Ignored completion of a settled attempt", "try", state.Try())
		return
	}

	if !result.Failed() {
		s.finished = true
		s.mu.Unlock()
		s.finish(state, result, outcomeSucceeded)
		return
	}

	if !state.RetriesLeft() {
		s.finished = true
		s.mu.Unlock()
		s.finish(state, result, outcomeExhausted)
		return
	}

	var (
		next  = state.Advance()
		delay = state.Policy().Delay(state.NextTry())
	)
	s.inFlight = next.Try()
	s.mu.Unlock()

	s.logger.Debug(
		"Attempt failed, retry scheduled",
		"try", state.Try(),
		"delay", delay,
		"error", result.Err,
	)
	s.executor.metrics.retries.Inc()
	s.executor.metrics.retryDelay.Observe(delay.Seconds())

	s.executor.cfg.scheduler.AfterFunc(delay, func() {
		s.attempt(next)
	})
}

func (s *session[T]) finish(state retry.State, result Result[T], outcome string) {
	s.executor.metrics.sessions.Dec()
	s.executor.metrics.sessionsFinished.WithLabelValues(outcome).Inc()

	if outcome == outcomeExhausted {
		s.logger.Warn(
			"Retries exhausted",
			"attempts", state.Try()+1,
			"elapsed", time.Since(s.started),
			"error", result.Err,
		)
	} else {
		s.logger.Debug(
			"Session succeeded",
			"attempts", state.Try()+1,
			"elapsed", time.Since(s.started),
		)
	}

	s.done(result)
}
