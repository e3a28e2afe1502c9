package again_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/teenjuna/again"
	"github.com/teenjuna/again/internal/testlog"
)

func run(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	synctest.Test(t, fn)
}

func configure(t *testing.T, scheduler again.Scheduler) func(c *again.Config) {
	return func(c *again.Config) {
		c.Logger(testlog.New(t))
		if scheduler != nil {
			c.Scheduler(scheduler)
		}
	}
}

// scripted returns a task that reports the errors in order, one per invocation, from a new
// goroutine. The last error is repeated once the script runs out. The value of a result is the
// number of the invocation.
func scripted(errs ...error) (again.Task[int], *atomic.Int32) {
	calls := new(atomic.Int32)
	task := func(done func(again.Result[int])) {
		n := int(calls.Add(1))
		err := errs[min(n, len(errs))-1]
		go done(again.Result[int]{Value: n, Err: err})
	}
	return task, calls
}

// recorder is a scheduler that records the requested delays.
type recorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *recorder) AfterFunc(delay time.Duration, fn func()) {
	r.mu.Lock()
	r.delays = append(r.delays, delay)
	r.mu.Unlock()
	again.TimeScheduler().AfterFunc(delay, fn)
}

func (r *recorder) Delays() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.delays...)
}
