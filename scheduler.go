package again

import "time"

// Scheduler runs functions after a delay without blocking the caller.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func())
}

// SchedulerFunc is an adapter to use ordinary functions as a [Scheduler].
type SchedulerFunc func(delay time.Duration, fn func())

func (f SchedulerFunc) AfterFunc(delay time.Duration, fn func()) {
	f(delay, fn)
}

// TimeScheduler returns a [Scheduler] backed by [time.AfterFunc]. It's the default one.
func TimeScheduler() Scheduler {
	return timeScheduler{}
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}
