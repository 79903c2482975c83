package timeline

import "time"

// Scheduler is the single-shot tick primitive the engine runs on. Schedule
// invokes fn once after roughly d; the returned func cancels a tick that
// has not fired yet and is safe to call more than once.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

func (timerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
