package gesture

import (
	"sync"
	"time"
)

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Clock provides the time source and single-shot timers.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer runs at most one scheduled call at a time: every Schedule
// cancels the outstanding one and arms a new one.
type Debouncer struct {
	clock Clock

	mu    sync.Mutex
	timer Timer
}

func NewDebouncer(clock Clock) *Debouncer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Debouncer{clock: clock}
}

// Schedule runs f after d unless superseded by another Schedule or Stop.
func (d *Debouncer) Schedule(delay time.Duration, f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(delay, f)
}

// Stop cancels the outstanding call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
