package clock

import (
	"sync"
	"time"
)

// ManualClock is a Clock whose time only moves when Advance is called.
// Callbacks scheduled with AfterFunc run synchronously on the goroutine
// that advances the clock, in deadline order.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	pending []*manualTimer
}

type manualTimer struct {
	clock    *ManualClock
	deadline time.Time
	fn       func()
	stopped  bool
	fired    bool
}

// NewManual creates a ManualClock starting at the given instant.
func NewManual(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current instant.
func (clock *ManualClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

// AfterFunc registers f to run once the clock has advanced past d.
func (clock *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	timer := &manualTimer{
		clock:    clock,
		deadline: clock.now.Add(d),
		fn:       f,
	}
	clock.pending = append(clock.pending, timer)
	return timer
}

// Advance moves the clock forward by d, firing every due callback in
// deadline order. A callback may schedule further callbacks; those fire
// too if they fall inside the advance window.
func (clock *ManualClock) Advance(d time.Duration) {
	clock.mu.Lock()
	target := clock.now.Add(d)
	for {
		next := clock.nextDueLocked(target)
		if next == nil {
			clock.now = target
			clock.mu.Unlock()
			return
		}
		if next.deadline.After(clock.now) {
			clock.now = next.deadline
		}
		next.fired = true
		clock.removeLocked(next)
		clock.mu.Unlock()

		next.fn()

		clock.mu.Lock()
	}
}

func (clock *ManualClock) nextDueLocked(target time.Time) *manualTimer {
	var earliest *manualTimer
	for _, timer := range clock.pending {
		if timer.deadline.After(target) {
			continue
		}
		if earliest == nil || timer.deadline.Before(earliest.deadline) {
			earliest = timer
		}
	}
	return earliest
}

func (clock *ManualClock) removeLocked(target *manualTimer) {
	for index, timer := range clock.pending {
		if timer == target {
			clock.pending = append(clock.pending[:index], clock.pending[index+1:]...)
			return
		}
	}
}

// Stop cancels the pending callback. It reports whether the callback was
// still pending.
func (timer *manualTimer) Stop() bool {
	timer.clock.mu.Lock()
	defer timer.clock.mu.Unlock()
	if timer.fired || timer.stopped {
		return false
	}
	timer.stopped = true
	timer.clock.removeLocked(timer)
	return true
}
