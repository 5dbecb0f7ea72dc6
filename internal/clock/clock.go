// Package clock abstracts time operations so the countdown engine can be
// tested deterministically. Production code uses RealClock; tests inject
// ManualClock and advance it by hand.
package clock

import "time"

// Clock provides the time operations the engine needs.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// AfterFunc waits for the duration to elapse and then calls f in its
	// own goroutine. The returned Timer cancels the pending call.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer represents a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// was stopped before it fired.
	Stop() bool
}

// RealClock implements Clock with the standard time package.
type RealClock struct{}

// NewReal returns a Clock backed by real time.
func NewReal() *RealClock {
	return &RealClock{}
}

// Now returns the current wall-clock time.
func (clock *RealClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f via time.AfterFunc.
func (clock *RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return &realTimer{timer: time.AfterFunc(d, f)}
}

type realTimer struct {
	timer *time.Timer
}

func (t *realTimer) Stop() bool {
	return t.timer.Stop()
}
