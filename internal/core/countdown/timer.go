// Package countdown implements the per-timer countdown state machine.
package countdown

import (
	"errors"
	"sync"
	"time"

	"multitimer/internal/clock"
	"multitimer/internal/core/model"
)

// ErrAlreadyRunning indicates Start was called on a running timer.
var ErrAlreadyRunning = errors.New("timer already running")

// ErrNotRunning indicates Pause was called on a timer that is not running.
var ErrNotRunning = errors.New("timer not running")

// Config contains runtime options for a Timer.
type Config struct {
	TickInterval time.Duration
}

// Timer is a state machine that counts a configured duration down to zero.
// Ticks are self-rescheduled, so a timer never has more than one pending
// tick and tick callbacks are never reentrant for the same timer.
type Timer struct {
	mu         sync.Mutex
	duration   model.Duration
	options    Config
	timeSource clock.Clock
	status     Status
	remaining  time.Duration
	// generation invalidates pending ticks: a tick scheduled under an
	// older generation is a no-op when it fires.
	generation uint64
	pending    clock.Timer
	lastTickAt time.Time
	events     []chan Event
}

// New creates an idle Timer for the given duration.
func New(duration model.Duration, options Config, timeSource clock.Clock) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Timer{
		duration:   duration,
		options:    options,
		timeSource: timeSource,
		status:     StatusIdle,
		remaining:  duration.Total(),
	}
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	timer.events = append(timer.events, ch)
	timer.mu.Unlock()
	return ch
}

// Duration returns the immutable duration the timer was built from.
func (timer *Timer) Duration() model.Duration {
	return timer.duration
}

// Remaining returns the time left on the countdown. Safe to call from the
// rendering path at any time.
func (timer *Timer) Remaining() time.Duration {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.remaining
}

// Status returns the current lifecycle state.
func (timer *Timer) Status() Status {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.status
}

// Start begins or resumes the countdown. It fails with ErrAlreadyRunning
// when the timer is already running and is a no-op on a finished timer,
// which needs a Reset first.
func (timer *Timer) Start() error {
	timer.mu.Lock()
	switch timer.status {
	case StatusRunning:
		timer.mu.Unlock()
		return ErrAlreadyRunning
	case StatusFinished:
		timer.mu.Unlock()
		return nil
	}
	timer.status = StatusRunning
	timer.lastTickAt = timer.timeSource.Now()
	timer.scheduleTickLocked()
	event := timer.stateEventLocked()
	timer.mu.Unlock()

	timer.emit(event)
	return nil
}

// Pause freezes the countdown at its current remaining time. Valid only
// while running.
func (timer *Timer) Pause() error {
	timer.mu.Lock()
	if timer.status != StatusRunning {
		timer.mu.Unlock()
		return ErrNotRunning
	}
	timer.cancelPendingLocked()
	timer.generation++
	timer.status = StatusPaused
	event := timer.stateEventLocked()
	timer.mu.Unlock()

	timer.emit(event)
	return nil
}

// Reset restores the full duration and returns to idle. Valid from any
// state; any in-flight tick becomes a no-op.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	timer.cancelPendingLocked()
	timer.generation++
	timer.remaining = timer.duration.Total()
	timer.status = StatusIdle
	event := timer.stateEventLocked()
	timer.mu.Unlock()

	timer.emit(event)
}

// Stop cancels any pending tick and closes observer channels. The timer
// must not be used afterwards.
func (timer *Timer) Stop() {
	timer.mu.Lock()
	timer.cancelPendingLocked()
	timer.generation++
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (timer *Timer) scheduleTickLocked() {
	generation := timer.generation
	timer.pending = timer.timeSource.AfterFunc(timer.options.TickInterval, func() {
		timer.tick(generation)
	})
}

func (timer *Timer) cancelPendingLocked() {
	if timer.pending != nil {
		timer.pending.Stop()
		timer.pending = nil
	}
}

func (timer *Timer) tick(generation uint64) {
	timer.mu.Lock()
	if generation != timer.generation || timer.status != StatusRunning {
		timer.mu.Unlock()
		return
	}

	now := timer.timeSource.Now()
	elapsed := now.Sub(timer.lastTickAt)
	if elapsed < 0 {
		elapsed = 0
	}
	timer.lastTickAt = now

	timer.remaining -= elapsed
	if timer.remaining <= 0 {
		// Scheduling jitter may overshoot the remaining time; clamp to
		// exactly zero and fire a single finished transition.
		timer.remaining = 0
		timer.status = StatusFinished
		timer.pending = nil
		event := timer.stateEventLocked()
		timer.mu.Unlock()

		timer.emit(event)
		return
	}

	timer.scheduleTickLocked()
	event := Event{
		Type:      EventProgress,
		Status:    timer.status,
		Remaining: timer.remaining,
		Progress:  timer.progressLocked(),
		At:        now,
	}
	timer.mu.Unlock()

	timer.emit(event)
}

func (timer *Timer) stateEventLocked() Event {
	return Event{
		Type:      EventStateChange,
		Status:    timer.status,
		Remaining: timer.remaining,
		Progress:  timer.progressLocked(),
		At:        timer.timeSource.Now(),
	}
}

func (timer *Timer) progressLocked() float64 {
	total := timer.duration.Total()
	if total <= 0 {
		return 1
	}
	progress := float64(total-timer.remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (timer *Timer) emit(event Event) {
	timer.mu.Lock()
	events := append([]chan Event(nil), timer.events...)
	timer.mu.Unlock()
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
