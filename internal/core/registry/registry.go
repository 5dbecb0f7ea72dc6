// Package registry owns the ordered collection of timers and exposes the
// read-only inspection surface external tooling addresses timers through.
package registry

import (
	"errors"
	"sync"

	"multitimer/internal/clock"
	"multitimer/internal/core/countdown"
	"multitimer/internal/core/model"
	"multitimer/internal/core/segment"
)

// ErrIndexOutOfRange indicates an invalid or removed timer index.
var ErrIndexOutOfRange = errors.New("timer index out of range")

// Flags supplies behavior flags that are sampled once, at timer creation.
type Flags interface {
	AutoStart() bool
}

// Registry holds timers by stable creation index. Removing a timer leaves
// a permanent gap; indices are never compacted or reused.
type Registry struct {
	mu         sync.Mutex
	options    countdown.Config
	timeSource clock.Clock
	flags      Flags
	slots      []*countdown.Timer
}

// New creates an empty registry. flags may be nil, in which case timers
// never auto-start.
func New(options countdown.Config, timeSource clock.Clock, flags Flags) *Registry {
	return &Registry{
		options:    options,
		timeSource: timeSource,
		flags:      flags,
	}
}

// Create appends a new idle timer and returns its index. When the
// auto-start flag is set at the moment of creation, the timer is started
// immediately; later flag changes never touch existing timers.
func (registry *Registry) Create(duration model.Duration) (int, *countdown.Timer) {
	timer := countdown.New(duration, registry.options, registry.timeSource)

	registry.mu.Lock()
	index := len(registry.slots)
	registry.slots = append(registry.slots, timer)
	autoStart := registry.flags != nil && registry.flags.AutoStart()
	registry.mu.Unlock()

	if autoStart {
		// A freshly created timer is idle, so Start cannot fail.
		_ = timer.Start()
	}
	return index, timer
}

// Get returns the timer at the given creation index.
func (registry *Registry) Get(index int) (*countdown.Timer, error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if index < 0 || index >= len(registry.slots) || registry.slots[index] == nil {
		return nil, ErrIndexOutOfRange
	}
	return registry.slots[index], nil
}

// Remove stops the timer at index and marks its slot empty. The index is
// never handed out again.
func (registry *Registry) Remove(index int) error {
	registry.mu.Lock()
	if index < 0 || index >= len(registry.slots) || registry.slots[index] == nil {
		registry.mu.Unlock()
		return ErrIndexOutOfRange
	}
	timer := registry.slots[index]
	registry.slots[index] = nil
	registry.mu.Unlock()

	timer.Stop()
	return nil
}

// List returns the live timers in creation order, removed slots excluded.
func (registry *Registry) List() []*countdown.Timer {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	timers := make([]*countdown.Timer, 0, len(registry.slots))
	for _, timer := range registry.slots {
		if timer != nil {
			timers = append(timers, timer)
		}
	}
	return timers
}

// TimerView is a read-only view of one timer for inspection tooling.
type TimerView struct {
	Index            int
	RemainingSeconds float64
	Status           countdown.Status
	Segments         []segment.Segment
}

// Snapshot returns the inspection surface: every live timer's remaining
// time, status and segment visibility markers, in creation order.
func (registry *Registry) Snapshot() []TimerView {
	registry.mu.Lock()
	slots := append([]*countdown.Timer(nil), registry.slots...)
	registry.mu.Unlock()

	views := make([]TimerView, 0, len(slots))
	for index, timer := range slots {
		if timer == nil {
			continue
		}
		views = append(views, TimerView{
			Index:            index,
			RemainingSeconds: timer.Remaining().Seconds(),
			Status:           timer.Status(),
			Segments:         segment.Render(timer),
		})
	}
	return views
}
