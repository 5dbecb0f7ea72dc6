// Package settings holds the process-wide toggle flags the settings panel
// binds to. The controller owns no timer state: consumers sample flags at
// timer creation, so toggling never reaches into already-created timers.
package settings

import (
	"sync"

	"multitimer/internal/core/model"
)

// Change is a snapshot of the flags after a toggle.
type Change struct {
	SegmentedAnimation bool
	AutoStart          bool
}

// Controller owns the segmented-animation and auto-start flags.
type Controller struct {
	mu        sync.Mutex
	segmented bool
	autoStart bool
	observers []chan Change
}

// New creates a controller with the given initial flag values.
func New(defaults model.ToggleDefaults) *Controller {
	return &Controller{
		segmented: defaults.SegmentedAnimation,
		autoStart: defaults.AutoStart,
	}
}

// SegmentedAnimation reports whether new timers get a segment decomposition.
func (controller *Controller) SegmentedAnimation() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.segmented
}

// AutoStart reports whether new timers start immediately on creation.
func (controller *Controller) AutoStart() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.autoStart
}

// SetSegmentedAnimation updates the segmented-animation flag. Setting the
// current value again is a no-op and emits no change.
func (controller *Controller) SetSegmentedAnimation(enabled bool) {
	controller.mu.Lock()
	if controller.segmented == enabled {
		controller.mu.Unlock()
		return
	}
	controller.segmented = enabled
	change, observers := controller.snapshotLocked()
	controller.mu.Unlock()

	notify(observers, change)
}

// SetAutoStart updates the auto-start flag. Setting the current value
// again is a no-op and emits no change.
func (controller *Controller) SetAutoStart(enabled bool) {
	controller.mu.Lock()
	if controller.autoStart == enabled {
		controller.mu.Unlock()
		return
	}
	controller.autoStart = enabled
	change, observers := controller.snapshotLocked()
	controller.mu.Unlock()

	notify(observers, change)
}

// Subscribe registers a new observer channel. Observers receive a flag
// snapshot after every effective toggle.
func (controller *Controller) Subscribe(buffer int) <-chan Change {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Change, buffer)
	controller.mu.Lock()
	controller.observers = append(controller.observers, ch)
	controller.mu.Unlock()
	return ch
}

func (controller *Controller) snapshotLocked() (Change, []chan Change) {
	change := Change{
		SegmentedAnimation: controller.segmented,
		AutoStart:          controller.autoStart,
	}
	observers := append([]chan Change(nil), controller.observers...)
	return change, observers
}

func notify(observers []chan Change, change Change) {
	for _, ch := range observers {
		select {
		case ch <- change:
		default:
		}
	}
}
