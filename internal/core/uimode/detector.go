// Package uimode classifies the session as mobile or desktop from device
// signals. Downstream components read the mode; only the detector writes it.
package uimode

import (
	"sync"
	"time"

	"multitimer/internal/clock"
)

// Mode is the session classification.
type Mode string

const (
	ModeDesktop Mode = "desktop"
	ModeMobile  Mode = "mobile"
)

// Signals reports the device characteristics used for classification.
type Signals interface {
	// ViewportWidth returns the effective viewport width in
	// device-independent pixels.
	ViewportWidth() float32
	// Handheld reports whether touch/orientation signals indicate a
	// handheld form factor.
	Handheld() bool
}

// Config contains the classification thresholds.
type Config struct {
	// MobileBreakpoint is the width below which the session is mobile.
	MobileBreakpoint float32
	// ResizeDebounce is how long to wait after the last resize event
	// before re-classifying.
	ResizeDebounce time.Duration
}

// Detector owns the process-wide UI mode. It classifies once at startup
// and re-evaluates on resize events, debounced to avoid thrashing during
// continuous resize.
type Detector struct {
	mu         sync.Mutex
	signals    Signals
	options    Config
	timeSource clock.Clock
	mode       Mode
	pending    clock.Timer
	observers  []chan Mode
}

// New creates a detector and classifies the session immediately.
func New(signals Signals, options Config, timeSource clock.Clock) *Detector {
	if options.MobileBreakpoint <= 0 {
		options.MobileBreakpoint = 600
	}
	if options.ResizeDebounce <= 0 {
		options.ResizeDebounce = 150 * time.Millisecond
	}
	detector := &Detector{
		signals:    signals,
		options:    options,
		timeSource: timeSource,
	}
	detector.mode = detector.classify()
	return detector
}

// Mode returns the current classification.
func (detector *Detector) Mode() Mode {
	detector.mu.Lock()
	defer detector.mu.Unlock()
	return detector.mode
}

// Subscribe registers a new observer channel. Observers receive the mode
// whenever it changes.
func (detector *Detector) Subscribe(buffer int) <-chan Mode {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Mode, buffer)
	detector.mu.Lock()
	detector.observers = append(detector.observers, ch)
	detector.mu.Unlock()
	return ch
}

// HandleResize notes a resize event. Re-classification happens once the
// debounce window has passed without further events.
func (detector *Detector) HandleResize() {
	detector.mu.Lock()
	if detector.pending != nil {
		detector.pending.Stop()
	}
	detector.pending = detector.timeSource.AfterFunc(detector.options.ResizeDebounce, detector.evaluate)
	detector.mu.Unlock()
}

func (detector *Detector) evaluate() {
	mode := detector.classify()

	detector.mu.Lock()
	detector.pending = nil
	if mode == detector.mode {
		detector.mu.Unlock()
		return
	}
	detector.mode = mode
	observers := append([]chan Mode(nil), detector.observers...)
	detector.mu.Unlock()

	for _, ch := range observers {
		select {
		case ch <- mode:
		default:
		}
	}
}

func (detector *Detector) classify() Mode {
	if detector.signals == nil {
		return ModeDesktop
	}
	if detector.signals.Handheld() {
		return ModeMobile
	}
	if detector.signals.ViewportWidth() < detector.options.MobileBreakpoint {
		return ModeMobile
	}
	return ModeDesktop
}
