package uimode

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"multitimer/internal/clock"
)

type stubSignals struct {
	mu       sync.Mutex
	width    float32
	handheld bool
}

func (signals *stubSignals) ViewportWidth() float32 {
	signals.mu.Lock()
	defer signals.mu.Unlock()
	return signals.width
}

func (signals *stubSignals) Handheld() bool {
	signals.mu.Lock()
	defer signals.mu.Unlock()
	return signals.handheld
}

func (signals *stubSignals) set(width float32, handheld bool) {
	signals.mu.Lock()
	signals.width = width
	signals.handheld = handheld
	signals.mu.Unlock()
}

func newTestDetector(width float32, handheld bool) (*Detector, *stubSignals, *clock.ManualClock) {
	signals := &stubSignals{width: width, handheld: handheld}
	timeSource := clock.NewManual(time.Unix(0, 0))
	detector := New(signals, Config{
		MobileBreakpoint: 600,
		ResizeDebounce:   100 * time.Millisecond,
	}, timeSource)
	return detector, signals, timeSource
}

func TestNew_NarrowViewportClassifiesMobileAtStartup(t *testing.T) {
	detector, _, _ := newTestDetector(400, false)
	assert.Equal(t, ModeMobile, detector.Mode())
}

func TestNew_HandheldClassifiesMobileRegardlessOfWidth(t *testing.T) {
	detector, _, _ := newTestDetector(1200, true)
	assert.Equal(t, ModeMobile, detector.Mode())
}

func TestNew_WideViewportClassifiesDesktop(t *testing.T) {
	detector, _, _ := newTestDetector(1200, false)
	assert.Equal(t, ModeDesktop, detector.Mode())
}

func TestHandleResize_ReclassifiesAfterDebounce(t *testing.T) {
	detector, signals, timeSource := newTestDetector(1200, false)

	signals.set(400, false)
	detector.HandleResize()

	// Not yet: the debounce window has not passed.
	assert.Equal(t, ModeDesktop, detector.Mode())

	timeSource.Advance(100 * time.Millisecond)
	assert.Equal(t, ModeMobile, detector.Mode())
}

func TestHandleResize_DebouncesBursts(t *testing.T) {
	detector, signals, timeSource := newTestDetector(1200, false)
	modes := detector.Subscribe(8)

	signals.set(400, false)
	for burst := 0; burst < 5; burst++ {
		detector.HandleResize()
		timeSource.Advance(10 * time.Millisecond)
	}
	timeSource.Advance(100 * time.Millisecond)

	assert.Equal(t, ModeMobile, detector.Mode())
	assert.Len(t, drainModes(modes), 1, "a resize burst must produce a single re-classification")
}

func TestHandleResize_NoEventWhenModeUnchanged(t *testing.T) {
	detector, signals, timeSource := newTestDetector(1200, false)
	modes := detector.Subscribe(8)

	signals.set(900, false)
	detector.HandleResize()
	timeSource.Advance(100 * time.Millisecond)

	assert.Equal(t, ModeDesktop, detector.Mode())
	assert.Empty(t, drainModes(modes))
}

func TestHandleResize_NotifiesObserversOnChange(t *testing.T) {
	detector, signals, timeSource := newTestDetector(400, false)
	modes := detector.Subscribe(8)

	signals.set(1200, false)
	detector.HandleResize()
	timeSource.Advance(100 * time.Millisecond)

	got := drainModes(modes)
	assert.Equal(t, []Mode{ModeDesktop}, got)
}

func drainModes(modes <-chan Mode) []Mode {
	var got []Mode
	for {
		select {
		case mode := <-modes:
			got = append(got, mode)
		default:
			return got
		}
	}
}
