// Package animation drives the fade-out of consumed timer segments.
package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains animation timing values.
type Config struct {
	FadeDuration  time.Duration
	FrameInterval time.Duration
}

// DefaultConfig returns the built-in fade timings.
func DefaultConfig() Config {
	return Config{
		FadeDuration:  300 * time.Millisecond,
		FrameInterval: 30 * time.Millisecond,
	}
}

// Engine animates segment alpha changes. The setAlpha callback receives
// the segment index and an alpha in [0, 1]; it is invoked from the
// engine's goroutines, so callers wrap it for their UI thread.
type Engine struct {
	mu       sync.Mutex
	config   Config
	setAlpha func(segmentIndex int, alpha float32)
	cancels  map[int]context.CancelFunc
}

// New creates a new animation engine.
func New(config Config, setAlpha func(int, float32)) *Engine {
	if config.FadeDuration <= 0 {
		config.FadeDuration = 300 * time.Millisecond
	}
	if config.FrameInterval <= 0 {
		config.FrameInterval = 30 * time.Millisecond
	}
	return &Engine{
		config:   config,
		setAlpha: setAlpha,
		cancels:  make(map[int]context.CancelFunc),
	}
}

// FadeOut animates the segment's alpha from 1 to 0. A fade already in
// flight for the same segment is cancelled first.
func (engine *Engine) FadeOut(ctx context.Context, segmentIndex int) {
	engine.mu.Lock()
	if cancel, ok := engine.cancels[segmentIndex]; ok {
		cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancels[segmentIndex] = cancel
	engine.mu.Unlock()

	go engine.runFade(runCtx, segmentIndex)
}

// Hide sets the segment fully transparent without animating, cancelling
// any fade in flight.
func (engine *Engine) Hide(segmentIndex int) {
	engine.cancelFade(segmentIndex)
	engine.setAlpha(segmentIndex, 0)
}

// Show restores the segment to fully opaque, cancelling any fade in flight.
func (engine *Engine) Show(segmentIndex int) {
	engine.cancelFade(segmentIndex)
	engine.setAlpha(segmentIndex, 1)
}

// Stop cancels every fade in flight.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	for index, cancel := range engine.cancels {
		cancel()
		delete(engine.cancels, index)
	}
	engine.mu.Unlock()
}

func (engine *Engine) cancelFade(segmentIndex int) {
	engine.mu.Lock()
	if cancel, ok := engine.cancels[segmentIndex]; ok {
		cancel()
		delete(engine.cancels, segmentIndex)
	}
	engine.mu.Unlock()
}

func (engine *Engine) runFade(ctx context.Context, segmentIndex int) {
	steps := int(engine.config.FadeDuration / engine.config.FrameInterval)
	if steps < 1 {
		steps = 1
	}
	for step := 1; step <= steps; step++ {
		if !sleepWithContext(ctx, engine.config.FrameInterval) {
			return
		}
		engine.setAlpha(segmentIndex, 1-float32(step)/float32(steps))
	}
	engine.setAlpha(segmentIndex, 0)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
