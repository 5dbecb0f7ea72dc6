package model

import "time"

// EngineConfig contains runtime settings for the countdown engine.
type EngineConfig struct {
	TickInterval time.Duration
}

// UIModeConfig contains the mobile/desktop classification thresholds.
type UIModeConfig struct {
	// MobileBreakpoint is the viewport width (in device-independent
	// pixels) below which the session classifies as mobile.
	MobileBreakpoint float32
	// ResizeDebounce is how long the detector waits after the last
	// resize event before re-classifying.
	ResizeDebounce time.Duration
}

// EntryDefaults pre-fills the time entry form.
type EntryDefaults struct {
	Minutes int
	Seconds int
	// SegmentCount of 0 means one segment per second of the entry.
	SegmentCount int
}

// ToggleDefaults sets the initial state of the settings toggles.
type ToggleDefaults struct {
	SegmentedAnimation bool
	AutoStart          bool
}

// Config aggregates all runtime configuration for MultiTimer.
type Config struct {
	Engine  EngineConfig
	UIMode  UIModeConfig
	Entry   EntryDefaults
	Toggles ToggleDefaults
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Engine: EngineConfig{
			TickInterval: time.Second,
		},
		UIMode: UIModeConfig{
			MobileBreakpoint: 600,
			ResizeDebounce:   150 * time.Millisecond,
		},
		Entry: EntryDefaults{
			Minutes:      5,
			Seconds:      0,
			SegmentCount: 0,
		},
		Toggles: ToggleDefaults{
			SegmentedAnimation: false,
			AutoStart:          false,
		},
	}
}
