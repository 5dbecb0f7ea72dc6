package countdown

import "time"

// Status represents the lifecycle state of a Timer.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusPaused   Status = "paused"
	StatusFinished Status = "finished"
)

// EventType defines the type of timer event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
)

// Event represents a timer update for observers.
type Event struct {
	Type      EventType
	Status    Status
	Remaining time.Duration
	Progress  float64
	At        time.Time
}
