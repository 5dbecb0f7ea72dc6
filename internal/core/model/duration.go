package model

import (
	"errors"
	"time"
)

// ErrInvalidDuration indicates a zero or negative time entry.
var ErrInvalidDuration = errors.New("invalid duration")

// ErrInvalidSegmentCount indicates a non-positive segment count.
var ErrInvalidSegmentCount = errors.New("invalid segment count")

// Duration is a configured countdown length with an optional decomposition
// into segments. It is immutable once a timer has been built from it.
type Duration struct {
	total    time.Duration
	segments int
}

// New builds a Duration from a minutes/seconds time entry.
func New(minutes, seconds int) (Duration, error) {
	if minutes < 0 || seconds < 0 || (minutes == 0 && seconds == 0) {
		return Duration{}, ErrInvalidDuration
	}
	total := time.Duration(minutes*60+seconds) * time.Second
	return Duration{total: total}, nil
}

// WithSegments returns a copy of the duration split into count segments.
func (duration Duration) WithSegments(count int) (Duration, error) {
	if count <= 0 {
		return Duration{}, ErrInvalidSegmentCount
	}
	duration.segments = count
	return duration, nil
}

// Total returns the configured countdown length.
func (duration Duration) Total() time.Duration {
	return duration.total
}

// Seconds returns the countdown length in whole seconds.
func (duration Duration) Seconds() int {
	return int(duration.total / time.Second)
}

// SegmentCount returns the number of segments, or 0 when segmentation is
// disabled.
func (duration Duration) SegmentCount() int {
	return duration.segments
}

// Segmented reports whether the duration carries a segment decomposition.
func (duration Duration) Segmented() bool {
	return duration.segments > 0
}

// SegmentLengths returns the per-segment lengths. The division remainder is
// absorbed by segment 0 so the lengths always sum exactly to Total.
func (duration Duration) SegmentLengths() []time.Duration {
	if duration.segments <= 0 {
		return nil
	}
	base := duration.total / time.Duration(duration.segments)
	remainder := duration.total - base*time.Duration(duration.segments)

	lengths := make([]time.Duration, duration.segments)
	for index := range lengths {
		lengths[index] = base
	}
	lengths[0] += remainder
	return lengths
}
