// Package segment derives segment visibility from timer state. It is a
// pure projection: visibility is recomputed from scratch on every call so
// missed ticks can never leave stale hidden counts behind.
package segment

import (
	"time"

	"multitimer/internal/core/countdown"
	"multitimer/internal/core/model"
)

// Segment is the visibility marker for one segment of a timer.
type Segment struct {
	Hidden bool
}

// Render derives the segment visibility for the timer's current remaining
// time. The result is empty when segmentation is disabled.
func Render(timer *countdown.Timer) []Segment {
	return ForDuration(timer.Duration(), timer.Remaining())
}

// ForDuration derives segment visibility for an explicit remaining time.
// Segment i is hidden once the elapsed time has reached the cumulative
// length of segments 0..i.
func ForDuration(duration model.Duration, remaining time.Duration) []Segment {
	lengths := duration.SegmentLengths()
	if len(lengths) == 0 {
		return nil
	}

	elapsed := duration.Total() - remaining
	segments := make([]Segment, len(lengths))
	var cumulative time.Duration
	for index, length := range lengths {
		cumulative += length
		segments[index] = Segment{Hidden: elapsed >= cumulative}
	}
	return segments
}

// HiddenCount returns how many segments are hidden.
func HiddenCount(segments []Segment) int {
	count := 0
	for _, seg := range segments {
		if seg.Hidden {
			count++
		}
	}
	return count
}
