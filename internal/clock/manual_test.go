package clock

import (
	"testing"
	"time"
)

func TestManualClock_NowOnlyMovesOnAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timeSource := NewManual(start)

	if !timeSource.Now().Equal(start) {
		t.Fatalf("expected %v, got %v", start, timeSource.Now())
	}

	timeSource.Advance(3 * time.Second)

	if got := timeSource.Now(); !got.Equal(start.Add(3 * time.Second)) {
		t.Errorf("expected %v, got %v", start.Add(3*time.Second), got)
	}
}

func TestManualClock_AfterFunc_FiresAtDeadline(t *testing.T) {
	timeSource := NewManual(time.Unix(0, 0))

	fired := false
	timeSource.AfterFunc(2*time.Second, func() {
		fired = true
	})

	timeSource.Advance(time.Second)
	if fired {
		t.Fatal("callback fired before its deadline")
	}

	timeSource.Advance(time.Second)
	if !fired {
		t.Fatal("callback did not fire at its deadline")
	}
}

func TestManualClock_FiresInDeadlineOrder(t *testing.T) {
	timeSource := NewManual(time.Unix(0, 0))

	var order []string
	timeSource.AfterFunc(2*time.Second, func() {
		order = append(order, "second")
	})
	timeSource.AfterFunc(time.Second, func() {
		order = append(order, "first")
	})

	timeSource.Advance(3 * time.Second)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected [first second], got %v", order)
	}
}

func TestManualClock_SelfReschedulingCallback(t *testing.T) {
	timeSource := NewManual(time.Unix(0, 0))

	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		timeSource.AfterFunc(time.Second, tick)
	}
	timeSource.AfterFunc(time.Second, tick)

	timeSource.Advance(3 * time.Second)

	if ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", ticks)
	}
}

func TestManualClock_Stop(t *testing.T) {
	timeSource := NewManual(time.Unix(0, 0))

	fired := false
	timer := timeSource.AfterFunc(time.Second, func() {
		fired = true
	})

	if !timer.Stop() {
		t.Error("Stop() should report the callback as pending")
	}
	if timer.Stop() {
		t.Error("second Stop() should report the callback as gone")
	}

	timeSource.Advance(5 * time.Second)
	if fired {
		t.Error("stopped callback must not fire")
	}
}
