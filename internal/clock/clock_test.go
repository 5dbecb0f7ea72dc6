package clock

import (
	"sync"
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	timeSource := NewReal()

	before := time.Now()
	got := timeSource.Now()
	after := time.Now()

	if got.Before(before) {
		t.Errorf("Now() returned %v which is before %v", got, before)
	}
	if got.After(after) {
		t.Errorf("Now() returned %v which is after %v", got, after)
	}
}

func TestRealClock_AfterFunc(t *testing.T) {
	timeSource := NewReal()

	var wg sync.WaitGroup
	wg.Add(1)

	timer := timeSource.AfterFunc(10*time.Millisecond, func() {
		wg.Done()
	})
	if timer == nil {
		t.Fatal("AfterFunc should return a non-nil Timer")
	}

	wg.Wait()
}

func TestRealClock_AfterFunc_Stop(t *testing.T) {
	timeSource := NewReal()

	executed := false
	timer := timeSource.AfterFunc(100*time.Millisecond, func() {
		executed = true
	})

	if !timer.Stop() {
		t.Error("Stop() should return true when the timer has not fired yet")
	}

	time.Sleep(150 * time.Millisecond)

	if executed {
		t.Error("callback should not execute after Stop()")
	}
}
