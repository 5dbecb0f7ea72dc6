package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"multitimer/internal/core/model"
)

func drainChanges(changes <-chan Change) []Change {
	var got []Change
	for {
		select {
		case change := <-changes:
			got = append(got, change)
		default:
			return got
		}
	}
}

func TestNew_AppliesDefaults(t *testing.T) {
	controller := New(model.ToggleDefaults{SegmentedAnimation: true, AutoStart: false})

	assert.True(t, controller.SegmentedAnimation())
	assert.False(t, controller.AutoStart())
}

func TestSetSegmentedAnimation_EmitsOnChange(t *testing.T) {
	controller := New(model.ToggleDefaults{})
	changes := controller.Subscribe(4)

	controller.SetSegmentedAnimation(true)

	assert.True(t, controller.SegmentedAnimation())
	got := drainChanges(changes)
	assert.Equal(t, []Change{{SegmentedAnimation: true, AutoStart: false}}, got)
}

func TestSetSegmentedAnimation_Idempotent(t *testing.T) {
	controller := New(model.ToggleDefaults{SegmentedAnimation: true})
	changes := controller.Subscribe(4)

	controller.SetSegmentedAnimation(true)
	controller.SetSegmentedAnimation(true)

	assert.True(t, controller.SegmentedAnimation())
	assert.Empty(t, drainChanges(changes), "re-setting the same value must emit nothing")
}

func TestSetAutoStart_Idempotent(t *testing.T) {
	controller := New(model.ToggleDefaults{})
	changes := controller.Subscribe(4)

	controller.SetAutoStart(false)
	assert.Empty(t, drainChanges(changes))

	controller.SetAutoStart(true)
	controller.SetAutoStart(true)

	assert.True(t, controller.AutoStart())
	assert.Len(t, drainChanges(changes), 1)
}

func TestToggles_Independent(t *testing.T) {
	controller := New(model.ToggleDefaults{})

	controller.SetSegmentedAnimation(true)
	assert.True(t, controller.SegmentedAnimation())
	assert.False(t, controller.AutoStart())

	controller.SetAutoStart(true)
	controller.SetSegmentedAnimation(false)
	assert.True(t, controller.AutoStart())
	assert.False(t, controller.SegmentedAnimation())
}
