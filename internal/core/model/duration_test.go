package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		seconds int
		wantErr bool
	}{
		{name: "zero entry", minutes: 0, seconds: 0, wantErr: true},
		{name: "negative minutes", minutes: -1, seconds: 5, wantErr: true},
		{name: "negative seconds", minutes: 5, seconds: -1, wantErr: true},
		{name: "seconds only", minutes: 0, seconds: 5, wantErr: false},
		{name: "minutes only", minutes: 2, seconds: 0, wantErr: false},
		{name: "both", minutes: 1, seconds: 30, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			duration, err := New(tt.minutes, tt.seconds)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDuration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes*60+tt.seconds, duration.Seconds())
		})
	}
}

func TestNew_Total(t *testing.T) {
	duration, err := New(1, 30)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, duration.Total())
	assert.False(t, duration.Segmented())
	assert.Nil(t, duration.SegmentLengths())
}

func TestWithSegments_Validation(t *testing.T) {
	duration, err := New(0, 5)
	require.NoError(t, err)

	_, err = duration.WithSegments(0)
	assert.ErrorIs(t, err, ErrInvalidSegmentCount)

	_, err = duration.WithSegments(-3)
	assert.ErrorIs(t, err, ErrInvalidSegmentCount)
}

func TestWithSegments_EvenSplit(t *testing.T) {
	duration, err := New(0, 5)
	require.NoError(t, err)
	duration, err = duration.WithSegments(5)
	require.NoError(t, err)

	assert.True(t, duration.Segmented())
	assert.Equal(t, 5, duration.SegmentCount())

	lengths := duration.SegmentLengths()
	require.Len(t, lengths, 5)
	for _, length := range lengths {
		assert.Equal(t, time.Second, length)
	}
}

func TestWithSegments_RemainderGoesToFirstSegment(t *testing.T) {
	duration, err := New(0, 7)
	require.NoError(t, err)
	duration, err = duration.WithSegments(3)
	require.NoError(t, err)

	lengths := duration.SegmentLengths()
	require.Len(t, lengths, 3)
	assert.Equal(t, 3*time.Second, lengths[0])
	assert.Equal(t, 2*time.Second, lengths[1])
	assert.Equal(t, 2*time.Second, lengths[2])
}

func TestSegmentLengths_SumExactlyTotal(t *testing.T) {
	cases := []struct {
		seconds int
		count   int
	}{
		{seconds: 5, count: 5},
		{seconds: 7, count: 3},
		{seconds: 61, count: 8},
		{seconds: 90, count: 7},
		{seconds: 2, count: 5},
	}

	for _, tc := range cases {
		duration, err := New(0, tc.seconds)
		require.NoError(t, err)
		duration, err = duration.WithSegments(tc.count)
		require.NoError(t, err)

		var sum time.Duration
		for _, length := range duration.SegmentLengths() {
			sum += length
		}
		assert.Equal(t, duration.Total(), sum, "%ds over %d segments must sum exactly", tc.seconds, tc.count)
	}
}
