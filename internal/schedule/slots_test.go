package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotLabels_StudentRange(t *testing.T) {
	labels, err := SlotLabels(9, 17)
	require.NoError(t, err)

	require.Len(t, labels, 16)
	assert.Equal(t, "9:00 AM", labels[0])
	assert.Equal(t, "9:30 AM", labels[1])
	assert.Equal(t, "12:00 PM", labels[6])
	assert.Equal(t, "4:30 PM", labels[15])
}

func TestSlotLabels_ThirtyMinuteSteps(t *testing.T) {
	labels, err := SlotLabels(8, 18)
	require.NoError(t, err)
	require.Len(t, labels, 20)

	prev, err := time.Parse("3:04 PM", labels[0])
	require.NoError(t, err)

	for _, label := range labels[1:] {
		cur, err := time.Parse("3:04 PM", label)
		require.NoError(t, err)

		assert.Equal(t, 30*time.Minute, cur.Sub(prev), "slot %q must start 30 minutes after %q", label, prev.Format("3:04 PM"))
		prev = cur
	}
}

func TestSlotLabels_InvalidRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
	}{
		{"reversed", 17, 9},
		{"equal", 9, 9},
		{"negative start", -1, 5},
		{"end past midnight", 20, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SlotLabels(tc.start, tc.end)
			assert.ErrorIs(t, err, ErrInvalidHourRange)
		})
	}
}

func TestBookingSlots_StaticSource(t *testing.T) {
	slots, err := BookingSlots(9, 17, StaticSource(true))
	require.NoError(t, err)
	require.Len(t, slots, 16)

	for _, slot := range slots {
		assert.True(t, slot.Available)
	}

	slots, err = BookingSlots(9, 17, StaticSource(false))
	require.NoError(t, err)

	for _, slot := range slots {
		assert.False(t, slot.Available)
	}
}

func TestRandomSource_SeedReproducible(t *testing.T) {
	a := NewRandomSource(42)
	b := NewRandomSource(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Available(), b.Available())
	}
}
