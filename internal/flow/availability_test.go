package flow

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityEditor_Defaults(t *testing.T) {
	e := NewAvailabilityEditor()

	assert.Equal(t, ModeRecurring, e.Mode())
	assert.False(t, e.DayEnabled("Mon"))
	assert.False(t, e.SlotSelected("Mon", "9:00 AM"))
	assert.Empty(t, e.Selected())
}

func TestAvailabilityEditor_SetMode(t *testing.T) {
	e := NewAvailabilityEditor()

	require.NoError(t, e.SetMode(ModeSpecific))
	assert.Equal(t, ModeSpecific, e.Mode())

	assert.ErrorIs(t, e.SetMode("weekly"), ErrInvalidMode)
	assert.Equal(t, ModeSpecific, e.Mode())
}

func TestAvailabilityEditor_ToggleSlotTwiceIsIdentity(t *testing.T) {
	e := NewAvailabilityEditor()

	assert.True(t, e.ToggleSlot("Mon", "9:00 AM"))
	assert.True(t, e.SlotSelected("Mon", "9:00 AM"))

	assert.False(t, e.ToggleSlot("Mon", "9:00 AM"))
	assert.False(t, e.SlotSelected("Mon", "9:00 AM"))
}

func TestAvailabilityEditor_ToggleDayKeepsSlots(t *testing.T) {
	e := NewAvailabilityEditor()

	e.ToggleDay("Mon")
	e.ToggleSlot("Mon", "9:00 AM")

	// Сворачивание дня не очищает его отмеченные слоты
	assert.False(t, e.ToggleDay("Mon"))
	assert.True(t, e.SlotSelected("Mon", "9:00 AM"))
}

func TestAvailabilityEditor_SpecificDateKeys(t *testing.T) {
	e := NewAvailabilityEditor()
	require.NoError(t, e.SetMode(ModeSpecific))

	e.ToggleSlot("2025-05-22", "10:00 AM")

	selected := e.Selected()
	require.Contains(t, selected, "2025-05-22")
	assert.True(t, selected["2025-05-22"]["10:00 AM"])
}

func TestAvailabilityEditor_ClearAll(t *testing.T) {
	e := NewAvailabilityEditor()

	e.ToggleDay("Mon")
	e.ToggleSlot("Mon", "9:00 AM")
	e.ToggleSlot("2025-05-22", "10:00 AM")

	e.ClearAll()

	assert.Empty(t, e.Selected())
	assert.Empty(t, e.EnabledDays())
	assert.False(t, e.DayEnabled("Mon"))
}

func TestAvailabilityEditor_ConcurrentAccess(t *testing.T) {
	e := NewAvailabilityEditor()

	// Два параллельных запроса одной сессии (двойной клик, две вкладки)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				e.ToggleSlot("Mon", "9:00 AM")
				e.ToggleDay("Mon")
				_ = e.Selected()
			}
		}()
	}
	wg.Wait()

	// Чётное суммарное число переключений возвращает исходное состояние
	assert.False(t, e.SlotSelected("Mon", "9:00 AM"))
	assert.False(t, e.DayEnabled("Mon"))
}

func TestAvailabilityEditor_SelectedReturnsCopy(t *testing.T) {
	e := NewAvailabilityEditor()
	e.ToggleSlot("Mon", "9:00 AM")

	selected := e.Selected()
	selected["Mon"]["9:00 AM"] = false

	assert.True(t, e.SlotSelected("Mon", "9:00 AM"))
}
