package flow

import (
	"errors"
	"sync"
)

var ErrInvalidMode = errors.New("invalid schedule mode")

// Mode определяет режим редактора доступности
type Mode string

const (
	ModeRecurring Mode = "recurring" // по дням недели
	ModeSpecific  Mode = "specific"  // по конкретным датам
)

// AvailabilityEditor хранит редактируемую доступность преподавателя.
// Ключ дня — сокращение дня недели ("Mon") или дата ("2006-01-02"),
// отсутствующая запись означает что слот не предлагается.
// Save не выполняет записи, состояние живёт только в памяти сессии.
// Методы безопасны для конкурентного вызова: HTTP-запросы одной сессии
// могут приходить параллельно.
type AvailabilityEditor struct {
	mu    sync.RWMutex
	mode  Mode
	days  map[string]bool            // раскрытые дни недели в режиме recurring
	slots map[string]map[string]bool // день -> метка слота -> предлагается
}

// NewAvailabilityEditor создаёт редактор в режиме recurring
func NewAvailabilityEditor() *AvailabilityEditor {
	return &AvailabilityEditor{
		mode:  ModeRecurring,
		days:  make(map[string]bool),
		slots: make(map[string]map[string]bool),
	}
}

func (e *AvailabilityEditor) Mode() Mode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mode
}

// SetMode переключает режим редактора, не трогая уже отмеченные слоты
func (e *AvailabilityEditor) SetMode(mode Mode) error {
	if mode != ModeRecurring && mode != ModeSpecific {
		return ErrInvalidMode
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = mode
	return nil
}

// ToggleDay разворачивает или сворачивает редактор слотов дня недели.
// Слоты свёрнутого дня не очищаются.
func (e *AvailabilityEditor) ToggleDay(day string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.days[day] = !e.days[day]
	return e.days[day]
}

// DayEnabled возвращает раскрыт ли день недели
func (e *AvailabilityEditor) DayEnabled(day string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.days[day]
}

// ToggleSlot переключает флаг "предлагается" для пары (день, слот).
// Повторный вызов возвращает прежнее состояние.
func (e *AvailabilityEditor) ToggleSlot(dayKey, label string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.slots[dayKey] == nil {
		e.slots[dayKey] = make(map[string]bool)
	}
	e.slots[dayKey][label] = !e.slots[dayKey][label]
	return e.slots[dayKey][label]
}

// SlotSelected возвращает предлагается ли слот, отсутствующие записи — false
func (e *AvailabilityEditor) SlotSelected(dayKey, label string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.slots[dayKey][label]
}

// Selected возвращает копию карты доступности
func (e *AvailabilityEditor) Selected() map[string]map[string]bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make(map[string]map[string]bool, len(e.slots))
	for day, slots := range e.slots {
		daySlots := make(map[string]bool, len(slots))
		for label, on := range slots {
			daySlots[label] = on
		}
		out[day] = daySlots
	}
	return out
}

// EnabledDays возвращает копию карты раскрытых дней недели
func (e *AvailabilityEditor) EnabledDays() map[string]bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make(map[string]bool, len(e.days))
	for day, on := range e.days {
		out[day] = on
	}
	return out
}

// ClearAll полностью сбрасывает редактор: карту доступности и раскрытые дни.
// В исходном интерфейсе кнопка объявлена без обработчика, здесь выбран полный сброс.
func (e *AvailabilityEditor) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.days = make(map[string]bool)
	e.slots = make(map[string]map[string]bool)
}
