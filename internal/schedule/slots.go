package schedule

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Freeeeeet/eduschedule/internal/model"
)

var ErrInvalidHourRange = errors.New("invalid hour range")

// SlotLabels строит сетку получасовых слотов для диапазона часов.
// Часы задаются в 24-часовом формате, метки возвращаются в 12-часовом:
// startHour=9, endHour=17 -> ["9:00 AM", "9:30 AM", ..., "4:30 PM"].
func SlotLabels(startHour, endHour int) ([]string, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return nil, ErrInvalidHourRange
	}

	labels := make([]string, 0, (endHour-startHour)*2)
	for hour := startHour; hour < endHour; hour++ {
		for minutes := 0; minutes < 60; minutes += 30 {
			t := time.Date(0, time.January, 1, hour, minutes, 0, 0, time.UTC)
			labels = append(labels, t.Format("3:04 PM"))
		}
	}

	return labels, nil
}

// AvailabilitySource определяет источник случайной доступности слотов.
// Вынесен в интерфейс чтобы тесты могли подставить детерминированный источник.
type AvailabilitySource interface {
	Available() bool
}

// RandomSource помечает слот занятым примерно в 30% случаев
type RandomSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rnd: rand.New(rand.NewSource(seed))}
}

func (s *RandomSource) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64() > 0.3
}

// StaticSource всегда возвращает одно и то же значение доступности
type StaticSource bool

func (s StaticSource) Available() bool { return bool(s) }

// BookingSlots строит сетку слотов для студента с флагом доступности.
// Доступность берётся из src на каждый слот, сетка не стабильна между вызовами.
func BookingSlots(startHour, endHour int, src AvailabilitySource) ([]model.TimeSlot, error) {
	labels, err := SlotLabels(startHour, endHour)
	if err != nil {
		return nil, err
	}

	slots := make([]model.TimeSlot, 0, len(labels))
	for _, label := range labels {
		slots = append(slots, model.TimeSlot{
			Label:     label,
			Available: src.Available(),
		})
	}

	return slots, nil
}
