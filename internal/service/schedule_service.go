package service

import (
	"context"

	"github.com/Freeeeeet/eduschedule/internal/flow"
	"github.com/Freeeeeet/eduschedule/internal/model"
	"github.com/Freeeeeet/eduschedule/internal/schedule"
	"github.com/Freeeeeet/eduschedule/internal/session"
	"go.uber.org/zap"
)

// Рабочие часы сетки слотов в редакторе доступности
const (
	availabilityStartHour = 8  // 8 AM
	availabilityEndHour   = 18 // 6 PM
)

// ScheduleState — снимок редактора доступности для интерфейса
type ScheduleState struct {
	Mode     flow.Mode                  `json:"mode"`
	Weekdays []schedule.Weekday         `json:"weekdays"`
	Slots    []string                   `json:"slots"` // детерминированная сетка слотов
	Days     map[string]bool            `json:"days"`
	Selected map[string]map[string]bool `json:"selected"`
}

type ScheduleService struct {
	logger *zap.Logger
}

func NewScheduleService(logger *zap.Logger) *ScheduleService {
	return &ScheduleService{logger: logger}
}

// SlotGrid возвращает сетку слотов редактора, одинаковую для обоих режимов
func (s *ScheduleService) SlotGrid() []string {
	labels, err := schedule.SlotLabels(availabilityStartHour, availabilityEndHour)
	if err != nil {
		// диапазон задан константами, ошибка невозможна
		panic(err)
	}
	return labels
}

// State возвращает снимок редактора доступности сессии
func (s *ScheduleService) State(sess *session.Session) *ScheduleState {
	return &ScheduleState{
		Mode:     sess.Schedule.Mode(),
		Weekdays: schedule.WeekDays,
		Slots:    s.SlotGrid(),
		Days:     sess.Schedule.EnabledDays(),
		Selected: sess.Schedule.Selected(),
	}
}

// SetMode переключает режим редактора (recurring / specific)
func (s *ScheduleService) SetMode(ctx context.Context, sess *session.Session, mode flow.Mode) error {
	return sess.Schedule.SetMode(mode)
}

// ToggleDay разворачивает или сворачивает редактор слотов дня недели
func (s *ScheduleService) ToggleDay(ctx context.Context, sess *session.Session, day string) (bool, error) {
	if !schedule.IsWeekdayAbbr(day) {
		return false, ErrUnknownWeekday
	}

	enabled := sess.Schedule.ToggleDay(day)

	s.logger.Info("Weekday toggled",
		zap.String("teacher", sess.User.Name),
		zap.String("day", day),
		zap.Bool("enabled", enabled),
	)

	return enabled, nil
}

// ToggleSlot переключает флаг "предлагается" для пары (день, слот)
func (s *ScheduleService) ToggleSlot(ctx context.Context, sess *session.Session, dayKey, label string) (bool, error) {
	if dayKey == "" || label == "" {
		return false, ErrInvalidSlotKey
	}

	selected := sess.Schedule.ToggleSlot(dayKey, label)

	s.logger.Info("Slot toggled",
		zap.String("teacher", sess.User.Name),
		zap.String("day", dayKey),
		zap.String("slot", label),
		zap.Bool("selected", selected),
	)

	return selected, nil
}

// Save отправляет сигнал об успешном сохранении.
// Записи не выполняется, карта доступности остаётся как есть,
// повторные вызовы лишь добавляют уведомление.
func (s *ScheduleService) Save(ctx context.Context, sess *session.Session) {
	sess.Notify(model.Notification{
		Title:       "Schedule Saved",
		Description: "Your availability has been updated successfully.",
	})

	s.logger.Info("Schedule saved",
		zap.String("teacher", sess.User.Name),
		zap.Int("days", len(sess.Schedule.Selected())),
	)
}

// ClearAll полностью сбрасывает редактор доступности
func (s *ScheduleService) ClearAll(ctx context.Context, sess *session.Session) {
	sess.Schedule.ClearAll()
	s.logger.Info("Schedule cleared", zap.String("teacher", sess.User.Name))
}
