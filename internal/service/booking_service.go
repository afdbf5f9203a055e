package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/eduschedule/internal/model"
	"github.com/Freeeeeet/eduschedule/internal/repository"
	"github.com/Freeeeeet/eduschedule/internal/schedule"
	"github.com/Freeeeeet/eduschedule/internal/session"
	"go.uber.org/zap"
)

// Рабочие часы сетки слотов для записи студента
const (
	bookingStartHour = 9  // 9 AM
	bookingEndHour   = 17 // 5 PM
)

type BookingService struct {
	teacherRepo  *repository.TeacherRepository
	availability schedule.AvailabilitySource
	logger       *zap.Logger
}

func NewBookingService(
	teacherRepo *repository.TeacherRepository,
	availability schedule.AvailabilitySource,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		teacherRepo:  teacherRepo,
		availability: availability,
		logger:       logger,
	}
}

// SelectTeacher фиксирует выбор преподавателя из каталога
func (s *BookingService) SelectTeacher(ctx context.Context, sess *session.Session, teacherID int64) error {
	teacher, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return fmt.Errorf("get teacher: %w", err)
	}

	if teacher == nil {
		return ErrTeacherNotFound
	}

	if err := sess.Booking.SelectTeacher(teacherID); err != nil {
		return err
	}

	s.logger.Info("Teacher selected",
		zap.String("student", sess.User.Name),
		zap.Int64("teacher_id", teacherID),
	)

	return nil
}

// TimeSlots строит сетку слотов с флагом доступности.
// Доступность назначается псевдослучайно на каждый запрос и между
// запросами не сохраняется — подтверждение доверяет снимку выбора.
func (s *BookingService) TimeSlots(ctx context.Context) ([]model.TimeSlot, error) {
	return schedule.BookingSlots(bookingStartHour, bookingEndHour, s.availability)
}

// SelectTime фиксирует выбор слота и переводит запись к подтверждению
func (s *BookingService) SelectTime(ctx context.Context, sess *session.Session, label string) error {
	if err := sess.Booking.SelectTime(label); err != nil {
		return err
	}

	s.logger.Info("Time slot selected",
		zap.String("student", sess.User.Name),
		zap.String("slot", label),
	)

	return nil
}

// Back возвращает запись на предыдущий шаг
func (s *BookingService) Back(ctx context.Context, sess *session.Session) {
	sess.Booking.Back()
}

// Cancel отменяет запись с шага подтверждения
func (s *BookingService) Cancel(ctx context.Context, sess *session.Session) error {
	if err := sess.Booking.Cancel(); err != nil {
		return err
	}

	s.logger.Info("Booking canceled", zap.String("student", sess.User.Name))
	return nil
}

// Confirm подтверждает запись: отправляет сигнал об успехе и сбрасывает
// процесс в начальное состояние. Выбранный слот повторно не проверяется.
func (s *BookingService) Confirm(ctx context.Context, sess *session.Session) error {
	teacherID := sess.Booking.TeacherID()
	label := sess.Booking.SlotLabel()

	if err := sess.Booking.Confirm(); err != nil {
		return err
	}

	sess.Notify(model.Notification{
		Title:       "Appointment Booked!",
		Description: "Your appointment has been successfully scheduled.",
	})

	s.logger.Info("Booking confirmed",
		zap.String("student", sess.User.Name),
		zap.Int64("teacher_id", teacherID),
		zap.String("slot", label),
	)

	return nil
}
