package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/eduschedule/internal/model"
	"github.com/Freeeeeet/eduschedule/internal/repository"
	"github.com/Freeeeeet/eduschedule/internal/schedule"
	"go.uber.org/zap"
)

// DashboardStats — сводка недели для панели преподавателя
type DashboardStats struct {
	TotalAppointments int     `json:"total_appointments"`
	TeachingHours     float64 `json:"teaching_hours"`
	DistinctStudents  int     `json:"distinct_students"`
}

type TeacherService struct {
	teacherRepo     *repository.TeacherRepository
	appointmentRepo *repository.AppointmentRepository
	logger          *zap.Logger
}

func NewTeacherService(
	teacherRepo *repository.TeacherRepository,
	appointmentRepo *repository.AppointmentRepository,
	logger *zap.Logger,
) *TeacherService {
	return &TeacherService{
		teacherRepo:     teacherRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// ListTeachers возвращает каталог преподавателей
func (s *TeacherService) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	return s.teacherRepo.List(ctx)
}

// UpcomingAppointments возвращает предстоящие занятия для роли,
// сгруппированные по календарной дате
func (s *TeacherService) UpcomingAppointments(ctx context.Context, role model.Role) ([]schedule.DateGroup, error) {
	var (
		appointments []model.Appointment
		err          error
	)

	switch role {
	case model.RoleStudent:
		appointments, err = s.appointmentRepo.ListForStudent(ctx)
	case model.RoleTeacher:
		appointments, err = s.appointmentRepo.ListForTeacher(ctx)
	default:
		return nil, ErrInvalidRole
	}

	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	return schedule.GroupByDate(appointments), nil
}

// DashboardStats считает сводку недели по занятиям преподавателя
func (s *TeacherService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	appointments, err := s.appointmentRepo.ListForTeacher(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	stats := &DashboardStats{TotalAppointments: len(appointments)}

	totalMinutes := 0
	students := make(map[string]struct{})
	for _, appt := range appointments {
		totalMinutes += appt.DurationMinutes
		students[appt.Counterparty] = struct{}{}
	}

	stats.TeachingHours = float64(totalMinutes) / 60
	stats.DistinctStudents = len(students)

	return stats, nil
}
