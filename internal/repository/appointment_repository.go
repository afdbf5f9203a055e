package repository

import (
	"context"
	"sync"

	"github.com/Freeeeeet/eduschedule/internal/model"
)

// AppointmentRepository хранит списки предстоящих занятий в памяти.
// Списки демонстрационные и доступны только для чтения: подтверждение
// записи студентом не добавляет новых занятий.
type AppointmentRepository struct {
	mu      sync.RWMutex
	student []model.Appointment // занятия глазами студента
	teacher []model.Appointment // занятия глазами преподавателя
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{
		student: seedStudentAppointments(),
		teacher: seedTeacherAppointments(),
	}
}

// ListForStudent возвращает предстоящие занятия студента
func (r *AppointmentRepository) ListForStudent(ctx context.Context) ([]model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Appointment, len(r.student))
	copy(out, r.student)
	return out, nil
}

// ListForTeacher возвращает предстоящие занятия преподавателя
func (r *AppointmentRepository) ListForTeacher(ctx context.Context) ([]model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Appointment, len(r.teacher))
	copy(out, r.teacher)
	return out, nil
}
