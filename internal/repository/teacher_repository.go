package repository

import (
	"context"
	"sync"

	"github.com/Freeeeeet/eduschedule/internal/model"
)

// TeacherRepository хранит каталог преподавателей в памяти.
// Данные демонстрационные и не изменяются после создания.
type TeacherRepository struct {
	mu       sync.RWMutex
	teachers []model.Teacher
}

func NewTeacherRepository() *TeacherRepository {
	return &TeacherRepository{teachers: seedTeachers()}
}

// List возвращает всех преподавателей каталога
func (r *TeacherRepository) List(ctx context.Context) ([]model.Teacher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Teacher, len(r.teachers))
	copy(out, r.teachers)
	return out, nil
}

// GetByID возвращает преподавателя по ID, nil если не найден
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*model.Teacher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.teachers {
		if t.ID == id {
			teacher := t
			return &teacher, nil
		}
	}
	return nil, nil
}
