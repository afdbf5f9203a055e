package flow

import (
	"errors"
	"sync"
)

// Ошибки переходов между шагами
var (
	ErrInvalidStep       = errors.New("action is not valid for the current step")
	ErrNoTeacherSelected = errors.New("teacher is not selected")
	ErrNoSlotSelected    = errors.New("time slot is not selected")
	ErrInvalidTeacherID  = errors.New("invalid teacher id")
	ErrEmptySlotLabel    = errors.New("empty slot label")
)

// Step представляет текущий шаг записи студента
type Step string

const (
	StepSelectTeacher Step = "select-teacher"
	StepSelectTime    Step = "select-time"
	StepConfirm       Step = "confirm"
)

// Booking управляет шагами записи студента на занятие.
// Состояние живёт в памяти сессии и сбрасывается после подтверждения или отмены.
// Методы безопасны для конкурентного вызова: HTTP-запросы одной сессии
// могут приходить параллельно.
type Booking struct {
	mu        sync.RWMutex
	step      Step
	teacherID int64
	slotLabel string
}

// NewBooking создаёт процесс записи на начальном шаге
func NewBooking() *Booking {
	return &Booking{step: StepSelectTeacher}
}

func (b *Booking) Step() Step {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.step
}

func (b *Booking) TeacherID() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.teacherID
}

func (b *Booking) SlotLabel() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.slotLabel
}

// SelectTeacher фиксирует выбор преподавателя и переходит к выбору времени.
// Допустим только на шаге select-teacher.
func (b *Booking) SelectTeacher(teacherID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.step != StepSelectTeacher {
		return ErrInvalidStep
	}
	if teacherID <= 0 {
		return ErrInvalidTeacherID
	}

	b.teacherID = teacherID
	b.step = StepSelectTime
	return nil
}

// SelectTime фиксирует выбор слота и переходит к подтверждению.
// Допустим только на шаге select-time при выбранном преподавателе.
func (b *Booking) SelectTime(label string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.step != StepSelectTime {
		return ErrInvalidStep
	}
	if b.teacherID == 0 {
		return ErrNoTeacherSelected
	}
	if label == "" {
		return ErrEmptySlotLabel
	}

	b.slotLabel = label
	b.step = StepConfirm
	return nil
}

// Back возвращает на предыдущий шаг, не очищая выбранные значения
func (b *Booking) Back() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.step {
	case StepConfirm:
		b.step = StepSelectTime
	case StepSelectTime:
		b.step = StepSelectTeacher
	}
}

// Cancel отменяет запись с шага подтверждения и очищает выбор
func (b *Booking) Cancel() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.step != StepConfirm {
		return ErrInvalidStep
	}

	b.reset()
	return nil
}

// Confirm завершает запись: очищает выбор и возвращает начальный шаг.
// Сигнал об успехе отправляет сервисный слой.
func (b *Booking) Confirm() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.step != StepConfirm {
		return ErrInvalidStep
	}
	if b.teacherID == 0 {
		return ErrNoTeacherSelected
	}
	if b.slotLabel == "" {
		return ErrNoSlotSelected
	}

	b.reset()
	return nil
}

// reset вызывается только под захваченным мьютексом
func (b *Booking) reset() {
	b.teacherID = 0
	b.slotLabel = ""
	b.step = StepSelectTeacher
}
