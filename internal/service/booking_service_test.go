package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Freeeeeet/eduschedule/internal/flow"
	"github.com/Freeeeeet/eduschedule/internal/model"
	"github.com/Freeeeeet/eduschedule/internal/repository"
	"github.com/Freeeeeet/eduschedule/internal/schedule"
	"github.com/Freeeeeet/eduschedule/internal/session"
)

func newBookingService(src schedule.AvailabilitySource) (*BookingService, *session.Manager) {
	sessions := session.NewManager()
	teacherRepo := repository.NewTeacherRepository()
	return NewBookingService(teacherRepo, src, zap.NewNop()), sessions
}

func TestBookingService_StudentScenario(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newBookingService(schedule.StaticSource(true))

	sess := sessions.Create(model.User{Name: "Jane Doe", Role: model.RoleStudent})
	sess.DrainNotifications()

	require.NoError(t, svc.SelectTeacher(ctx, sess, 1))
	assert.Equal(t, flow.StepSelectTime, sess.Booking.Step())

	slots, err := svc.TimeSlots(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 16)
	assert.Equal(t, "10:00 AM", slots[2].Label)
	require.True(t, slots[2].Available)

	require.NoError(t, svc.SelectTime(ctx, sess, slots[2].Label))
	assert.Equal(t, flow.StepConfirm, sess.Booking.Step())

	require.NoError(t, svc.Confirm(ctx, sess))

	// Процесс сброшен, сигнал об успехе отправлен ровно один раз
	assert.Equal(t, flow.StepSelectTeacher, sess.Booking.Step())
	assert.Zero(t, sess.Booking.TeacherID())
	assert.Empty(t, sess.Booking.SlotLabel())

	notifications := sess.DrainNotifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Appointment Booked!", notifications[0].Title)
}

func TestBookingService_UnknownTeacher(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newBookingService(schedule.StaticSource(true))

	sess := sessions.Create(model.User{Name: "Jane Doe", Role: model.RoleStudent})

	err := svc.SelectTeacher(ctx, sess, 999)
	assert.ErrorIs(t, err, ErrTeacherNotFound)
	assert.Equal(t, flow.StepSelectTeacher, sess.Booking.Step())
}

func TestBookingService_ConfirmBeforeSelection(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newBookingService(schedule.StaticSource(true))

	sess := sessions.Create(model.User{Name: "Jane Doe", Role: model.RoleStudent})
	sess.DrainNotifications()

	err := svc.Confirm(ctx, sess)
	assert.ErrorIs(t, err, flow.ErrInvalidStep)
	assert.Empty(t, sess.DrainNotifications(), "no success signal on a rejected confirm")
}

func TestBookingService_CancelClearsSelection(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newBookingService(schedule.StaticSource(true))

	sess := sessions.Create(model.User{Name: "Jane Doe", Role: model.RoleStudent})
	require.NoError(t, svc.SelectTeacher(ctx, sess, 2))
	require.NoError(t, svc.SelectTime(ctx, sess, "11:30 AM"))

	require.NoError(t, svc.Cancel(ctx, sess))

	assert.Equal(t, flow.StepSelectTeacher, sess.Booking.Step())
	assert.Zero(t, sess.Booking.TeacherID())
}

func TestBookingService_SlotsUnavailableWithClosedSource(t *testing.T) {
	svc, _ := newBookingService(schedule.StaticSource(false))

	slots, err := svc.TimeSlots(context.Background())
	require.NoError(t, err)

	for _, slot := range slots {
		assert.False(t, slot.Available)
	}
}
