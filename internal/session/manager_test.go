package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/eduschedule/internal/model"
)

func TestManager_CreateStudentSession(t *testing.T) {
	m := NewManager()

	sess := m.Create(model.User{Name: "Jane Doe", Role: model.RoleStudent})

	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.Token)
	require.NotNil(t, sess.Booking, "student session must own a booking flow")
	assert.Nil(t, sess.Schedule)

	assert.Same(t, sess, m.Get(sess.Token))
}

func TestManager_CreateTeacherSession(t *testing.T) {
	m := NewManager()

	sess := m.Create(model.User{Name: "Mr. Lee", Role: model.RoleTeacher})

	require.NotNil(t, sess.Schedule, "teacher session must own an availability editor")
	assert.Nil(t, sess.Booking)
}

func TestManager_TokensAreUnique(t *testing.T) {
	m := NewManager()

	a := m.Create(model.User{Name: "Jane Doe", Role: model.RoleStudent})
	b := m.Create(model.User{Name: "Jane Doe", Role: model.RoleStudent})

	assert.NotEqual(t, a.Token, b.Token)
	assert.NotSame(t, a.Booking, b.Booking)
}

func TestManager_Delete(t *testing.T) {
	m := NewManager()

	sess := m.Create(model.User{Name: "Jane Doe", Role: model.RoleStudent})
	m.Delete(sess.Token)

	assert.Nil(t, m.Get(sess.Token))
}

func TestManager_GetUnknownToken(t *testing.T) {
	m := NewManager()
	assert.Nil(t, m.Get("no-such-token"))
}

func TestSession_Notifications(t *testing.T) {
	m := NewManager()
	sess := m.Create(model.User{Name: "Jane Doe", Role: model.RoleStudent})

	sess.Notify(model.Notification{Title: "Login Successful"})
	sess.Notify(model.Notification{Title: "Appointment Booked!"})

	pending := sess.Notifications()
	require.Len(t, pending, 2)

	drained := sess.DrainNotifications()
	require.Len(t, drained, 2)
	assert.Equal(t, "Login Successful", drained[0].Title)

	assert.Empty(t, sess.Notifications())
	assert.Empty(t, sess.DrainNotifications())
}
