package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Freeeeeet/eduschedule/internal/model"
	"github.com/Freeeeeet/eduschedule/internal/session"
)

func newUserService() (*UserService, *session.Manager) {
	sessions := session.NewManager()
	return NewUserService(sessions, zap.NewNop()), sessions
}

func validLogin(role model.Role) LoginInput {
	return LoginInput{
		Name:     "Jane Doe",
		Email:    "jane@school.com",
		Password: "secret",
		Role:     role,
	}
}

func TestUserService_Login(t *testing.T) {
	svc, sessions := newUserService()

	sess, err := svc.Login(context.Background(), validLogin(model.RoleStudent))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", sess.User.Name)
	assert.Equal(t, model.RoleStudent, sess.User.Role)
	assert.Same(t, sess, sessions.Get(sess.Token))

	// Логин кладёт приветственное уведомление в очередь сессии
	notifications := sess.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Login Successful", notifications[0].Title)
	assert.Equal(t, "Welcome back, Jane Doe!", notifications[0].Description)
}

func TestUserService_LoginMissingFields(t *testing.T) {
	svc, _ := newUserService()

	cases := []struct {
		name  string
		input LoginInput
	}{
		{"empty name", LoginInput{Email: "jane@school.com", Password: "secret", Role: model.RoleStudent}},
		{"empty email", LoginInput{Name: "Jane Doe", Password: "secret", Role: model.RoleStudent}},
		{"empty password", LoginInput{Name: "Jane Doe", Email: "jane@school.com", Role: model.RoleStudent}},
		{"empty role", LoginInput{Name: "Jane Doe", Email: "jane@school.com", Password: "secret"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.input)
			require.Error(t, err)

			var validationErrs validator.ValidationErrors
			assert.ErrorAs(t, err, &validationErrs)
		})
	}
}

func TestUserService_LoginInvalidRole(t *testing.T) {
	svc, _ := newUserService()

	input := validLogin("admin")
	_, err := svc.Login(context.Background(), input)

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUserService_Logout(t *testing.T) {
	svc, sessions := newUserService()

	sess, err := svc.Login(context.Background(), validLogin(model.RoleTeacher))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sess.Token))
	assert.Nil(t, sessions.Get(sess.Token))

	assert.ErrorIs(t, svc.Logout(context.Background(), sess.Token), ErrSessionNotFound)
}
