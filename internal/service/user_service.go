package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/eduschedule/internal/model"
	"github.com/Freeeeeet/eduschedule/internal/session"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// LoginInput — данные формы логина.
// Проверяется только заполненность полей, учётные данные не сверяются.
type LoginInput struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required"`
	Password string     `json:"password" validate:"required"`
	Role     model.Role `json:"role" validate:"required"`
}

type UserService struct {
	sessions *session.Manager
	validate *validator.Validate
	logger   *zap.Logger
}

func NewUserService(sessions *session.Manager, logger *zap.Logger) *UserService {
	return &UserService{
		sessions: sessions,
		validate: validator.New(),
		logger:   logger,
	}
}

// Login создаёт сессию для пользователя.
// Пароль нигде не сохраняется и не проверяется.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*session.Session, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validate login input: %w", err)
	}

	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	sess := s.sessions.Create(model.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	})

	sess.Notify(model.Notification{
		Title:       "Login Successful",
		Description: fmt.Sprintf("Welcome back, %s!", input.Name),
	})

	s.logger.Info("User logged in",
		zap.String("name", input.Name),
		zap.String("role", string(input.Role)),
	)

	return sess, nil
}

// Logout удаляет сессию вместе со всем её состоянием
func (s *UserService) Logout(ctx context.Context, token string) error {
	sess := s.sessions.Get(token)
	if sess == nil {
		return ErrSessionNotFound
	}

	s.sessions.Delete(token)

	s.logger.Info("User logged out",
		zap.String("name", sess.User.Name),
		zap.String("role", string(sess.User.Role)),
	)

	return nil
}
