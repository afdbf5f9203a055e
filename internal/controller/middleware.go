package controller

import (
	"net/http"
	"strings"

	"github.com/Freeeeeet/eduschedule/internal/model"
	"github.com/Freeeeeet/eduschedule/internal/session"
	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

// sessionMiddleware извлекает сессию по bearer-токену из заголовка Authorization
func (c *Controller) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ec echo.Context) error {
		token := bearerToken(ec.Request().Header.Get(echo.HeaderAuthorization))
		if token == "" {
			return ec.JSON(http.StatusUnauthorized, errorResponse{Error: "missing session token"})
		}

		sess := c.sessions.Get(token)
		if sess == nil {
			return ec.JSON(http.StatusUnauthorized, errorResponse{Error: "session not found"})
		}

		ec.Set(sessionContextKey, sess)
		return next(ec)
	}
}

// requireStudent пропускает только сессии с ролью student
func (c *Controller) requireStudent(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ec echo.Context) error {
		if contextSession(ec).User.Role != model.RoleStudent {
			return ec.JSON(http.StatusForbidden, errorResponse{Error: "this action is available to students only"})
		}
		return next(ec)
	}
}

// requireTeacher пропускает только сессии с ролью teacher
func (c *Controller) requireTeacher(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ec echo.Context) error {
		if contextSession(ec).User.Role != model.RoleTeacher {
			return ec.JSON(http.StatusForbidden, errorResponse{Error: "this action is available to teachers only"})
		}
		return next(ec)
	}
}

// contextSession возвращает сессию, положенную в контекст middleware
func contextSession(ec echo.Context) *session.Session {
	sess, _ := ec.Get(sessionContextKey).(*session.Session)
	return sess
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
