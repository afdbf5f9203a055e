package controller

import (
	"net/http"

	"github.com/Freeeeeet/eduschedule/internal/model"
	"github.com/Freeeeeet/eduschedule/internal/service"
	"github.com/labstack/echo/v4"
)

// handleLogin создаёт сессию по данным формы логина
func (c *Controller) handleLogin(ec echo.Context) error {
	input := new(service.LoginInput)
	if err := ec.Bind(input); err != nil {
		return ec.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	sess, err := c.userService.Login(ec.Request().Context(), *input)
	if err != nil {
		return c.httpError(ec, err)
	}

	return ec.JSON(http.StatusOK, loginResponse{
		Token: sess.Token,
		User:  sess.User,
	})
}

// handleLogout завершает текущую сессию
func (c *Controller) handleLogout(ec echo.Context) error {
	sess := contextSession(ec)

	if err := c.userService.Logout(ec.Request().Context(), sess.Token); err != nil {
		return c.httpError(ec, err)
	}

	return ec.JSON(http.StatusOK, statusResponse{Status: "logged out"})
}

// handleNotifications отдаёт накопленные уведомления и очищает очередь
func (c *Controller) handleNotifications(ec echo.Context) error {
	notifications := contextSession(ec).DrainNotifications()
	if notifications == nil {
		notifications = []model.Notification{}
	}

	return ec.JSON(http.StatusOK, notificationsResponse{Notifications: notifications})
}

// handleAppointments отдаёт предстоящие занятия роли, сгруппированные по датам
func (c *Controller) handleAppointments(ec echo.Context) error {
	sess := contextSession(ec)

	groups, err := c.teacherService.UpcomingAppointments(ec.Request().Context(), sess.User.Role)
	if err != nil {
		return c.httpError(ec, err)
	}

	return ec.JSON(http.StatusOK, groups)
}
