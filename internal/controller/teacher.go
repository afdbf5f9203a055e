package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleDashboard отдаёт сводку недели для панели преподавателя
func (c *Controller) handleDashboard(ec echo.Context) error {
	stats, err := c.teacherService.DashboardStats(ec.Request().Context())
	if err != nil {
		return c.httpError(ec, err)
	}

	return ec.JSON(http.StatusOK, stats)
}

// handleScheduleState отдаёт снимок редактора доступности
func (c *Controller) handleScheduleState(ec echo.Context) error {
	return ec.JSON(http.StatusOK, c.scheduleService.State(contextSession(ec)))
}

// handleScheduleMode переключает режим редактора
func (c *Controller) handleScheduleMode(ec echo.Context) error {
	req := new(scheduleModeRequest)
	if err := ec.Bind(req); err != nil {
		return ec.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	sess := contextSession(ec)
	if err := c.scheduleService.SetMode(ec.Request().Context(), sess, req.Mode); err != nil {
		return c.httpError(ec, err)
	}

	return c.handleScheduleState(ec)
}

// handleToggleDay разворачивает или сворачивает день недели
func (c *Controller) handleToggleDay(ec echo.Context) error {
	req := new(toggleDayRequest)
	if err := ec.Bind(req); err != nil {
		return ec.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	sess := contextSession(ec)
	enabled, err := c.scheduleService.ToggleDay(ec.Request().Context(), sess, req.Day)
	if err != nil {
		return c.httpError(ec, err)
	}

	return ec.JSON(http.StatusOK, toggleDayResponse{Day: req.Day, Enabled: enabled})
}

// handleToggleSlot переключает флаг "предлагается" для (день, слот)
func (c *Controller) handleToggleSlot(ec echo.Context) error {
	req := new(toggleSlotRequest)
	if err := ec.Bind(req); err != nil {
		return ec.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	sess := contextSession(ec)
	selected, err := c.scheduleService.ToggleSlot(ec.Request().Context(), sess, req.Day, req.Slot)
	if err != nil {
		return c.httpError(ec, err)
	}

	return ec.JSON(http.StatusOK, toggleSlotResponse{Day: req.Day, Slot: req.Slot, Selected: selected})
}

// handleScheduleSave отправляет сигнал о сохранении расписания
func (c *Controller) handleScheduleSave(ec echo.Context) error {
	c.scheduleService.Save(ec.Request().Context(), contextSession(ec))
	return ec.JSON(http.StatusOK, statusResponse{Status: "saved"})
}

// handleScheduleClear полностью сбрасывает редактор доступности
func (c *Controller) handleScheduleClear(ec echo.Context) error {
	c.scheduleService.ClearAll(ec.Request().Context(), contextSession(ec))
	return c.handleScheduleState(ec)
}
