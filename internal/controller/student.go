package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleTeachers отдаёт каталог преподавателей
func (c *Controller) handleTeachers(ec echo.Context) error {
	teachers, err := c.teacherService.ListTeachers(ec.Request().Context())
	if err != nil {
		return c.httpError(ec, err)
	}

	return ec.JSON(http.StatusOK, teachers)
}

// handleBookingState отдаёт текущее состояние процесса записи
func (c *Controller) handleBookingState(ec echo.Context) error {
	booking := contextSession(ec).Booking

	return ec.JSON(http.StatusOK, bookingStateResponse{
		Step:      booking.Step(),
		TeacherID: booking.TeacherID(),
		SlotLabel: booking.SlotLabel(),
	})
}

// handleBookingSlots отдаёт сетку слотов с флагом доступности
func (c *Controller) handleBookingSlots(ec echo.Context) error {
	slots, err := c.bookingService.TimeSlots(ec.Request().Context())
	if err != nil {
		return c.httpError(ec, err)
	}

	return ec.JSON(http.StatusOK, slots)
}

// handleSelectTeacher фиксирует выбор преподавателя
func (c *Controller) handleSelectTeacher(ec echo.Context) error {
	req := new(selectTeacherRequest)
	if err := ec.Bind(req); err != nil {
		return ec.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	sess := contextSession(ec)
	if err := c.bookingService.SelectTeacher(ec.Request().Context(), sess, req.TeacherID); err != nil {
		return c.httpError(ec, err)
	}

	return c.handleBookingState(ec)
}

// handleSelectTime фиксирует выбор временного слота
func (c *Controller) handleSelectTime(ec echo.Context) error {
	req := new(selectTimeRequest)
	if err := ec.Bind(req); err != nil {
		return ec.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	sess := contextSession(ec)
	if err := c.bookingService.SelectTime(ec.Request().Context(), sess, req.Label); err != nil {
		return c.httpError(ec, err)
	}

	return c.handleBookingState(ec)
}

// handleBookingBack возвращает запись на предыдущий шаг
func (c *Controller) handleBookingBack(ec echo.Context) error {
	c.bookingService.Back(ec.Request().Context(), contextSession(ec))
	return c.handleBookingState(ec)
}

// handleBookingCancel отменяет запись с шага подтверждения
func (c *Controller) handleBookingCancel(ec echo.Context) error {
	if err := c.bookingService.Cancel(ec.Request().Context(), contextSession(ec)); err != nil {
		return c.httpError(ec, err)
	}

	return c.handleBookingState(ec)
}

// handleBookingConfirm подтверждает запись и сбрасывает процесс
func (c *Controller) handleBookingConfirm(ec echo.Context) error {
	if err := c.bookingService.Confirm(ec.Request().Context(), contextSession(ec)); err != nil {
		return c.httpError(ec, err)
	}

	return c.handleBookingState(ec)
}
