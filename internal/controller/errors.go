package controller

import (
	"errors"
	"net/http"

	"github.com/Freeeeeet/eduschedule/internal/flow"
	"github.com/Freeeeeet/eduschedule/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// httpError переводит ошибку сервисного слоя в HTTP-ответ
func (c *Controller) httpError(ec echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = "this field is required"
		}
		return ec.JSON(http.StatusBadRequest, errorResponse{
			Error:  "Please fill out all fields",
			Fields: fields,
		})
	}

	switch {
	case errors.Is(err, service.ErrTeacherNotFound):
		return ec.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})

	case errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrUnknownWeekday),
		errors.Is(err, service.ErrInvalidSlotKey),
		errors.Is(err, flow.ErrInvalidMode),
		errors.Is(err, flow.ErrInvalidTeacherID),
		errors.Is(err, flow.ErrEmptySlotLabel):
		return ec.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, flow.ErrInvalidStep),
		errors.Is(err, flow.ErrNoTeacherSelected),
		errors.Is(err, flow.ErrNoSlotSelected):
		return ec.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	}

	c.logger.Error("Unhandled error", zap.Error(err), zap.String("path", ec.Path()))
	return ec.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
