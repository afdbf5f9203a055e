package service

import "errors"

// Общие ошибки сервисного слоя
var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrSessionNotFound = errors.New("session not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrUnknownWeekday  = errors.New("unknown weekday")
	ErrInvalidSlotKey  = errors.New("day key and slot label must not be empty")
)
