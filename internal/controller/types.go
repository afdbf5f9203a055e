package controller

import (
	"github.com/Freeeeeet/eduschedule/internal/flow"
	"github.com/Freeeeeet/eduschedule/internal/model"
)

// Запросы

type selectTeacherRequest struct {
	TeacherID int64 `json:"teacher_id"`
}

type selectTimeRequest struct {
	Label string `json:"label"`
}

type scheduleModeRequest struct {
	Mode flow.Mode `json:"mode"`
}

type toggleDayRequest struct {
	Day string `json:"day"`
}

type toggleSlotRequest struct {
	Day  string `json:"day"`
	Slot string `json:"slot"`
}

// Ответы

type loginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type bookingStateResponse struct {
	Step      flow.Step `json:"step"`
	TeacherID int64     `json:"teacher_id,omitempty"`
	SlotLabel string    `json:"slot_label,omitempty"`
}

type notificationsResponse struct {
	Notifications []model.Notification `json:"notifications"`
}

type toggleDayResponse struct {
	Day     string `json:"day"`
	Enabled bool   `json:"enabled"`
}

type toggleSlotResponse struct {
	Day      string `json:"day"`
	Slot     string `json:"slot"`
	Selected bool   `json:"selected"`
}

type statusResponse struct {
	Status string `json:"status"`
}
