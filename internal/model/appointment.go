package model

import "time"

// Appointment представляет запланированное занятие.
// Демонстрационные данные: подтверждение записи не добавляет новых занятий.
type Appointment struct {
	ID              int64     `json:"id"`
	Counterparty    string    `json:"counterparty"` // имя второй стороны (учитель или студент)
	Topic           string    `json:"topic"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
}
