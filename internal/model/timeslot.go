package model

// TimeSlot представляет получасовой слот в сетке расписания
type TimeSlot struct {
	Label     string `json:"label"` // отформатированное время начала, например "9:00 AM"
	Available bool   `json:"available"`
}
