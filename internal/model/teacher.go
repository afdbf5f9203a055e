package model

// Teacher представляет преподавателя из каталога.
// Справочные данные, неизменяемые в течение сессии.
type Teacher struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Subject  string  `json:"subject"`
	Rating   float64 `json:"rating"`
	ImageURL string  `json:"image_url"`
}
