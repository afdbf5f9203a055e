package model

// Notification представляет всплывающее уведомление для интерфейса
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
