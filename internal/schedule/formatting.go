package schedule

import "time"

// FormatAppointmentTime форматирует дату и время занятия для карточки
func FormatAppointmentTime(t time.Time) string {
	return t.Format("Mon, Jan 2, 3:04 PM")
}

// FormatDayHeading форматирует заголовок дня в списке занятий
func FormatDayHeading(t time.Time) string {
	return t.Format("Monday, January 2")
}
