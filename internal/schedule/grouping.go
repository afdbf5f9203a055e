package schedule

import (
	"github.com/Freeeeeet/eduschedule/internal/model"
)

// AppointmentEntry — занятие вместе с отформатированным временем для карточки
type AppointmentEntry struct {
	model.Appointment
	Display string `json:"display"` // например "Thu, May 22, 2:00 PM"
}

// DateGroup содержит занятия одной календарной даты
type DateGroup struct {
	Date         string             `json:"date"`    // формат "2006-01-02"
	Heading      string             `json:"heading"` // заголовок дня, например "Thursday, May 22"
	Appointments []AppointmentEntry `json:"appointments"`
}

// GroupByDate группирует занятия по календарной дате.
// Порядок групп соответствует первому появлению даты во входе,
// порядок занятий внутри группы сохраняется.
func GroupByDate(appointments []model.Appointment) []DateGroup {
	groups := make([]DateGroup, 0)
	index := make(map[string]int)

	for _, appt := range appointments {
		date := appt.Date.Format("2006-01-02")
		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, DateGroup{
				Date:    date,
				Heading: FormatDayHeading(appt.Date),
			})
		}
		groups[i].Appointments = append(groups[i].Appointments, AppointmentEntry{
			Appointment: appt,
			Display:     FormatAppointmentTime(appt.Date),
		})
	}

	return groups
}
