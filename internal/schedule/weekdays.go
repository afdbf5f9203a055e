package schedule

// Weekday описывает день недели в редакторе регулярного расписания
type Weekday struct {
	Name    string `json:"name"`
	Abbr    string `json:"abbr"`
	Weekend bool   `json:"weekend,omitempty"`
}

// WeekDays — дни недели в порядке отображения
var WeekDays = []Weekday{
	{Name: "Monday", Abbr: "Mon"},
	{Name: "Tuesday", Abbr: "Tue"},
	{Name: "Wednesday", Abbr: "Wed"},
	{Name: "Thursday", Abbr: "Thu"},
	{Name: "Friday", Abbr: "Fri"},
	{Name: "Saturday", Abbr: "Sat", Weekend: true},
	{Name: "Sunday", Abbr: "Sun", Weekend: true},
}

// IsWeekdayAbbr проверяет что строка является сокращением дня недели
func IsWeekdayAbbr(abbr string) bool {
	for _, day := range WeekDays {
		if day.Abbr == abbr {
			return true
		}
	}
	return false
}
