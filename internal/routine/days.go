package routine

import "time"

// DayID identifies one day of the week in routine schedules.
type DayID string

const (
	Monday    DayID = "monday"
	Tuesday   DayID = "tuesday"
	Wednesday DayID = "wednesday"
	Thursday  DayID = "thursday"
	Friday    DayID = "friday"
	Saturday  DayID = "saturday"
	Sunday    DayID = "sunday"
)

// Day carries the display metadata of one weekday.
type Day struct {
	ID    DayID
	Label string // short badge label
	Name  string // full name
}

// Week is the immutable weekday catalog in display order.
var Week = []Day{
	{ID: Monday, Label: "Seg", Name: "Segunda"},
	{ID: Tuesday, Label: "Ter", Name: "Terça"},
	{ID: Wednesday, Label: "Qua", Name: "Quarta"},
	{ID: Thursday, Label: "Qui", Name: "Quinta"},
	{ID: Friday, Label: "Sex", Name: "Sexta"},
	{ID: Saturday, Label: "Sáb", Name: "Sábado"},
	{ID: Sunday, Label: "Dom", Name: "Domingo"},
}

// DayByID looks a day up in the catalog.
func DayByID(id DayID) (Day, bool) {
	for _, d := range Week {
		if d.ID == id {
			return d, true
		}
	}
	return Day{}, false
}

// Weekday maps a DayID to the standard library weekday, for cron specs.
func (id DayID) Weekday() time.Weekday {
	switch id {
	case Sunday:
		return time.Sunday
	case Monday:
		return time.Monday
	case Tuesday:
		return time.Tuesday
	case Wednesday:
		return time.Wednesday
	case Thursday:
		return time.Thursday
	case Friday:
		return time.Friday
	default:
		return time.Saturday
	}
}
