package catalog

import "slices"

// Weekdays in calendar order, used to sort timetables for display and
// export.
var Weekdays = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// DayIndex returns the calendar position of a weekday name; unknown names
// sort last.
func DayIndex(day string) int {
	index := slices.Index(Weekdays, day)
	if index < 0 {
		return len(Weekdays)
	}
	return index
}
