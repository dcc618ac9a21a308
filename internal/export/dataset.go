// Package export renders a finished timetable for external consumers. It
// reads the timetable and report only; nothing here feeds back into the
// solver.
package export

import (
	"sort"
	"strconv"

	"github.com/csit-dept/coursetable/internal/catalog"
	"github.com/csit-dept/coursetable/internal/solver"
)

// Dataset is tabular export content shared by the CSV and PDF renderers.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Headers of the timetable dataset, in column order.
var timetableHeaders = []string{
	"Section", "Course", "Day", "StartTime", "EndTime", "Duration",
	"Room", "RoomType", "Instructor", "InstructorID",
}

// TimetableDataset flattens the assignment set into rows sorted by section,
// day and start time.
func TimetableDataset(tt *solver.Timetable, cat *catalog.Catalog) Dataset {
	assignments := tt.Assignments()
	sort.SliceStable(assignments, func(i, j int) bool {
		a, b := assignments[i], assignments[j]
		if a.Variable.SectionID != b.Variable.SectionID {
			return a.Variable.SectionID < b.Variable.SectionID
		}
		slotA, _ := cat.TimeSlot(a.Candidate.SlotID)
		slotB, _ := cat.TimeSlot(b.Candidate.SlotID)
		if slotA.Day != slotB.Day {
			return catalog.DayIndex(slotA.Day) < catalog.DayIndex(slotB.Day)
		}
		return slotA.Start < slotB.Start
	})

	rows := make([]map[string]string, 0, len(assignments))
	for _, assignment := range assignments {
		slot, _ := cat.TimeSlot(assignment.Candidate.SlotID)
		room, _ := cat.Room(assignment.Candidate.RoomID)
		instructor, _ := cat.Instructor(assignment.Candidate.InstructorID)

		rows = append(rows, map[string]string{
			"Section":      assignment.Variable.SectionID,
			"Course":       assignment.Variable.CourseID,
			"Day":          slot.Day,
			"StartTime":    catalog.FormatClock(slot.Start),
			"EndTime":      catalog.FormatClock(slot.End),
			"Duration":     strconv.Itoa(slot.End-slot.Start) + " minutes",
			"Room":         room.ID,
			"RoomType":     string(room.Kind),
			"Instructor":   instructor.Name,
			"InstructorID": instructor.ID,
		})
	}
	return Dataset{Headers: timetableHeaders, Rows: rows}
}
