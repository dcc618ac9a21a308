// Package loader builds a catalog from external files. It is the external
// collaborator the solver core relies on: referential integrity is checked
// here, so the core can assume a valid catalog.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/csit-dept/coursetable/internal/catalog"
)

// FromCSVDir reads the five catalog files (Courses.csv, Instructors.csv,
// Rooms.csv, Sections.csv, TimeSlots.csv) from dir and validates
// referential integrity across them.
func FromCSVDir(dir string) (*catalog.Catalog, error) {
	courses, err := readCourses(filepath.Join(dir, "Courses.csv"))
	if err != nil {
		return nil, err
	}
	instructors, err := readInstructors(instructorsPath(dir))
	if err != nil {
		return nil, err
	}
	rooms, err := readRooms(filepath.Join(dir, "Rooms.csv"))
	if err != nil {
		return nil, err
	}
	sections, err := readSections(filepath.Join(dir, "Sections.csv"))
	if err != nil {
		return nil, err
	}
	slots, err := readTimeSlots(filepath.Join(dir, "TimeSlots.csv"))
	if err != nil {
		return nil, err
	}

	cat := catalog.New(courses, instructors, rooms, sections, slots)
	if err := Validate(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Some datasets ship the instructor sheet under the singular name.
func instructorsPath(dir string) string {
	plural := filepath.Join(dir, "Instructors.csv")
	if _, err := os.Stat(plural); err == nil {
		return plural
	}
	return filepath.Join(dir, "Instructor.csv")
}

type table struct {
	columns map[string]int
	rows    [][]string
}

func (t table) get(row []string, column string) (string, error) {
	index, ok := t.columns[column]
	if !ok || index >= len(row) {
		return "", fmt.Errorf("missing column %q", column)
	}
	return strings.TrimSpace(row[index]), nil
}

func readTable(path string) (table, error) {
	file, err := os.Open(path)
	if err != nil {
		return table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return table{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return table{}, fmt.Errorf("read %s: empty file", path)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		// Spreadsheet exports may prefix the first header with a BOM.
		columns[strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")] = i
	}
	return table{columns: columns, rows: records[1:]}, nil
}

func readCourses(path string) ([]catalog.Course, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	courses := make([]catalog.Course, 0, len(t.rows))
	for _, row := range t.rows {
		id, err := t.get(row, "CourseID")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		name, _ := t.get(row, "CourseName")
		creditsValue, _ := t.get(row, "Credits")
		credits, _ := strconv.Atoi(creditsValue)
		kindValue, _ := t.get(row, "Type")

		kind := catalog.Lecture
		if strings.Contains(kindValue, "Lab") {
			kind = catalog.Lab
		}
		courses = append(courses, catalog.Course{ID: id, Name: name, Credits: credits, Kind: kind})
	}
	return courses, nil
}

func readInstructors(path string) ([]catalog.Instructor, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	instructors := make([]catalog.Instructor, 0, len(t.rows))
	for _, row := range t.rows {
		id, err := t.get(row, "InstructorID")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		name, _ := t.get(row, "Name")
		preferred, _ := t.get(row, "PreferredSlots")
		qualified, _ := t.get(row, "QualifiedCourses")

		instructors = append(instructors, catalog.Instructor{
			ID:               id,
			Name:             name,
			QualifiedCourses: splitList(qualified),
			UnavailableDays:  parseUnavailableDays(preferred),
		})
	}
	return instructors, nil
}

// parseUnavailableDays extracts "Not on <Day>" phrases from the free-form
// preference column.
func parseUnavailableDays(preferred string) []string {
	days := make([]string, 0)
	for _, day := range catalog.Weekdays {
		if strings.Contains(preferred, "Not on "+day) {
			days = append(days, day)
		}
	}
	return days
}

func readRooms(path string) ([]catalog.Room, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	rooms := make([]catalog.Room, 0, len(t.rows))
	for _, row := range t.rows {
		id, err := t.get(row, "RoomID")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		kindValue, _ := t.get(row, "Type")
		capacityValue, _ := t.get(row, "Capacity")
		capacity, _ := strconv.Atoi(capacityValue)

		kind := catalog.Classroom
		if strings.Contains(kindValue, "Lab") {
			kind = catalog.LabRoom
		}
		rooms = append(rooms, catalog.Room{ID: id, Kind: kind, Capacity: capacity})
	}
	return rooms, nil
}

func readSections(path string) ([]catalog.Section, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	sections := make([]catalog.Section, 0, len(t.rows))
	for _, row := range t.rows {
		id, err := t.get(row, "SectionID")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		countValue, _ := t.get(row, "StudentCount")
		count, _ := strconv.Atoi(countValue)
		courses, _ := t.get(row, "Courses")

		sections = append(sections, catalog.Section{
			ID:           id,
			StudentCount: count,
			Courses:      splitList(courses),
		})
	}
	return sections, nil
}

func readTimeSlots(path string) ([]catalog.TimeSlot, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	slots := make([]catalog.TimeSlot, 0, len(t.rows))
	for _, row := range t.rows {
		id, err := t.get(row, "TimeSlotID")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		day, _ := t.get(row, "Day")
		startValue, _ := t.get(row, "StartTime")
		endValue, _ := t.get(row, "EndTime")

		start, err := parseTime(startValue)
		if err != nil {
			return nil, fmt.Errorf("%s: slot %s: %w", path, id, err)
		}
		end, err := parseTime(endValue)
		if err != nil {
			return nil, fmt.Errorf("%s: slot %s: %w", path, id, err)
		}
		slots = append(slots, catalog.TimeSlot{ID: id, Day: day, Start: start, End: end})
	}
	return slots, nil
}

// parseTime accepts "HH:MM" with an optional AM/PM suffix, as found in the
// spreadsheet exports.
func parseTime(value string) (int, error) {
	value = strings.TrimSpace(value)
	upper := strings.ToUpper(value)

	meridiem := ""
	for _, suffix := range []string{"AM", "PM"} {
		if strings.HasSuffix(upper, suffix) {
			meridiem = suffix
			value = strings.TrimSpace(value[:len(value)-len(suffix)])
			break
		}
	}

	minutes, err := catalog.ParseClock(value)
	if err != nil {
		return 0, err
	}
	switch {
	case meridiem == "PM" && minutes < 12*60:
		minutes += 12 * 60
	case meridiem == "AM" && minutes >= 12*60:
		minutes -= 12 * 60
	}
	return minutes, nil
}

func splitList(value string) []string {
	return lo.FilterMap(strings.Split(value, ","), func(part string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(part)
		return trimmed, trimmed != ""
	})
}
