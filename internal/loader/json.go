package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/csit-dept/coursetable/internal/catalog"
)

type jsonCourse struct {
	ID      string `mapstructure:"id"`
	Name    string `mapstructure:"name"`
	Credits int    `mapstructure:"credits"`
	Kind    string `mapstructure:"kind"`
}

type jsonInstructor struct {
	ID               string   `mapstructure:"id"`
	Name             string   `mapstructure:"name"`
	QualifiedCourses []string `mapstructure:"qualifiedCourses"`
	UnavailableDays  []string `mapstructure:"unavailableDays"`
	UnavailableSlots []string `mapstructure:"unavailableSlots"`
}

type jsonRoom struct {
	ID       string `mapstructure:"id"`
	Kind     string `mapstructure:"kind"`
	Capacity int    `mapstructure:"capacity"`
}

type jsonSection struct {
	ID           string   `mapstructure:"id"`
	StudentCount int      `mapstructure:"studentCount"`
	Courses      []string `mapstructure:"courses"`
}

type jsonTimeSlot struct {
	ID    string `mapstructure:"id"`
	Day   string `mapstructure:"day"`
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

type jsonCatalog struct {
	Courses     []jsonCourse     `mapstructure:"courses"`
	Instructors []jsonInstructor `mapstructure:"instructors"`
	Rooms       []jsonRoom       `mapstructure:"rooms"`
	Sections    []jsonSection    `mapstructure:"sections"`
	TimeSlots   []jsonTimeSlot   `mapstructure:"timeSlots"`
}

// FromJSON reads a whole-catalog JSON document and validates referential
// integrity.
func FromJSON(file string) (*catalog.Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	var document map[string]any
	if err := json.Unmarshal(bytes, &document); err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}

	var input jsonCatalog
	if err := mapstructure.Decode(document, &input); err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}

	courses := make([]catalog.Course, 0, len(input.Courses))
	for _, course := range input.Courses {
		kind := catalog.Lecture
		if course.Kind == string(catalog.Lab) {
			kind = catalog.Lab
		}
		courses = append(courses, catalog.Course{ID: course.ID, Name: course.Name, Credits: course.Credits, Kind: kind})
	}

	instructors := make([]catalog.Instructor, 0, len(input.Instructors))
	for _, instructor := range input.Instructors {
		instructors = append(instructors, catalog.Instructor{
			ID:               instructor.ID,
			Name:             instructor.Name,
			QualifiedCourses: instructor.QualifiedCourses,
			UnavailableDays:  instructor.UnavailableDays,
			UnavailableSlots: instructor.UnavailableSlots,
		})
	}

	rooms := make([]catalog.Room, 0, len(input.Rooms))
	for _, room := range input.Rooms {
		kind := catalog.Classroom
		if room.Kind == string(catalog.LabRoom) {
			kind = catalog.LabRoom
		}
		rooms = append(rooms, catalog.Room{ID: room.ID, Kind: kind, Capacity: room.Capacity})
	}

	sections := make([]catalog.Section, 0, len(input.Sections))
	for _, section := range input.Sections {
		sections = append(sections, catalog.Section{ID: section.ID, StudentCount: section.StudentCount, Courses: section.Courses})
	}

	slots := make([]catalog.TimeSlot, 0, len(input.TimeSlots))
	for _, slot := range input.TimeSlots {
		start, err := catalog.ParseClock(slot.Start)
		if err != nil {
			return nil, fmt.Errorf("%s: slot %s: %w", file, slot.ID, err)
		}
		end, err := catalog.ParseClock(slot.End)
		if err != nil {
			return nil, fmt.Errorf("%s: slot %s: %w", file, slot.ID, err)
		}
		slots = append(slots, catalog.TimeSlot{ID: slot.ID, Day: slot.Day, Start: start, End: end})
	}

	cat := catalog.New(courses, instructors, rooms, sections, slots)
	if err := Validate(cat); err != nil {
		return nil, err
	}
	return cat, nil
}
