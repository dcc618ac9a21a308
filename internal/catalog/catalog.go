// Package catalog holds the read-only reference data a timetabling run
// operates on: courses, instructors, rooms, sections and time slots. A
// Catalog is built once by a loader and never mutated by the solver.
package catalog

import (
	"fmt"
	"slices"
)

type CourseKind string

const (
	Lecture CourseKind = "Lecture"
	Lab     CourseKind = "Lab"
)

type RoomKind string

const (
	Classroom RoomKind = "Classroom"
	LabRoom   RoomKind = "Lab"
)

// RoomKindFor maps a course kind to the room kind that can host it.
func RoomKindFor(kind CourseKind) RoomKind {
	if kind == Lab {
		return LabRoom
	}
	return Classroom
}

type Course struct {
	ID      string
	Name    string
	Credits int
	Kind    CourseKind
}

type Instructor struct {
	ID   string
	Name string
	// QualifiedCourses lists the course ids the instructor may teach.
	QualifiedCourses []string
	// UnavailableDays removes every slot on the named weekdays.
	UnavailableDays []string
	// UnavailableSlots removes individual slot ids.
	UnavailableSlots []string
}

// Qualified reports whether the instructor may teach the course.
func (i Instructor) Qualified(courseID string) bool {
	return slices.Contains(i.QualifiedCourses, courseID)
}

// Available reports whether the instructor can be scheduled into the slot.
func (i Instructor) Available(slot TimeSlot) bool {
	return !slices.Contains(i.UnavailableDays, slot.Day) &&
		!slices.Contains(i.UnavailableSlots, slot.ID)
}

type Room struct {
	ID       string
	Kind     RoomKind
	Capacity int
}

type Section struct {
	ID           string
	StudentCount int
	// Courses is the ordered list of required course ids.
	Courses []string
}

// TimeSlot start and end are minutes from midnight, so slots within a day
// are totally ordered by Start.
type TimeSlot struct {
	ID    string
	Day   string
	Start int
	End   int
}

// Window formats the slot as "HH:MM-HH:MM".
func (t TimeSlot) Window() string {
	return fmt.Sprintf("%s-%s", FormatClock(t.Start), FormatClock(t.End))
}

// Catalog bundles the five entity collections with id lookups. Collections
// keep their input order; iteration over them is deterministic.
type Catalog struct {
	courses     []Course
	instructors []Instructor
	rooms       []Room
	sections    []Section
	slots       []TimeSlot

	courseByID     map[string]Course
	instructorByID map[string]Instructor
	roomByID       map[string]Room
	sectionByID    map[string]Section
	slotByID       map[string]TimeSlot
}

func New(courses []Course, instructors []Instructor, rooms []Room, sections []Section, slots []TimeSlot) *Catalog {
	cat := &Catalog{
		courses:        courses,
		instructors:    instructors,
		rooms:          rooms,
		sections:       sections,
		slots:          slots,
		courseByID:     make(map[string]Course, len(courses)),
		instructorByID: make(map[string]Instructor, len(instructors)),
		roomByID:       make(map[string]Room, len(rooms)),
		sectionByID:    make(map[string]Section, len(sections)),
		slotByID:       make(map[string]TimeSlot, len(slots)),
	}
	for _, course := range courses {
		cat.courseByID[course.ID] = course
	}
	for _, instructor := range instructors {
		cat.instructorByID[instructor.ID] = instructor
	}
	for _, room := range rooms {
		cat.roomByID[room.ID] = room
	}
	for _, section := range sections {
		cat.sectionByID[section.ID] = section
	}
	for _, slot := range slots {
		cat.slotByID[slot.ID] = slot
	}
	return cat
}

func (c *Catalog) Courses() []Course         { return c.courses }
func (c *Catalog) Instructors() []Instructor { return c.instructors }
func (c *Catalog) Rooms() []Room             { return c.rooms }
func (c *Catalog) Sections() []Section       { return c.sections }
func (c *Catalog) TimeSlots() []TimeSlot     { return c.slots }

func (c *Catalog) Course(id string) (Course, bool) {
	course, ok := c.courseByID[id]
	return course, ok
}

func (c *Catalog) Instructor(id string) (Instructor, bool) {
	instructor, ok := c.instructorByID[id]
	return instructor, ok
}

func (c *Catalog) Room(id string) (Room, bool) {
	room, ok := c.roomByID[id]
	return room, ok
}

func (c *Catalog) Section(id string) (Section, bool) {
	section, ok := c.sectionByID[id]
	return section, ok
}

func (c *Catalog) TimeSlot(id string) (TimeSlot, bool) {
	slot, ok := c.slotByID[id]
	return slot, ok
}
