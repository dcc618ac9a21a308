package solver

import (
	"fmt"
	"slices"
)

// Dimension selects one of the three occupancy indices.
type Dimension int

const (
	ByInstructor Dimension = iota
	ByRoom
	BySection
)

type occupancy struct {
	id     string
	slotID string
}

// Timetable is the mutable search state: the current assignment set plus
// three occupancy indices for overlap detection. Each index key maps to at
// most one variable; Assign trusts the caller to have vetted consistency
// but panics if an index slot is already taken, since that is a solver bug
// rather than bad input. Not safe for concurrent use; the search is single
// threaded by design.
type Timetable struct {
	order       []Variable
	assignments map[Variable]Candidate

	instructorSlots map[occupancy]Variable
	roomSlots       map[occupancy]Variable
	sectionSlots    map[occupancy]Variable
}

func NewTimetable() *Timetable {
	return &Timetable{
		assignments:     make(map[Variable]Candidate),
		instructorSlots: make(map[occupancy]Variable),
		roomSlots:       make(map[occupancy]Variable),
		sectionSlots:    make(map[occupancy]Variable),
	}
}

// Assign registers the candidate for the variable and updates the indices.
func (t *Timetable) Assign(variable Variable, candidate Candidate) {
	if _, ok := t.assignments[variable]; ok {
		panic(fmt.Sprintf("timetable corrupted: %v assigned twice", variable))
	}
	instructorKey := occupancy{candidate.InstructorID, candidate.SlotID}
	roomKey := occupancy{candidate.RoomID, candidate.SlotID}
	sectionKey := occupancy{variable.SectionID, candidate.SlotID}
	if occupant, ok := t.instructorSlots[instructorKey]; ok {
		panic(fmt.Sprintf("timetable corrupted: instructor %v already occupied by %v", instructorKey.id, occupant))
	}
	if occupant, ok := t.roomSlots[roomKey]; ok {
		panic(fmt.Sprintf("timetable corrupted: room %v already occupied by %v", roomKey.id, occupant))
	}
	if occupant, ok := t.sectionSlots[sectionKey]; ok {
		panic(fmt.Sprintf("timetable corrupted: section %v already occupied by %v", sectionKey.id, occupant))
	}

	t.order = append(t.order, variable)
	t.assignments[variable] = candidate
	t.instructorSlots[instructorKey] = variable
	t.roomSlots[roomKey] = variable
	t.sectionSlots[sectionKey] = variable
}

// Unassign is the exact inverse of Assign: it removes the assignment and
// clears the three index entries it created.
func (t *Timetable) Unassign(variable Variable) {
	candidate, ok := t.assignments[variable]
	if !ok {
		panic(fmt.Sprintf("timetable corrupted: unassign of unassigned %v", variable))
	}
	delete(t.assignments, variable)
	delete(t.instructorSlots, occupancy{candidate.InstructorID, candidate.SlotID})
	delete(t.roomSlots, occupancy{candidate.RoomID, candidate.SlotID})
	delete(t.sectionSlots, occupancy{variable.SectionID, candidate.SlotID})

	index := slices.Index(t.order, variable)
	t.order = slices.Delete(t.order, index, index+1)
}

// Occupant returns the variable occupying (dimension entity, slot), if any.
func (t *Timetable) Occupant(dimension Dimension, id, slotID string) (Variable, bool) {
	var variable Variable
	var ok bool
	switch dimension {
	case ByInstructor:
		variable, ok = t.instructorSlots[occupancy{id, slotID}]
	case ByRoom:
		variable, ok = t.roomSlots[occupancy{id, slotID}]
	case BySection:
		variable, ok = t.sectionSlots[occupancy{id, slotID}]
	}
	return variable, ok
}

// Candidate returns the variable's current assignment, if any.
func (t *Timetable) Candidate(variable Variable) (Candidate, bool) {
	candidate, ok := t.assignments[variable]
	return candidate, ok
}

// Assignments lists the current assignments in assignment order.
func (t *Timetable) Assignments() []Assignment {
	assignments := make([]Assignment, 0, len(t.order))
	for _, variable := range t.order {
		assignments = append(assignments, Assignment{Variable: variable, Candidate: t.assignments[variable]})
	}
	return assignments
}

func (t *Timetable) Len() int {
	return len(t.order)
}
