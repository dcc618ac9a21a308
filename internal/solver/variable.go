// Package solver implements the constraint-satisfaction core: domain
// construction per (section, course) variable, MRV backtracking search over
// (time slot, room, instructor) candidates, consistency checking against a
// mutable timetable state, and post-search quality evaluation.
package solver

import (
	"fmt"

	"github.com/csit-dept/coursetable/internal/catalog"
)

// Variable is one (section, course) pair to be scheduled. The full variable
// set is the cartesian expansion of every section's required courses.
type Variable struct {
	SectionID string
	CourseID  string
}

func (v Variable) String() string {
	return fmt.Sprintf("%s/%s", v.SectionID, v.CourseID)
}

// Candidate is one (time slot, room, instructor) choice for a variable.
type Candidate struct {
	SlotID       string
	RoomID       string
	InstructorID string
}

// Assignment binds a variable to a candidate.
type Assignment struct {
	Variable  Variable
	Candidate Candidate
}

// Variables expands the catalog's sections into the variable set, in
// section input order and each section's course order.
func Variables(cat *catalog.Catalog) []Variable {
	variables := make([]Variable, 0)
	for _, section := range cat.Sections() {
		for _, courseID := range section.Courses {
			variables = append(variables, Variable{SectionID: section.ID, CourseID: courseID})
		}
	}
	return variables
}
