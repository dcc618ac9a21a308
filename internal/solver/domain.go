package solver

import (
	"errors"

	"github.com/samber/lo"

	"github.com/csit-dept/coursetable/internal/catalog"
)

// BuildDomains enumerates every variable's candidate (slot, room,
// instructor) triples: rooms must match the course kind and hold the
// section, instructors must be qualified for the course, slots must fall
// inside the configured scheduling window and the instructor's
// availability. Candidate order is deterministic (slots, then rooms, then
// instructors, each in catalog order).
//
// Variables with an empty domain are collected into a joined error of
// *InfeasibleVariableError values; callers inspect them with errors.As.
func BuildDomains(cat *catalog.Catalog, cfg Config) (map[Variable][]Candidate, error) {
	cfg = cfg.withDefaults()

	domains := make(map[Variable][]Candidate)
	var infeasible []error

	for _, variable := range Variables(cat) {
		course, ok := cat.Course(variable.CourseID)
		if !ok {
			infeasible = append(infeasible, &InfeasibleVariableError{Variable: variable, Reason: ReasonUnknownCourse})
			continue
		}
		section, _ := cat.Section(variable.SectionID)

		rooms := lo.Filter(cat.Rooms(), func(room catalog.Room, _ int) bool {
			return room.Kind == catalog.RoomKindFor(course.Kind) && room.Capacity >= section.StudentCount
		})
		instructors := lo.Filter(cat.Instructors(), func(instructor catalog.Instructor, _ int) bool {
			return instructor.Qualified(course.ID)
		})
		slots := lo.Filter(cat.TimeSlots(), func(slot catalog.TimeSlot, _ int) bool {
			return insideWindow(slot, cfg)
		})

		if len(instructors) == 0 {
			infeasible = append(infeasible, &InfeasibleVariableError{Variable: variable, Reason: ReasonNoQualifiedInstructor})
			continue
		}
		if len(rooms) == 0 {
			infeasible = append(infeasible, &InfeasibleVariableError{Variable: variable, Reason: ReasonNoMatchingRoom})
			continue
		}

		domain := make([]Candidate, 0, len(slots)*len(rooms)*len(instructors))
		for _, slot := range slots {
			for _, room := range rooms {
				for _, instructor := range instructors {
					if instructor.Available(slot) {
						domain = append(domain, Candidate{
							SlotID:       slot.ID,
							RoomID:       room.ID,
							InstructorID: instructor.ID,
						})
					}
				}
			}
		}

		// Rooms and instructors exist, so an empty cross product means no
		// slot survived the window and availability filters.
		if len(domain) == 0 {
			infeasible = append(infeasible, &InfeasibleVariableError{Variable: variable, Reason: ReasonNoEligibleSlot})
			continue
		}

		domains[variable] = domain
	}

	if len(infeasible) > 0 {
		return nil, errors.Join(infeasible...)
	}
	return domains, nil
}

func insideWindow(slot catalog.TimeSlot, cfg Config) bool {
	if cfg.EarliestStart > 0 && slot.Start < cfg.EarliestStart {
		return false
	}
	if cfg.LatestEnd > 0 && slot.End > cfg.LatestEnd {
		return false
	}
	return true
}
