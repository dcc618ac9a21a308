package solver

import (
	"github.com/csit-dept/coursetable/internal/catalog"
)

// Checker decides hard-constraint compatibility of a candidate against the
// live timetable state and scores its soft-constraint penalty. It holds
// only read-only data, so it is a pure function of (state, variable,
// candidate) and can be exercised in isolation from the search.
type Checker struct {
	cat *catalog.Catalog
	cfg Config
}

func NewChecker(cat *catalog.Catalog, cfg Config) *Checker {
	return &Checker{cat: cat, cfg: cfg.withDefaults()}
}

// Check returns whether the candidate is hard-consistent with the current
// timetable, and its soft penalty. Any hard failure rejects the candidate
// outright; the penalty never vetoes placement, it only informs value
// ordering and quality scoring.
func (c *Checker) Check(tt *Timetable, variable Variable, candidate Candidate) (bool, int) {
	if _, busy := tt.Occupant(ByInstructor, candidate.InstructorID, candidate.SlotID); busy {
		return false, 0
	}
	if _, busy := tt.Occupant(ByRoom, candidate.RoomID, candidate.SlotID); busy {
		return false, 0
	}
	if _, busy := tt.Occupant(BySection, variable.SectionID, candidate.SlotID); busy {
		return false, 0
	}

	// Qualification and room checks repeat the domain filters on purpose:
	// they defend against stale domains handed in by a caller.
	course, ok := c.cat.Course(variable.CourseID)
	if !ok {
		return false, 0
	}
	instructor, ok := c.cat.Instructor(candidate.InstructorID)
	if !ok || !instructor.Qualified(course.ID) {
		return false, 0
	}
	room, ok := c.cat.Room(candidate.RoomID)
	if !ok || room.Kind != catalog.RoomKindFor(course.Kind) {
		return false, 0
	}
	section, ok := c.cat.Section(variable.SectionID)
	if !ok || room.Capacity < section.StudentCount {
		return false, 0
	}

	return true, c.Penalty(tt, variable, candidate)
}

// Penalty sums the enabled soft-constraint weights for placing the
// candidate given the current timetable.
func (c *Checker) Penalty(tt *Timetable, variable Variable, candidate Candidate) int {
	slot, ok := c.cat.TimeSlot(candidate.SlotID)
	if !ok {
		return 0
	}

	penalty := 0
	if slot.Start < c.cfg.EarlyPenaltyBefore {
		penalty += c.cfg.EarlyWeight
	}
	if slot.End > c.cfg.LatePenaltyAfter {
		penalty += c.cfg.LateWeight
	}

	sectionLoad, instructorLoad := 0, 0
	for _, assignment := range tt.Assignments() {
		assigned, ok := c.cat.TimeSlot(assignment.Candidate.SlotID)
		if !ok || assigned.Day != slot.Day {
			continue
		}
		if assignment.Variable.SectionID == variable.SectionID {
			sectionLoad++
			if c.cfg.PenalizeBackToBack && adjacent(slot, assigned) {
				penalty += c.cfg.BackToBackWeight
			}
		}
		if assignment.Candidate.InstructorID == candidate.InstructorID {
			instructorLoad++
			if c.cfg.PenalizeBackToBack && adjacent(slot, assigned) {
				penalty += c.cfg.BackToBackWeight
			}
		}
	}
	if sectionLoad+1 > c.cfg.MaxDailyLoad {
		penalty += c.cfg.OverloadWeight
	}
	if instructorLoad+1 > c.cfg.MaxDailyLoad {
		penalty += c.cfg.OverloadWeight
	}

	return penalty
}

// adjacent reports whether two same-day slots abut back to back.
func adjacent(a, b catalog.TimeSlot) bool {
	return a.End == b.Start || b.End == a.Start
}
