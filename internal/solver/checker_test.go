package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/csit-dept/coursetable/internal/catalog"
)

func checkerCatalog() *catalog.Catalog {
	return catalog.New(
		[]catalog.Course{
			{ID: "CS101", Kind: catalog.Lecture},
			{ID: "PHY113", Kind: catalog.Lab},
		},
		[]catalog.Instructor{
			{ID: "P1", QualifiedCourses: []string{"CS101"}},
			{ID: "P2", QualifiedCourses: []string{"CS101", "PHY113"}},
		},
		[]catalog.Room{
			{ID: "R1", Kind: catalog.Classroom, Capacity: 40},
			{ID: "R2", Kind: catalog.LabRoom, Capacity: 20},
		},
		[]catalog.Section{
			{ID: "S1", StudentCount: 30, Courses: []string{"CS101"}},
			{ID: "S2", StudentCount: 30, Courses: []string{"CS101"}},
		},
		[]catalog.TimeSlot{
			{ID: "a", Day: "Monday", Start: 9 * 60, End: 9*60 + 45},
			{ID: "b", Day: "Monday", Start: 9*60 + 45, End: 10*60 + 30},
			{ID: "early", Day: "Tuesday", Start: 7 * 60, End: 7*60 + 45},
			{ID: "late", Day: "Tuesday", Start: 18 * 60, End: 18*60 + 45},
		},
	)
}

func TestCheckHardConstraints(t *testing.T) {
	cat := checkerCatalog()
	checker := NewChecker(cat, Config{})
	s1 := Variable{SectionID: "S1", CourseID: "CS101"}
	s2 := Variable{SectionID: "S2", CourseID: "CS101"}

	t.Run("instructor occupied", func(t *testing.T) {
		tt := NewTimetable()
		tt.Assign(s1, Candidate{SlotID: "a", RoomID: "R1", InstructorID: "P1"})
		ok, _ := checker.Check(tt, s2, Candidate{SlotID: "a", RoomID: "R2", InstructorID: "P1"})
		assert.False(t, ok)
	})

	t.Run("room occupied", func(t *testing.T) {
		tt := NewTimetable()
		tt.Assign(s1, Candidate{SlotID: "a", RoomID: "R1", InstructorID: "P1"})
		ok, _ := checker.Check(tt, s2, Candidate{SlotID: "a", RoomID: "R1", InstructorID: "P2"})
		assert.False(t, ok)
	})

	t.Run("section occupied", func(t *testing.T) {
		tt := NewTimetable()
		tt.Assign(s1, Candidate{SlotID: "a", RoomID: "R1", InstructorID: "P1"})
		ok, _ := checker.Check(tt, s1, Candidate{SlotID: "a", RoomID: "R2", InstructorID: "P2"})
		assert.False(t, ok)
	})

	t.Run("unqualified instructor rejected despite stale domain", func(t *testing.T) {
		ok, _ := checker.Check(NewTimetable(), Variable{SectionID: "S1", CourseID: "PHY113"},
			Candidate{SlotID: "a", RoomID: "R2", InstructorID: "P1"})
		assert.False(t, ok)
	})

	t.Run("room kind mismatch", func(t *testing.T) {
		ok, _ := checker.Check(NewTimetable(), s1, Candidate{SlotID: "a", RoomID: "R2", InstructorID: "P1"})
		assert.False(t, ok)
	})

	t.Run("room too small", func(t *testing.T) {
		ok, _ := checker.Check(NewTimetable(), Variable{SectionID: "S1", CourseID: "PHY113"},
			Candidate{SlotID: "a", RoomID: "R2", InstructorID: "P2"})
		assert.False(t, ok)
	})

	t.Run("free resources accepted", func(t *testing.T) {
		tt := NewTimetable()
		tt.Assign(s1, Candidate{SlotID: "a", RoomID: "R1", InstructorID: "P1"})
		ok, _ := checker.Check(tt, s2, Candidate{SlotID: "b", RoomID: "R1", InstructorID: "P1"})
		assert.True(t, ok)
	})
}

func TestCheckSoftPenalties(t *testing.T) {
	cat := checkerCatalog()
	s1 := Variable{SectionID: "S1", CourseID: "CS101"}
	s2 := Variable{SectionID: "S2", CourseID: "CS101"}

	t.Run("early slot penalized", func(t *testing.T) {
		checker := NewChecker(cat, Config{})
		ok, penalty := checker.Check(NewTimetable(), s1, Candidate{SlotID: "early", RoomID: "R1", InstructorID: "P1"})
		assert.True(t, ok)
		assert.Positive(t, penalty)
	})

	t.Run("late slot penalized", func(t *testing.T) {
		checker := NewChecker(cat, Config{})
		ok, penalty := checker.Check(NewTimetable(), s1, Candidate{SlotID: "late", RoomID: "R1", InstructorID: "P1"})
		assert.True(t, ok)
		assert.Positive(t, penalty)
	})

	t.Run("midday slot carries no penalty", func(t *testing.T) {
		checker := NewChecker(cat, Config{})
		ok, penalty := checker.Check(NewTimetable(), s1, Candidate{SlotID: "a", RoomID: "R1", InstructorID: "P1"})
		assert.True(t, ok)
		assert.Zero(t, penalty)
	})

	t.Run("daily overload penalized", func(t *testing.T) {
		checker := NewChecker(cat, Config{MaxDailyLoad: 1})
		tt := NewTimetable()
		tt.Assign(s1, Candidate{SlotID: "a", RoomID: "R1", InstructorID: "P1"})
		// Second same-day class for both the section and the instructor.
		ok, penalty := checker.Check(tt, s1, Candidate{SlotID: "b", RoomID: "R1", InstructorID: "P1"})
		assert.True(t, ok)
		assert.GreaterOrEqual(t, penalty, 2)
	})

	t.Run("back to back penalized when enabled", func(t *testing.T) {
		enabled := NewChecker(cat, Config{PenalizeBackToBack: true})
		disabled := NewChecker(cat, Config{})
		tt := NewTimetable()
		tt.Assign(s1, Candidate{SlotID: "a", RoomID: "R1", InstructorID: "P1"})

		// Slot b abuts slot a for the same instructor.
		_, with := enabled.Check(tt, s2, Candidate{SlotID: "b", RoomID: "R1", InstructorID: "P1"})
		_, without := disabled.Check(tt, s2, Candidate{SlotID: "b", RoomID: "R1", InstructorID: "P1"})
		assert.Greater(t, with, without)
	})
}
