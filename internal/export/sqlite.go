package export

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/csit-dept/coursetable/internal/catalog"
	"github.com/csit-dept/coursetable/internal/solver"
)

// AssignmentRow is the timetable_assignments table schema.
type AssignmentRow struct {
	SectionID      string `gorm:"primaryKey;column:section_id"`
	CourseID       string `gorm:"primaryKey;column:course_id"`
	Day            string `gorm:"column:day"`
	StartTime      string `gorm:"column:start_time"`
	EndTime        string `gorm:"column:end_time"`
	RoomID         string `gorm:"column:room_id"`
	RoomType       string `gorm:"column:room_type"`
	InstructorID   string `gorm:"column:instructor_id"`
	InstructorName string `gorm:"column:instructor_name"`
}

func (AssignmentRow) TableName() string {
	return "timetable_assignments"
}

// ToSQLite writes the assignment set into a SQLite database at path,
// replacing any previous export.
func ToSQLite(path string, tt *solver.Timetable, cat *catalog.Catalog) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&AssignmentRow{}); err != nil {
		return fmt.Errorf("migrate timetable_assignments: %w", err)
	}
	if err := db.Exec("DELETE FROM timetable_assignments").Error; err != nil {
		return fmt.Errorf("clear timetable_assignments: %w", err)
	}

	rows := assignmentRows(tt, cat)
	if len(rows) == 0 {
		return nil
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("insert timetable_assignments: %w", err)
	}
	return nil
}

func assignmentRows(tt *solver.Timetable, cat *catalog.Catalog) []AssignmentRow {
	assignments := tt.Assignments()
	rows := make([]AssignmentRow, 0, len(assignments))
	for _, assignment := range assignments {
		slot, _ := cat.TimeSlot(assignment.Candidate.SlotID)
		room, _ := cat.Room(assignment.Candidate.RoomID)
		instructor, _ := cat.Instructor(assignment.Candidate.InstructorID)

		rows = append(rows, AssignmentRow{
			SectionID:      assignment.Variable.SectionID,
			CourseID:       assignment.Variable.CourseID,
			Day:            slot.Day,
			StartTime:      catalog.FormatClock(slot.Start),
			EndTime:        catalog.FormatClock(slot.End),
			RoomID:         room.ID,
			RoomType:       string(room.Kind),
			InstructorID:   instructor.ID,
			InstructorName: instructor.Name,
		})
	}
	return rows
}
