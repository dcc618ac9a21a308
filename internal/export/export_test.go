package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/csit-dept/coursetable/internal/catalog"
	"github.com/csit-dept/coursetable/internal/solver"
)

func exportFixture() (*solver.Timetable, *catalog.Catalog) {
	cat := catalog.New(
		[]catalog.Course{
			{ID: "CS101", Name: "Programming", Credits: 3, Kind: catalog.Lecture},
			{ID: "PHY113", Name: "Physics Lab", Credits: 1, Kind: catalog.Lab},
		},
		[]catalog.Instructor{
			{ID: "P1", Name: "Ada Lovelace", QualifiedCourses: []string{"CS101", "PHY113"}},
		},
		[]catalog.Room{
			{ID: "R1", Kind: catalog.Classroom, Capacity: 40},
			{ID: "R2", Kind: catalog.LabRoom, Capacity: 24},
		},
		[]catalog.Section{
			{ID: "S1", StudentCount: 30, Courses: []string{"CS101", "PHY113"}},
		},
		[]catalog.TimeSlot{
			{ID: "TS1", Day: "Monday", Start: 8 * 60, End: 8*60 + 45},
			{ID: "TS2", Day: "Monday", Start: 8*60 + 45, End: 9*60 + 30},
		},
	)

	tt := solver.NewTimetable()
	// Assign out of sorted order so dataset ordering is exercised.
	tt.Assign(
		solver.Variable{SectionID: "S1", CourseID: "PHY113"},
		solver.Candidate{SlotID: "TS2", RoomID: "R2", InstructorID: "P1"},
	)
	tt.Assign(
		solver.Variable{SectionID: "S1", CourseID: "CS101"},
		solver.Candidate{SlotID: "TS1", RoomID: "R1", InstructorID: "P1"},
	)
	return tt, cat
}

func TestTimetableDataset(t *testing.T) {
	// Arrange
	tt, cat := exportFixture()

	// Act
	data := TimetableDataset(tt, cat)

	// Assert
	assert.Equal(t, timetableHeaders, data.Headers)
	require.Len(t, data.Rows, 2)

	// Sorted by day and start time, not assignment order.
	assert.Equal(t, "CS101", data.Rows[0]["Course"])
	assert.Equal(t, "PHY113", data.Rows[1]["Course"])

	first := data.Rows[0]
	assert.Equal(t, "S1", first["Section"])
	assert.Equal(t, "Monday", first["Day"])
	assert.Equal(t, "08:00", first["StartTime"])
	assert.Equal(t, "08:45", first["EndTime"])
	assert.Equal(t, "45 minutes", first["Duration"])
	assert.Equal(t, "R1", first["Room"])
	assert.Equal(t, "Classroom", first["RoomType"])
	assert.Equal(t, "Ada Lovelace", first["Instructor"])
	assert.Equal(t, "P1", first["InstructorID"])

	assert.Equal(t, "Lab", data.Rows[1]["RoomType"])
}

func TestRenderCSV(t *testing.T) {
	tt, cat := exportFixture()
	data := TimetableDataset(tt, cat)

	out, err := RenderCSV(data)

	require.NoError(t, err)
	expected := "Section,Course,Day,StartTime,EndTime,Duration,Room,RoomType,Instructor,InstructorID\n" +
		"S1,CS101,Monday,08:00,08:45,45 minutes,R1,Classroom,Ada Lovelace,P1\n" +
		"S1,PHY113,Monday,08:45,09:30,45 minutes,R2,Lab,Ada Lovelace,P1\n"
	assert.Equal(t, expected, string(out))
}

func TestRenderCSVRequiresHeaders(t *testing.T) {
	_, err := RenderCSV(Dataset{})
	assert.Error(t, err)
}

func TestRenderPDF(t *testing.T) {
	tt, cat := exportFixture()
	data := TimetableDataset(tt, cat)

	out, err := RenderPDF(data, "Semester Timetable")

	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestToSQLite(t *testing.T) {
	// Arrange
	tt, cat := exportFixture()
	path := filepath.Join(t.TempDir(), "timetable.db")

	// Act
	require.NoError(t, ToSQLite(path, tt, cat))

	// Assert
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)

	var rows []AssignmentRow
	require.NoError(t, db.Order("course_id").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, "CS101", rows[0].CourseID)
	assert.Equal(t, "08:00", rows[0].StartTime)
	assert.Equal(t, "Ada Lovelace", rows[0].InstructorName)
	assert.Equal(t, "Lab", rows[1].RoomType)
}

func TestToSQLiteReplacesPreviousExport(t *testing.T) {
	// Arrange: export twice into the same file.
	tt, cat := exportFixture()
	path := filepath.Join(t.TempDir(), "timetable.db")
	require.NoError(t, ToSQLite(path, tt, cat))

	// Act
	require.NoError(t, ToSQLite(path, tt, cat))

	// Assert: rerun replaced the rows instead of duplicating them.
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&AssignmentRow{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
