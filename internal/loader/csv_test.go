package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csit-dept/coursetable/internal/catalog"
)

func writeCatalogFiles(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"Courses.csv": "CourseID,CourseName,Credits,Type\n" +
			"CS101,Programming,3,Lecture\n" +
			"PHY113,Physics Lab,1,Lab\n",
		"Instructors.csv": "InstructorID,Name,PreferredSlots,QualifiedCourses\n" +
			"P1,Ada Lovelace,Not on Sunday; Not on Friday,\"CS101, PHY113\"\n" +
			"P2,Alan Turing,Anytime,CS101\n",
		"Rooms.csv": "RoomID,Type,Capacity\n" +
			"R1,Classroom,40\n" +
			"R2,Lab,24\n",
		"Sections.csv": "SectionID,StudentCount,Courses\n" +
			"S1,30,\"CS101, PHY113\"\n",
		"TimeSlots.csv": "TimeSlotID,Day,StartTime,EndTime\n" +
			"TS1,Monday,08:00,08:45\n" +
			"TS2,Monday,8:45 AM,9:30 AM\n" +
			"TS3,Tuesday,1:00 PM,1:45 PM\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestFromCSVDir(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeCatalogFiles(t, dir)

	// Act
	cat, err := FromCSVDir(dir)

	// Assert
	require.NoError(t, err)

	course, ok := cat.Course("PHY113")
	require.True(t, ok)
	assert.Equal(t, catalog.Lab, course.Kind)

	instructor, ok := cat.Instructor("P1")
	require.True(t, ok)
	assert.Equal(t, []string{"CS101", "PHY113"}, instructor.QualifiedCourses)
	assert.Equal(t, []string{"Sunday", "Friday"}, instructor.UnavailableDays)

	instructor, ok = cat.Instructor("P2")
	require.True(t, ok)
	assert.Empty(t, instructor.UnavailableDays)

	room, ok := cat.Room("R2")
	require.True(t, ok)
	assert.Equal(t, catalog.LabRoom, room.Kind)
	assert.Equal(t, 24, room.Capacity)

	section, ok := cat.Section("S1")
	require.True(t, ok)
	assert.Equal(t, []string{"CS101", "PHY113"}, section.Courses)

	slot, ok := cat.TimeSlot("TS2")
	require.True(t, ok)
	assert.Equal(t, 8*60+45, slot.Start)
	assert.Equal(t, 9*60+30, slot.End)

	slot, ok = cat.TimeSlot("TS3")
	require.True(t, ok)
	assert.Equal(t, 13*60, slot.Start)
}

func TestFromCSVDirSingularInstructorFile(t *testing.T) {
	// Arrange: dataset shipping Instructor.csv instead of Instructors.csv.
	dir := t.TempDir()
	writeCatalogFiles(t, dir)
	require.NoError(t, os.Rename(
		filepath.Join(dir, "Instructors.csv"),
		filepath.Join(dir, "Instructor.csv"),
	))

	// Act
	cat, err := FromCSVDir(dir)

	// Assert
	require.NoError(t, err)
	_, ok := cat.Instructor("P1")
	assert.True(t, ok)
}

func TestFromCSVDirRejectsDanglingReferences(t *testing.T) {
	// Arrange: a section requiring a course that no file defines.
	dir := t.TempDir()
	writeCatalogFiles(t, dir)
	sections := "SectionID,StudentCount,Courses\nS1,30,GHOST\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Sections.csv"), []byte(sections), 0o644))

	// Act
	_, err := FromCSVDir(dir)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown course GHOST")
}

func TestFromCSVDirMissingFile(t *testing.T) {
	_, err := FromCSVDir(t.TempDir())
	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	for value, expected := range map[string]int{
		"08:00":    8 * 60,
		"8:45 AM":  8*60 + 45,
		"12:30 PM": 12*60 + 30,
		"12:05 AM": 5,
		"6:15 pm":  18*60 + 15,
	} {
		minutes, err := parseTime(value)
		assert.NoError(t, err, value)
		assert.Equal(t, expected, minutes, value)
	}

	_, err := parseTime("whenever")
	assert.Error(t, err)
}
