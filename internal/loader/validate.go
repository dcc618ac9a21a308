package loader

import (
	"errors"
	"fmt"

	"github.com/csit-dept/coursetable/internal/catalog"
)

// Validate checks referential integrity across the catalog: every course id
// referenced by a section or an instructor qualification must exist, and
// every slot id in an instructor's exclusions must exist. The solver core
// assumes a validated catalog.
func Validate(cat *catalog.Catalog) error {
	var problems []error

	for _, section := range cat.Sections() {
		for _, courseID := range section.Courses {
			if _, ok := cat.Course(courseID); !ok {
				problems = append(problems, fmt.Errorf("section %s requires unknown course %s", section.ID, courseID))
			}
		}
	}
	for _, instructor := range cat.Instructors() {
		for _, courseID := range instructor.QualifiedCourses {
			if _, ok := cat.Course(courseID); !ok {
				problems = append(problems, fmt.Errorf("instructor %s qualified for unknown course %s", instructor.ID, courseID))
			}
		}
		for _, slotID := range instructor.UnavailableSlots {
			if _, ok := cat.TimeSlot(slotID); !ok {
				problems = append(problems, fmt.Errorf("instructor %s excludes unknown time slot %s", instructor.ID, slotID))
			}
		}
	}

	return errors.Join(problems...)
}
