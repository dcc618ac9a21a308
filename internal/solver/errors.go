package solver

import "fmt"

// InfeasibleReason classifies why a variable's domain came out empty.
type InfeasibleReason int

const (
	ReasonUnknownCourse InfeasibleReason = iota
	ReasonNoQualifiedInstructor
	ReasonNoMatchingRoom
	ReasonNoEligibleSlot
)

func (r InfeasibleReason) String() string {
	switch r {
	case ReasonUnknownCourse:
		return "course id not present in catalog"
	case ReasonNoQualifiedInstructor:
		return "no qualified instructor"
	case ReasonNoMatchingRoom:
		return "no room with matching kind and capacity"
	case ReasonNoEligibleSlot:
		return "no eligible time slot"
	default:
		return "unknown"
	}
}

// InfeasibleVariableError reports a (section, course) pair with zero legal
// candidates at domain-build time. It indicates a catalog data problem, not
// a search failure, and is surfaced before search starts.
type InfeasibleVariableError struct {
	Variable Variable
	Reason   InfeasibleReason
}

func (e *InfeasibleVariableError) Error() string {
	return fmt.Sprintf("variable %v is infeasible: %v", e.Variable, e.Reason)
}
