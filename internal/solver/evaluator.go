package solver

import (
	"time"

	"github.com/samber/lo"

	"github.com/csit-dept/coursetable/internal/catalog"
)

// Report counts the violations of a finished (or partial) timetable.
// Computed once from the assignment set, never mutated afterwards.
type Report struct {
	HardViolations int
	SoftViolations int
	Assigned       int
	TotalVariables int
	SuccessRate    float64
	Elapsed        time.Duration
}

// Evaluate re-scans the timetable independently of the search's running
// totals: hard violations are residual double bookings per occupancy
// dimension (zero on any solved outcome), soft violations are recomputed
// from scratch as a cross-check of the checker's incremental sums.
func Evaluate(tt *Timetable, variables []Variable, cat *catalog.Catalog, cfg Config, elapsed time.Duration) Report {
	cfg = cfg.withDefaults()
	assignments := tt.Assignments()

	report := Report{
		Assigned:       len(assignments),
		TotalVariables: len(variables),
		Elapsed:        elapsed,
	}
	if len(variables) > 0 {
		report.SuccessRate = float64(len(assignments)) / float64(len(variables))
	}

	report.HardViolations = countDoubleBookings(assignments)
	report.SoftViolations = countSoftViolations(assignments, cat, cfg)
	return report
}

func countDoubleBookings(assignments []Assignment) int {
	keys := func(extract func(Assignment) string) []occupancy {
		return lo.Map(assignments, func(a Assignment, _ int) occupancy {
			return occupancy{extract(a), a.Candidate.SlotID}
		})
	}

	violations := 0
	for _, dimension := range [][]occupancy{
		keys(func(a Assignment) string { return a.Candidate.InstructorID }),
		keys(func(a Assignment) string { return a.Candidate.RoomID }),
		keys(func(a Assignment) string { return a.Variable.SectionID }),
	} {
		for _, count := range lo.CountValues(dimension) {
			violations += count - 1
		}
	}
	return violations
}

func countSoftViolations(assignments []Assignment, cat *catalog.Catalog, cfg Config) int {
	penalty := 0

	sectionDays := make(map[[2]string]int)
	instructorDays := make(map[[2]string]int)
	for _, assignment := range assignments {
		slot, ok := cat.TimeSlot(assignment.Candidate.SlotID)
		if !ok {
			continue
		}
		if slot.Start < cfg.EarlyPenaltyBefore {
			penalty += cfg.EarlyWeight
		}
		if slot.End > cfg.LatePenaltyAfter {
			penalty += cfg.LateWeight
		}
		sectionDays[[2]string{assignment.Variable.SectionID, slot.Day}]++
		instructorDays[[2]string{assignment.Candidate.InstructorID, slot.Day}]++
	}

	for _, load := range sectionDays {
		if load > cfg.MaxDailyLoad {
			penalty += (load - cfg.MaxDailyLoad) * cfg.OverloadWeight
		}
	}
	for _, load := range instructorDays {
		if load > cfg.MaxDailyLoad {
			penalty += (load - cfg.MaxDailyLoad) * cfg.OverloadWeight
		}
	}

	if cfg.PenalizeBackToBack {
		penalty += countBackToBack(assignments, cat, func(a Assignment) string { return a.Variable.SectionID }) * cfg.BackToBackWeight
		penalty += countBackToBack(assignments, cat, func(a Assignment) string { return a.Candidate.InstructorID }) * cfg.BackToBackWeight
	}

	return penalty
}

// countBackToBack counts same-day abutting slot pairs per entity, each pair
// once, matching the incremental charge taken when the second of the pair
// was assigned.
func countBackToBack(assignments []Assignment, cat *catalog.Catalog, entity func(Assignment) string) int {
	pairs := 0
	for i := 0; i < len(assignments)-1; i++ {
		slotA, ok := cat.TimeSlot(assignments[i].Candidate.SlotID)
		if !ok {
			continue
		}
		for j := i + 1; j < len(assignments); j++ {
			if entity(assignments[i]) != entity(assignments[j]) {
				continue
			}
			slotB, ok := cat.TimeSlot(assignments[j].Candidate.SlotID)
			if !ok || slotA.Day != slotB.Day {
				continue
			}
			if adjacent(slotA, slotB) {
				pairs++
			}
		}
	}
	return pairs
}
