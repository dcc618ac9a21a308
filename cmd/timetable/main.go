package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/csit-dept/coursetable/internal/catalog"
	"github.com/csit-dept/coursetable/internal/config"
	"github.com/csit-dept/coursetable/internal/export"
	"github.com/csit-dept/coursetable/internal/loader"
	"github.com/csit-dept/coursetable/internal/logging"
	"github.com/csit-dept/coursetable/internal/solver"
)

func main() {
	inputPtr := flag.String("input", "", "Path to the catalog input: a directory of CSV files or a single JSON file")
	configPtr := flag.String("config", "", "Path to a YAML config file; defaults to ./coursetable.yaml when present")
	csvPtr := flag.String("out", "", "Path to write the generated timetable as CSV")
	dbPtr := flag.String("db", "", "Path to write the generated timetable into a SQLite database")
	pdfPtr := flag.String("pdf", "", "Path to write the generated timetable as PDF")
	flag.Parse()

	if *inputPtr == "" {
		log.Fatal("an input catalog must be specified")
	}

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	solverCfg, err := cfg.SolverConfig()
	if err != nil {
		log.Fatalf("invalid solver configuration: %v", err)
	}

	cat, err := loadCatalog(*inputPtr)
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}
	logger.Info("catalog loaded",
		zap.Int("courses", len(cat.Courses())),
		zap.Int("instructors", len(cat.Instructors())),
		zap.Int("rooms", len(cat.Rooms())),
		zap.Int("sections", len(cat.Sections())),
		zap.Int("timeSlots", len(cat.TimeSlots())),
	)

	domains, err := solver.BuildDomains(cat, solverCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "catalog is infeasible:")
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(os.Stderr, "  %s\n", line)
		}
		os.Exit(2)
	}

	variables := solver.Variables(cat)
	warnUnmatchable(logger, variables, domains)

	result, err := solver.New(cat, solverCfg, logger).Solve()
	if err != nil {
		log.Fatalf("an error occurred during the search: %v", err)
	}
	report := solver.Evaluate(result.Timetable, result.Variables, cat, solverCfg, result.Elapsed)

	printTimetable(result.Timetable, cat)
	printReport(result, report)

	if err := writeExports(result.Timetable, report, cat, *csvPtr, *dbPtr, *pdfPtr); err != nil {
		log.Fatalf("cannot export timetable: %v", err)
	}

	switch result.Outcome {
	case solver.OutcomeExhausted:
		os.Exit(20)
	case solver.OutcomeBudgetExceeded:
		os.Exit(21)
	}
}

func loadCatalog(input string) (*catalog.Catalog, error) {
	if strings.HasSuffix(input, ".json") {
		return loader.FromJSON(input)
	}
	return loader.FromCSVDir(input)
}

func warnUnmatchable(logger *zap.Logger, variables []solver.Variable, domains map[solver.Variable][]solver.Candidate) {
	if ok, err := solver.SlotRoomMatchable(variables, domains); err == nil && !ok {
		logger.Warn("no complete timetable exists: fewer distinct (slot, room) pairs than variables")
	}
	if ok, err := solver.SlotInstructorMatchable(variables, domains); err == nil && !ok {
		logger.Warn("no complete timetable exists: fewer distinct (slot, instructor) pairs than variables")
	}
}

func printTimetable(tt *solver.Timetable, cat *catalog.Catalog) {
	assignments := tt.Assignments()
	if len(assignments) == 0 {
		fmt.Println("No assignments were placed.")
		return
	}

	bySection := lo.GroupBy(assignments, func(a solver.Assignment) string { return a.Variable.SectionID })
	sectionIDs := lo.Keys(bySection)
	sort.Strings(sectionIDs)

	for _, sectionID := range sectionIDs {
		fmt.Printf("\nSection: %s\n", sectionID)
		fmt.Println(strings.Repeat("-", 80))
		fmt.Printf("%-10v %-15v %-12v %-8v %-24v\n", "Day", "Time", "Course", "Room", "Instructor")
		fmt.Println(strings.Repeat("-", 80))

		rows := bySection[sectionID]
		sort.SliceStable(rows, func(i, j int) bool {
			slotA, _ := cat.TimeSlot(rows[i].Candidate.SlotID)
			slotB, _ := cat.TimeSlot(rows[j].Candidate.SlotID)
			if slotA.Day != slotB.Day {
				return catalog.DayIndex(slotA.Day) < catalog.DayIndex(slotB.Day)
			}
			return slotA.Start < slotB.Start
		})

		for _, assignment := range rows {
			slot, _ := cat.TimeSlot(assignment.Candidate.SlotID)
			instructor, _ := cat.Instructor(assignment.Candidate.InstructorID)
			name := instructor.Name
			if len(name) > 24 {
				name = name[:21] + "..."
			}
			fmt.Printf("%-10v %-15v %-12v %-8v %-24v\n",
				slot.Day, slot.Window(), assignment.Variable.CourseID, assignment.Candidate.RoomID, name)
		}
	}
}

func printReport(result *solver.Result, report solver.Report) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Println("PERFORMANCE EVALUATION REPORT")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Outcome: %v\n", result.Outcome)
	fmt.Printf("Total Variables: %v\n", report.TotalVariables)
	fmt.Printf("Total Assignments: %v\n", report.Assigned)
	fmt.Printf("Success Rate: %.1f%%\n", report.SuccessRate*100)
	fmt.Printf("Generation Time: %v\n", report.Elapsed)
	fmt.Printf("Search Steps: %v (backtracks: %v)\n", result.Steps, result.Backtracks)
	fmt.Printf("Hard Constraint Violations: %v\n", report.HardViolations)
	fmt.Printf("Soft Constraint Violations: %v\n", report.SoftViolations)
}

func writeExports(tt *solver.Timetable, report solver.Report, cat *catalog.Catalog, csvPath, dbPath, pdfPath string) error {
	if csvPath == "" && dbPath == "" && pdfPath == "" {
		return nil
	}
	data := export.TimetableDataset(tt, cat)

	if csvPath != "" {
		bytes, err := export.RenderCSV(data)
		if err != nil {
			return err
		}
		if err := os.WriteFile(csvPath, bytes, 0o644); err != nil {
			return err
		}
	}
	if dbPath != "" {
		if err := export.ToSQLite(dbPath, tt, cat); err != nil {
			return err
		}
	}
	if pdfPath != "" {
		title := fmt.Sprintf("Generated timetable (%.0f%% assigned)", report.SuccessRate*100)
		bytes, err := export.RenderPDF(data, title)
		if err != nil {
			return err
		}
		if err := os.WriteFile(pdfPath, bytes, 0o644); err != nil {
			return err
		}
	}
	return nil
}
