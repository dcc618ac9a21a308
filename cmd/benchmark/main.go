// Benchmark harness: solves a series of synthetic catalogs of growing size
// and prints one timing row per instance. Instances are generated from a
// fixed seed so runs are comparable.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/csit-dept/coursetable/internal/catalog"
	"github.com/csit-dept/coursetable/internal/solver"
)

const seed = 20250901

type instance struct {
	name        string
	sections    int
	courses     int
	instructors int
	rooms       int
}

var instances = []instance{
	{"tiny", 2, 4, 3, 2},
	{"small", 4, 8, 6, 4},
	{"medium", 8, 12, 10, 6},
	{"large", 16, 20, 16, 10},
}

func main() {
	timeoutPtr := flag.Duration("timeout", 10*time.Second, "Per-instance search timeout")
	flag.Parse()

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "instance\tvariables\toutcome\tassigned\tsteps\tbacktracks\telapsed")

	for _, inst := range instances {
		cat := generate(inst)
		cfg := solver.Config{Timeout: *timeoutPtr}

		result, err := solver.New(cat, cfg, nil).Solve()
		if err != nil {
			fmt.Fprintf(writer, "%s\t-\tinfeasible\t-\t-\t-\t-\n", inst.name)
			continue
		}
		fmt.Fprintf(writer, "%s\t%d\t%v\t%d\t%d\t%d\t%v\n",
			inst.name,
			len(result.Variables),
			result.Outcome,
			result.Timetable.Len(),
			result.Steps,
			result.Backtracks,
			result.Elapsed.Round(time.Microsecond),
		)
	}
	writer.Flush()
}

// generate builds a solvable-looking catalog: every course has at least two
// qualified instructors, rooms are sized for the largest section, and five
// weekdays carry eight slots each.
func generate(inst instance) *catalog.Catalog {
	rng := rand.New(rand.NewSource(seed))

	courses := make([]catalog.Course, inst.courses)
	for i := range courses {
		kind := catalog.Lecture
		if i%4 == 3 {
			kind = catalog.Lab
		}
		courses[i] = catalog.Course{
			ID:      fmt.Sprintf("C%03d", i),
			Name:    fmt.Sprintf("Course %d", i),
			Credits: 3,
			Kind:    kind,
		}
	}

	instructors := make([]catalog.Instructor, inst.instructors)
	for i := range instructors {
		qualified := make([]string, 0)
		for j, course := range courses {
			if j%inst.instructors == i || (j+1)%inst.instructors == i {
				qualified = append(qualified, course.ID)
			}
		}
		instructors[i] = catalog.Instructor{
			ID:               fmt.Sprintf("P%03d", i),
			Name:             fmt.Sprintf("Instructor %d", i),
			QualifiedCourses: qualified,
		}
	}

	rooms := make([]catalog.Room, inst.rooms)
	for i := range rooms {
		kind := catalog.Classroom
		if i%3 == 2 {
			kind = catalog.LabRoom
		}
		rooms[i] = catalog.Room{ID: fmt.Sprintf("R%03d", i), Kind: kind, Capacity: 60}
	}

	sections := make([]catalog.Section, inst.sections)
	for i := range sections {
		required := make([]string, 0, 4)
		offset := rng.Intn(inst.courses)
		for j := 0; j < 4; j++ {
			required = append(required, courses[(offset+j)%inst.courses].ID)
		}
		sections[i] = catalog.Section{
			ID:           fmt.Sprintf("S%02d", i),
			StudentCount: 20 + rng.Intn(30),
			Courses:      required,
		}
	}

	slots := make([]catalog.TimeSlot, 0, 40)
	for d, day := range catalog.Weekdays[1:6] {
		for p := 0; p < 8; p++ {
			start := 8*60 + p*45
			slots = append(slots, catalog.TimeSlot{
				ID:    fmt.Sprintf("T%d%d", d, p),
				Day:   day,
				Start: start,
				End:   start + 45,
			})
		}
	}

	return catalog.New(courses, instructors, rooms, sections, slots)
}
