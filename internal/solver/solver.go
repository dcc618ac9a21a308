package solver

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/csit-dept/coursetable/internal/catalog"
)

// Outcome is the terminal state of a search run.
type Outcome int

const (
	// OutcomeSolved: every variable assigned with zero hard violations.
	OutcomeSolved Outcome = iota
	// OutcomeExhausted: every branch tried, no complete consistent
	// assignment exists. The result carries the deepest partial reached.
	OutcomeExhausted
	// OutcomeBudgetExceeded: step or time budget hit mid-search. Same shape
	// as OutcomeExhausted but distinguishable so a caller can retry with a
	// larger budget.
	OutcomeBudgetExceeded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeBudgetExceeded:
		return "budget exceeded"
	default:
		return "unknown"
	}
}

// Result is the finished (or best-effort partial) timetable plus search
// statistics. Timetable is immutable once returned.
type Result struct {
	Outcome    Outcome
	Timetable  *Timetable
	Variables  []Variable
	Steps      uint64
	Backtracks uint64
	Elapsed    time.Duration
}

const progressInterval = 500

type searchStatus int

const (
	statusSolved searchStatus = iota
	statusExhausted
	statusAborted
)

// Solver runs one backtracking search over the catalog's variables. Each
// instance owns its timetable state and budget counters, so independent
// solves never interfere.
type Solver struct {
	cat     *catalog.Catalog
	cfg     Config
	checker *Checker
	logger  *zap.Logger

	variables []Variable
	domains   map[Variable][]Candidate

	tt       *Timetable
	best     []Assignment
	deadline time.Time

	steps      uint64
	backtracks uint64
	tried      uint64
}

func New(cat *catalog.Catalog, cfg Config, logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{
		cat:     cat,
		cfg:     cfg.withDefaults(),
		checker: NewChecker(cat, cfg),
		logger:  logger,
	}
}

// Solve builds the domains and runs the depth-first search. Domain
// infeasibility is returned as an error before any search happens; search
// failure is not an error but an Outcome on the Result.
func (s *Solver) Solve() (*Result, error) {
	domains, err := BuildDomains(s.cat, s.cfg)
	if err != nil {
		return nil, err
	}
	s.domains = domains
	s.variables = Variables(s.cat)
	s.tt = NewTimetable()
	s.best = nil
	s.steps, s.backtracks, s.tried = 0, 0, 0

	start := time.Now()
	s.deadline = start.Add(s.cfg.Timeout)
	status := s.search(s.variables)
	elapsed := time.Since(start)

	result := &Result{
		Variables:  s.variables,
		Steps:      s.steps,
		Backtracks: s.backtracks,
		Elapsed:    elapsed,
	}
	switch status {
	case statusSolved:
		result.Outcome = OutcomeSolved
		result.Timetable = s.tt
	case statusAborted:
		// The abort propagated without unwinding, so the live state is the
		// partial reached when the budget ran out.
		result.Outcome = OutcomeBudgetExceeded
		result.Timetable = s.tt
	case statusExhausted:
		result.Outcome = OutcomeExhausted
		result.Timetable = s.restoreBest()
	}

	s.logger.Info("search finished",
		zap.Stringer("outcome", result.Outcome),
		zap.Int("assigned", result.Timetable.Len()),
		zap.Int("variables", len(s.variables)),
		zap.Uint64("steps", s.steps),
		zap.Uint64("backtracks", s.backtracks),
		zap.Duration("elapsed", elapsed),
	)
	return result, nil
}

func (s *Solver) search(unassigned []Variable) searchStatus {
	if len(unassigned) == 0 {
		return statusSolved
	}
	s.steps++
	if s.overBudget() {
		return statusAborted
	}

	variable := s.nextVariable(unassigned)
	rest := lo.Without(unassigned, variable)

	for _, candidate := range s.orderedCandidates(variable) {
		s.tried++
		if s.tried%progressInterval == 0 {
			s.logger.Debug("search progress",
				zap.Int("assigned", s.tt.Len()),
				zap.Int("variables", len(s.variables)),
				zap.Uint64("backtracks", s.backtracks),
			)
		}

		s.tt.Assign(variable, candidate)
		if s.tt.Len() > len(s.best) {
			s.best = s.tt.Assignments()
		}

		switch s.search(rest) {
		case statusSolved:
			return statusSolved
		case statusAborted:
			return statusAborted
		}

		s.tt.Unassign(variable)
		s.backtracks++
	}

	return statusExhausted
}

// nextVariable applies MRV over the live state: fewest remaining consistent
// candidates wins, recounted here rather than precomputed since earlier
// assignments shrink other variables' effective domains. Ties prefer the
// variable whose section has the most still-unassigned courses, then input
// order.
func (s *Solver) nextVariable(unassigned []Variable) Variable {
	sectionPending := lo.CountValuesBy(unassigned, func(v Variable) string { return v.SectionID })

	selected := unassigned[0]
	selectedRemaining := -1
	for _, variable := range unassigned {
		remaining := s.remaining(variable)
		switch {
		case selectedRemaining == -1 || remaining < selectedRemaining:
			selected, selectedRemaining = variable, remaining
		case remaining == selectedRemaining &&
			sectionPending[variable.SectionID] > sectionPending[selected.SectionID]:
			selected, selectedRemaining = variable, remaining
		}
	}
	return selected
}

func (s *Solver) remaining(variable Variable) int {
	count := 0
	for _, candidate := range s.domains[variable] {
		if ok, _ := s.checker.Check(s.tt, variable, candidate); ok {
			count++
		}
	}
	return count
}

// orderedCandidates returns the variable's hard-consistent candidates in
// ascending soft-penalty order, ties broken by domain order.
func (s *Solver) orderedCandidates(variable Variable) []Candidate {
	type scored struct {
		candidate Candidate
		penalty   int
	}
	consistent := make([]scored, 0, len(s.domains[variable]))
	for _, candidate := range s.domains[variable] {
		if ok, penalty := s.checker.Check(s.tt, variable, candidate); ok {
			consistent = append(consistent, scored{candidate, penalty})
		}
	}
	sort.SliceStable(consistent, func(i, j int) bool {
		return consistent[i].penalty < consistent[j].penalty
	})
	return lo.Map(consistent, func(entry scored, _ int) Candidate { return entry.candidate })
}

func (s *Solver) overBudget() bool {
	if s.cfg.MaxSteps > 0 && s.steps > s.cfg.MaxSteps {
		return true
	}
	return s.cfg.Timeout > 0 && time.Now().After(s.deadline)
}

// restoreBest rebuilds a timetable from the deepest assignment prefix seen
// during the search, so an exhausted run still reports its best effort.
func (s *Solver) restoreBest() *Timetable {
	tt := NewTimetable()
	for _, assignment := range s.best {
		tt.Assign(assignment.Variable, assignment.Candidate)
	}
	return tt
}
