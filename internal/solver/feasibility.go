package solver

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// SlotRoomMatchable reports whether every variable can be matched to a
// distinct (slot, room) pair drawn from its own domain. A perfect matching
// is a necessary condition for a complete assignment, so a false result
// proves the instance unsatisfiable before any search runs. The check is
// advisory: it never replaces the search outcome, it only lets a caller
// warn early or lower the budget.
func SlotRoomMatchable(variables []Variable, domains map[Variable][]Candidate) (bool, error) {
	return matchable(variables, domains, func(c Candidate) [2]string {
		return [2]string{c.SlotID, c.RoomID}
	})
}

// SlotInstructorMatchable is the (slot, instructor) analogue of
// SlotRoomMatchable.
func SlotInstructorMatchable(variables []Variable, domains map[Variable][]Candidate) (bool, error) {
	return matchable(variables, domains, func(c Candidate) [2]string {
		return [2]string{c.SlotID, c.InstructorID}
	})
}

func matchable(variables []Variable, domains map[Variable][]Candidate, pair func(Candidate) [2]string) (bool, error) {
	demands := make(map[Variable]map[[2]string]bool, len(variables))
	pairs := make([][2]string, 0)
	seen := make(map[[2]string]bool)

	// Iterate variables, then domain order, so the pair list is
	// deterministic.
	for _, variable := range variables {
		demands[variable] = make(map[[2]string]bool)
		for _, candidate := range domains[variable] {
			key := pair(candidate)
			demands[variable][key] = true
			if !seen[key] {
				seen[key] = true
				pairs = append(pairs, key)
			}
		}
	}

	variablesAny := lo.Map(variables, func(variable Variable, _ int) any { return variable })
	pairsAny := lo.Map(pairs, func(key [2]string, _ int) any { return key })

	neighbors := func(left, right any) (bool, error) {
		return demands[left.(Variable)][right.([2]string)], nil
	}

	graph, err := bipartitegraph.NewBipartiteGraph(variablesAny, pairsAny, neighbors)
	if err != nil {
		return false, err
	}
	matching := graph.LargestMatching()
	return len(matching) == len(variables), nil
}
