package seed

import "github.com/alexanderramin/capgrid/internal/domain"

// Roster returns the flat admin roster: one root per engineer, skill set to
// the discipline they are planned under.
func Roster() []*domain.PlanningNode {
	var out []*domain.PlanningNode
	seen := make(map[string]bool)
	for _, discipline := range project("").Children {
		for _, person := range discipline.Children {
			if seen[person.Name] {
				continue
			}
			seen[person.Name] = true
			out = append(out, node(person.Name, skill(discipline.Name)))
		}
	}
	return out
}
