// Package seed holds the built-in planning data each view starts from.
// Every call returns a freshly built forest.
package seed

import "github.com/alexanderramin/capgrid/internal/domain"

type opt func(*domain.PlanningNode)

func week(w int, hours float64) opt {
	return func(n *domain.PlanningNode) { n.Weeks.Set(w, hours) }
}

func skill(s string) opt {
	return func(n *domain.PlanningNode) { n.Skill = s }
}

func info(s string) opt {
	return func(n *domain.PlanningNode) { n.Info = &s }
}

func node(name string, opts ...opt) *domain.PlanningNode {
	n := &domain.PlanningNode{Name: name}
	for _, o := range opts {
		o(n)
	}
	return n
}

func group(name string, children ...*domain.PlanningNode) *domain.PlanningNode {
	return &domain.PlanningNode{Name: name, Children: children}
}

// Forest returns the seed forest for view.
func Forest(view domain.ViewKind) []*domain.PlanningNode {
	switch view {
	case domain.ViewProjects:
		return Projects()
	case domain.ViewTeams:
		return Teams()
	case domain.ViewAdmin:
		return Roster()
	default:
		return nil
	}
}
