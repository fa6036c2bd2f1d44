package testutil

import (
	"github.com/alexanderramin/capgrid/internal/domain"
)

// Node options
type NodeOption func(*domain.PlanningNode)

func WithWeek(week int, hours float64) NodeOption {
	return func(n *domain.PlanningNode) {
		n.Weeks.Set(week, hours)
	}
}

func WithInfo(info string) NodeOption {
	return func(n *domain.PlanningNode) {
		n.Info = &info
	}
}

func WithSkill(skill string) NodeOption {
	return func(n *domain.PlanningNode) {
		n.Skill = skill
	}
}

func WithChildren(children ...*domain.PlanningNode) NodeOption {
	return func(n *domain.PlanningNode) {
		n.Children = append(n.Children, children...)
	}
}

// NewTestNode builds a planning node. Without WithChildren it is a leaf.
func NewTestNode(name string, opts ...NodeOption) *domain.PlanningNode {
	n := &domain.PlanningNode{Name: name}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewTestForest returns a small three-level forest shaped like the project view:
//
//	Alpha (info "BM3")
//	  CS
//	    Ana    w1=40 w2=40
//	  3D
//	    Ben    w3=40 w4=20
//	    Cai    w5=50
//	Beta
//	  Ops
//	    Dee    w1=10
func NewTestForest() []*domain.PlanningNode {
	return []*domain.PlanningNode{
		NewTestNode("Alpha", WithInfo("BM3"), WithChildren(
			NewTestNode("CS", WithChildren(
				NewTestNode("Ana", WithWeek(1, 40), WithWeek(2, 40)),
			)),
			NewTestNode("3D", WithChildren(
				NewTestNode("Ben", WithWeek(3, 40), WithWeek(4, 20)),
				NewTestNode("Cai", WithWeek(5, 50)),
			)),
		)),
		NewTestNode("Beta", WithChildren(
			NewTestNode("Ops", WithChildren(
				NewTestNode("Dee", WithWeek(1, 10)),
			)),
		)),
	}
}
