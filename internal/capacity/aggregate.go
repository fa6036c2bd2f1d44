// Package capacity computes derived capacity over planning forests and
// projects them into flat, render-ready row lists.
package capacity

import "github.com/alexanderramin/capgrid/internal/domain"

// Recalculate overwrites Capacity on every node of forest, bottom-up, and
// returns the sum of the root capacities.
//
// A leaf's capacity is the sum of its weeks. An internal node's capacity is
// the sum of its children's capacities; its own week values are kept on the
// node but never counted.
func Recalculate(forest []*domain.PlanningNode) float64 {
	var total float64
	for _, n := range forest {
		total += recalcNode(n)
	}
	return total
}

func recalcNode(n *domain.PlanningNode) float64 {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		n.Capacity = n.Weeks.Sum()
		return n.Capacity
	}
	n.Capacity = Recalculate(n.Children)
	return n.Capacity
}

// NodeCount returns the number of nodes in forest, descendants included.
func NodeCount(forest []*domain.PlanningNode) int {
	count := 0
	for _, n := range forest {
		if n == nil {
			continue
		}
		count += 1 + NodeCount(n.Children)
	}
	return count
}
