package capacity

import "github.com/alexanderramin/capgrid/internal/domain"

// Clone returns a structural copy of forest. Mutating the copy never
// affects the original. Info strings are shared since they are immutable.
func Clone(forest []*domain.PlanningNode) []*domain.PlanningNode {
	if forest == nil {
		return nil
	}
	out := make([]*domain.PlanningNode, 0, len(forest))
	for _, n := range forest {
		if n == nil {
			continue
		}
		c := *n
		c.Children = Clone(n.Children)
		out = append(out, &c)
	}
	return out
}
