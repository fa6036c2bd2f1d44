package capacity

import "github.com/alexanderramin/capgrid/internal/domain"

// Flatten walks forest in pre-order and returns one row per node. Each row
// points at its source node, carries its depth (roots are 0), and the info
// inherited from the nearest ancestor that defines one.
func Flatten(forest []*domain.PlanningNode) []domain.FlatRow {
	rows := make([]domain.FlatRow, 0, NodeCount(forest))
	return flattenInto(rows, forest, 0, nil)
}

func flattenInto(rows []domain.FlatRow, nodes []*domain.PlanningNode, depth int, inherited *string) []domain.FlatRow {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		info := inherited
		if n.Info != nil {
			info = n.Info
		}
		rows = append(rows, domain.FlatRow{PlanningNode: n, Depth: depth, ResolvedInfo: info})
		rows = flattenInto(rows, n.Children, depth+1, info)
	}
	return rows
}
