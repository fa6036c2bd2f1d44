package domain

// PlanningNode is one row of a planning tree: a project, a team or category,
// or a person/task carrying weekly hours.
type PlanningNode struct {
	Name     string
	Info     *string // nil means inherit from the nearest ancestor
	Skill    string
	Weeks    WeekValues
	Capacity float64 // derived; overwritten on every recalculation
	Children []*PlanningNode
}

// IsLeaf reports whether the node has no children. An empty child slice
// counts as no children.
func (n *PlanningNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// FlatRow is a render-ready projection of a PlanningNode.
type FlatRow struct {
	*PlanningNode
	Depth        int
	ResolvedInfo *string
}

// InfoText returns the resolved info, or "" when nothing in the ancestry defines one.
func (r FlatRow) InfoText() string {
	if r.ResolvedInfo == nil {
		return ""
	}
	return *r.ResolvedInfo
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}
