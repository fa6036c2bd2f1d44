package sheet

import (
	"github.com/alexanderramin/capgrid/internal/capacity"
	"github.com/alexanderramin/capgrid/internal/domain"
)

// State is one immutable snapshot of a sheet: the forest, its flat
// projection, and the grand total. Apply never mutates the receiver.
type State struct {
	Forest   []*domain.PlanningNode
	Rows     []domain.FlatRow
	Total    float64
	Revision int
}

// NewState copies seed, aggregates it and flattens it.
func NewState(seed []*domain.PlanningNode) State {
	forest := capacity.Clone(seed)
	total := capacity.Recalculate(forest)
	return State{
		Forest: forest,
		Rows:   capacity.Flatten(forest),
		Total:  total,
	}
}

// Row returns the flat row at index.
func (s State) Row(index int) (domain.FlatRow, bool) {
	if index < 0 || index >= len(s.Rows) {
		return domain.FlatRow{}, false
	}
	return s.Rows[index], true
}

// Apply routes req against policy. Discarded edits return the receiver
// unchanged with a nil error; a row the policy does not allow also returns
// a *Rejection.
// Accepted edits are applied to a fresh copy of the forest, which is then
// re-aggregated and re-flattened.
func (s State) Apply(req EditRequest, policy Policy) (State, Outcome, error) {
	target, ok := s.Row(req.RowIndex)
	if !ok {
		return s, OutcomeIgnoredRow, nil
	}

	week, isWeek := ParseWeekField(req.FieldID)
	if !isWeek && (policy.WeekFieldsOnly || !isTextField(req.FieldID)) {
		return s, OutcomeIgnoredField, nil
	}

	if !policy.Editable(target) {
		return s, OutcomeRejected, &Rejection{
			RowIndex: req.RowIndex,
			RowName:  target.Name,
			Depth:    target.Depth,
			MinDepth: policy.MinEditableDepth,
			Summary:  target.Depth >= policy.MinEditableDepth,
			Message:  policy.RejectMessage,
		}
	}

	forest := capacity.Clone(s.Forest)
	node := capacity.Flatten(forest)[req.RowIndex].PlanningNode

	if isWeek {
		node.Weeks.Set(week, capacity.CoerceHours(req.RawValue))
	} else {
		setText(node, req.FieldID, req.RawValue)
	}

	total := capacity.Recalculate(forest)
	return State{
		Forest:   forest,
		Rows:     capacity.Flatten(forest),
		Total:    total,
		Revision: s.Revision + 1,
	}, OutcomeApplied, nil
}

func setText(n *domain.PlanningNode, field, value string) {
	switch field {
	case FieldName:
		n.Name = value
	case FieldSkill:
		n.Skill = value
	case FieldInfo:
		if value == "" {
			n.Info = nil
			return
		}
		n.Info = &value
	}
}
