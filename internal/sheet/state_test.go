package sheet

import (
	"errors"
	"testing"

	"github.com/alexanderramin/capgrid/internal/capacity"
	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/alexanderramin/capgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var treePolicy = Policy{MinEditableDepth: 2, WeekFieldsOnly: true, RejectMessage: "detail rows only"}

func rowIndex(t *testing.T, s State, name string) int {
	t.Helper()
	for i, r := range s.Rows {
		if r.Name == name {
			return i
		}
	}
	t.Fatalf("row %q not found", name)
	return -1
}

func TestNewState_AggregatesAndFlattens(t *testing.T) {
	seed := testutil.NewTestForest()
	s := NewState(seed)

	assert.Equal(t, 200.0, s.Total)
	assert.Len(t, s.Rows, 9)
	assert.Equal(t, 0.0, seed[0].Capacity, "seed is copied, not aggregated in place")
}

func TestApply_Scenario(t *testing.T) {
	seed := []*domain.PlanningNode{
		testutil.NewTestNode("Root", testutil.WithChildren(
			testutil.NewTestNode("Leaf", testutil.WithWeek(1, 40), testutil.WithWeek(2, 40)),
		)),
	}
	s := NewState(seed)
	require.Equal(t, 80.0, s.Rows[0].Capacity)
	require.Equal(t, 80.0, s.Rows[1].Capacity)

	next, outcome, err := s.Apply(WeekEdit(1, 1, "10"), Policy{MinEditableDepth: 1, WeekFieldsOnly: true})
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, 50.0, next.Rows[1].Capacity)
	assert.Equal(t, 50.0, next.Rows[0].Capacity)
	assert.Equal(t, 50.0, next.Total)
	assert.Equal(t, 1, next.Revision)

	assert.Equal(t, 80.0, s.Rows[0].Capacity, "previous state is untouched")
	assert.Equal(t, 40.0, s.Rows[1].Weeks.Hours(1))
}

func TestApply_Coercion(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"15", 15},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			s := NewState(testutil.NewTestForest())
			idx := rowIndex(t, s, "Ana")

			next, outcome, err := s.Apply(WeekEdit(idx, 1, tt.raw), treePolicy)
			require.NoError(t, err)
			require.Equal(t, OutcomeApplied, outcome)

			v, ok := next.Rows[idx].Weeks.Get(1)
			assert.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestApply_RejectsShallowRows(t *testing.T) {
	s := NewState(testutil.NewTestForest())
	before := capacity.Clone(s.Forest)

	for _, name := range []string{"Alpha", "CS"} {
		idx := rowIndex(t, s, name)
		next, outcome, err := s.Apply(WeekEdit(idx, 1, "8"), treePolicy)

		var rej *Rejection
		require.True(t, errors.As(err, &rej), "row %s", name)
		assert.Equal(t, OutcomeRejected, outcome)
		assert.Equal(t, idx, rej.RowIndex)
		assert.Equal(t, 2, rej.MinDepth)
		assert.Equal(t, "detail rows only", rej.Message)
		assert.Equal(t, before, next.Forest)
		assert.Equal(t, 0, next.Revision)
	}
}

func TestApply_LeavesOnlyRejectsDeepSummaryRows(t *testing.T) {
	seed := []*domain.PlanningNode{
		testutil.NewTestNode("Person", testutil.WithChildren(
			testutil.NewTestNode("Capacity", testutil.WithChildren(
				testutil.NewTestNode("Projects", testutil.WithChildren(
					testutil.NewTestNode("SPA", testutil.WithWeek(4, 50)),
				)),
			)),
		)),
	}
	s := NewState(seed)
	idx := rowIndex(t, s, "Projects")
	require.Equal(t, 2, s.Rows[idx].Depth)

	policy := treePolicy
	policy.LeavesOnly = true
	next, outcome, err := s.Apply(WeekEdit(idx, 3, "30"), policy)

	var rej *Rejection
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, OutcomeRejected, outcome)
	assert.True(t, rej.Summary)
	assert.Contains(t, rej.Error(), "summary row")
	assert.Equal(t, s, next)

	next, outcome, err = s.Apply(WeekEdit(idx, 3, "30"), treePolicy)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, 50.0, next.Total, "own weeks of a summary row never count")

	next, outcome, err = s.Apply(WeekEdit(rowIndex(t, s, "SPA"), 3, "30"), policy)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, 80.0, next.Total)
}

func TestPolicy_Editable(t *testing.T) {
	leaf := domain.FlatRow{PlanningNode: testutil.NewTestNode("Leaf"), Depth: 2}
	summary := domain.FlatRow{PlanningNode: testutil.NewTestNode("Sum", testutil.WithChildren(testutil.NewTestNode("x"))), Depth: 2}
	shallow := domain.FlatRow{PlanningNode: testutil.NewTestNode("Top"), Depth: 1}

	policy := Policy{MinEditableDepth: 2, LeavesOnly: true}
	assert.True(t, policy.Editable(leaf))
	assert.False(t, policy.Editable(summary))
	assert.False(t, policy.Editable(shallow))
	assert.True(t, Policy{MinEditableDepth: 2}.Editable(summary))
}

func TestApply_IgnoresMissingRow(t *testing.T) {
	s := NewState(testutil.NewTestForest())

	for _, idx := range []int{-1, len(s.Rows), 1000} {
		next, outcome, err := s.Apply(WeekEdit(idx, 1, "8"), treePolicy)
		require.NoError(t, err)
		assert.Equal(t, OutcomeIgnoredRow, outcome)
		assert.Equal(t, s, next)
	}
}

func TestApply_IgnoresNonWeekFieldsInTreeViews(t *testing.T) {
	s := NewState(testutil.NewTestForest())
	idx := rowIndex(t, s, "Ana")

	for _, field := range []string{FieldName, FieldCapacity, FieldInfo, "w99", "bogus"} {
		next, outcome, err := s.Apply(EditRequest{RowIndex: idx, FieldID: field, RawValue: "x"}, treePolicy)
		require.NoError(t, err)
		assert.Equal(t, OutcomeIgnoredField, outcome, field)
		assert.Equal(t, s, next)
	}
}

func TestApply_FieldCheckPrecedesDepthCheck(t *testing.T) {
	s := NewState(testutil.NewTestForest())

	_, outcome, err := s.Apply(EditRequest{RowIndex: 0, FieldID: FieldName, RawValue: "x"}, treePolicy)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnoredField, outcome)
}

func TestApply_NoOpValueKeepsRows(t *testing.T) {
	s := NewState(testutil.NewTestForest())
	idx := rowIndex(t, s, "Ben")

	next, outcome, err := s.Apply(WeekEdit(idx, 3, "40"), treePolicy)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, s.Rows, next.Rows)
	assert.Equal(t, s.Forest, next.Forest)
	assert.Equal(t, s.Total, next.Total)
}

func TestApply_FlatViewEditsAnyTextField(t *testing.T) {
	seed := []*domain.PlanningNode{
		testutil.NewTestNode("Ana", testutil.WithSkill("CS")),
		testutil.NewTestNode("Ben", testutil.WithSkill("3D"), testutil.WithInfo("part-time")),
	}
	flat := Policy{MinEditableDepth: 0}
	s := NewState(seed)

	s, outcome, err := s.Apply(EditRequest{RowIndex: 0, FieldID: FieldName, RawValue: "Anna"}, flat)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, outcome)
	s, _, _ = s.Apply(EditRequest{RowIndex: 0, FieldID: FieldSkill, RawValue: "2D"}, flat)
	s, _, _ = s.Apply(EditRequest{RowIndex: 1, FieldID: FieldInfo, RawValue: ""}, flat)
	s, _, _ = s.Apply(EditRequest{RowIndex: 0, FieldID: FieldInfo, RawValue: "lead"}, flat)

	assert.Equal(t, "Anna", s.Rows[0].Name)
	assert.Equal(t, "2D", s.Rows[0].Skill)
	assert.Equal(t, "lead", s.Rows[0].InfoText())
	assert.Nil(t, s.Rows[1].Info, "empty info clears it")
	assert.Equal(t, 4, s.Revision)

	_, outcome, err = s.Apply(EditRequest{RowIndex: 0, FieldID: FieldCapacity, RawValue: "9"}, flat)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnoredField, outcome, "capacity is derived")
}

func TestApply_InheritedInfoFollowsEdit(t *testing.T) {
	s := NewState(testutil.NewTestForest())
	idx := rowIndex(t, s, "Ana")
	// Info edits are allowed at depth 0 when the policy permits text fields.
	next, _, err := s.Apply(EditRequest{RowIndex: 0, FieldID: FieldInfo, RawValue: "BM4"}, Policy{})
	require.NoError(t, err)

	assert.Equal(t, "BM4", next.Rows[idx].InfoText())
	assert.Equal(t, "BM3", s.Rows[idx].InfoText())
}
