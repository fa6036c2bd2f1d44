package formatter

import (
	"testing"

	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/alexanderramin/capgrid/internal/grid"
	"github.com/alexanderramin/capgrid/internal/service"
	"github.com/alexanderramin/capgrid/internal/sheet"
	"github.com/stretchr/testify/assert"
)

func TestFormatReview_Empty(t *testing.T) {
	out := stripANSI(FormatReview(domain.ViewTeams, nil, nil, 40))
	assert.Contains(t, out, "PLANTEAMS OVERALLOCATION")
	assert.Contains(t, out, "No week above 40h.")
}

func TestFormatReview_Lists(t *testing.T) {
	labels := domain.WeekLabels(domain.DefaultAnchor, 52)
	found := []grid.Overallocation{{RowIndex: 5, Name: "Cai", Depth: 2, Week: 5, Hours: 50}}

	out := stripANSI(FormatReview(domain.ViewProjects, found, labels, 40))
	assert.Contains(t, out, "1 week cell(s) above 40h")
	assert.Contains(t, out, "···· Cai")
	assert.Contains(t, out, "1-27 (W5)")
	assert.Contains(t, out, "50h")
	assert.Contains(t, out, "+10h")
}

func TestFormatViews(t *testing.T) {
	out := stripANSI(FormatViews([]service.ViewInfo{
		{Kind: domain.ViewProjects, Title: "PlanProjects", SheetID: "abcdef0123456789", Rows: 46, Total: 1572},
	}))
	assert.Contains(t, out, "projects")
	assert.Contains(t, out, "PlanProjects")
	assert.Contains(t, out, "1572h")
	assert.Contains(t, out, "abcdef01")
	assert.NotContains(t, out, "abcdef012")
}

func TestFormatEditOutcome(t *testing.T) {
	out := stripANSI(FormatEditOutcome(sheet.WeekEdit(4, 3, ""), sheet.OutcomeApplied))
	assert.Equal(t, "● applied  row 4  w3 = (blank)", out)
}

func TestFormatRejection(t *testing.T) {
	out := stripANSI(FormatRejection(&sheet.Rejection{RowIndex: 0, RowName: "Alpha", Depth: 0, MinDepth: 2, Message: "Enter hours on a detail row."}))
	assert.Contains(t, out, "NOT EDITABLE")
	assert.Contains(t, out, "Enter hours on a detail row.")
	assert.Contains(t, out, "Row 0 (Alpha)")
	assert.Contains(t, out, "detail rows start at level 2")
}

func TestFormatRejection_Summary(t *testing.T) {
	out := stripANSI(FormatRejection(&sheet.Rejection{RowIndex: 3, RowName: "Projects", Depth: 2, MinDepth: 2, Summary: true, Message: "m"}))
	assert.Contains(t, out, "Row 3 (Projects) is a summary row; its hours come from the rows below it.")
	assert.NotContains(t, out, "detail rows start")
}

func TestFormatApplySummary(t *testing.T) {
	out := stripANSI(FormatApplySummary(ApplySummary{
		Events:    4,
		Malformed: 1,
		Outcomes:  map[sheet.Outcome]int{sheet.OutcomeApplied: 2, sheet.OutcomeRejected: 1},
	}))
	assert.Equal(t, "4 event(s)  ·  2 applied  ·  1 rejected  ·  1 malformed\n", out)
}
