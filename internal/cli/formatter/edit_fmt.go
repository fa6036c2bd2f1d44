package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/capgrid/internal/sheet"
)

// FormatEditOutcome renders a one-line summary of an edit.
func FormatEditOutcome(req sheet.EditRequest, outcome sheet.Outcome) string {
	value := req.RawValue
	if value == "" {
		value = "(blank)"
	}
	return fmt.Sprintf("%s  row %d  %s = %s", OutcomeBadge(outcome), req.RowIndex, req.FieldID, value)
}

// FormatRejection renders the blocking notice for a rejected edit.
func FormatRejection(r *sheet.Rejection) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render(r.Message))
	b.WriteString("\n\n")
	if r.Summary {
		b.WriteString(Dim(fmt.Sprintf("Row %d (%s) is a summary row; its hours come from the rows below it.",
			r.RowIndex, r.RowName)))
	} else {
		b.WriteString(Dim(fmt.Sprintf("Row %d (%s) is a summary row at level %d; detail rows start at level %d.",
			r.RowIndex, r.RowName, r.Depth, r.MinDepth)))
	}
	return RenderBox("Not editable", b.String())
}

// ApplySummary counts outcomes of a batch of edits.
type ApplySummary struct {
	Events    int
	Malformed int
	Outcomes  map[sheet.Outcome]int
}

// FormatApplySummary renders the result of applying an event stream.
func FormatApplySummary(s ApplySummary) string {
	parts := []string{fmt.Sprintf("%d event(s)", s.Events)}
	for _, o := range []sheet.Outcome{sheet.OutcomeApplied, sheet.OutcomeRejected, sheet.OutcomeIgnoredRow, sheet.OutcomeIgnoredField} {
		if n := s.Outcomes[o]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, o))
		}
	}
	if s.Malformed > 0 {
		parts = append(parts, StyleYellow.Render(fmt.Sprintf("%d malformed", s.Malformed)))
	}
	return strings.Join(parts, Dim("  ·  ")) + "\n"
}
