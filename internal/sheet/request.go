package sheet

import (
	"fmt"

	"github.com/alexanderramin/capgrid/internal/domain"
)

// EditRequest is a normalized "cell edited" notification.
type EditRequest struct {
	RowIndex int
	FieldID  string
	RawValue string
}

// WeekEdit builds a request for a week cell.
func WeekEdit(row, week int, raw string) EditRequest {
	return EditRequest{RowIndex: row, FieldID: WeekField(week), RawValue: raw}
}

// Outcome classifies what ApplyEdit did with a request.
type Outcome string

const (
	OutcomeApplied      Outcome = "applied"
	OutcomeIgnoredRow   Outcome = "ignored_row"
	OutcomeIgnoredField Outcome = "ignored_field"
	OutcomeRejected     Outcome = "rejected"
)

// Policy controls which edits a sheet accepts.
type Policy struct {
	// MinEditableDepth is the shallowest depth that accepts edits.
	MinEditableDepth int
	// WeekFieldsOnly discards edits to anything but week fields.
	WeekFieldsOnly bool
	// LeavesOnly rejects edits to rows that have children, whatever their depth.
	LeavesOnly bool
	// RejectMessage is shown to the user when an edit targets a row above
	// MinEditableDepth or a summary row under LeavesOnly.
	RejectMessage string
}

// Editable reports whether r accepts edits under p.
func (p Policy) Editable(r domain.FlatRow) bool {
	if r.Depth < p.MinEditableDepth {
		return false
	}
	return !p.LeavesOnly || r.IsLeaf()
}

// Rejection is returned when an edit targets a row that is not editable.
type Rejection struct {
	RowIndex int
	RowName  string
	Depth    int
	MinDepth int
	// Summary is set when the row was deep enough but has children.
	Summary bool
	Message string
}

func (r *Rejection) Error() string {
	if r.Summary {
		return fmt.Sprintf("row %d (%s) at depth %d is a summary row and is not editable",
			r.RowIndex, r.RowName, r.Depth)
	}
	return fmt.Sprintf("row %d (%s) at depth %d is not editable, minimum depth is %d",
		r.RowIndex, r.RowName, r.Depth, r.MinDepth)
}
