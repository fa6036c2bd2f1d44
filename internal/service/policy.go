package service

import (
	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/alexanderramin/capgrid/internal/sheet"
)

// DetailRowMessage is shown when hours are entered on a summary row.
const DetailRowMessage = "Enter hours on a detail row (an engineer or project line)."

// PolicyFor returns the edit policy of a view.
func PolicyFor(view domain.ViewKind) sheet.Policy {
	switch view {
	case domain.ViewAdmin:
		return sheet.Policy{MinEditableDepth: 0}
	default:
		return sheet.Policy{
			MinEditableDepth: 2,
			WeekFieldsOnly:   true,
			LeavesOnly:       true,
			RejectMessage:    DetailRowMessage,
		}
	}
}
