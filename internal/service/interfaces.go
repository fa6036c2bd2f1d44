package service

import (
	"context"

	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/alexanderramin/capgrid/internal/grid"
	"github.com/alexanderramin/capgrid/internal/sheet"
)

// PlanningService exposes the planning sheets of every view.
type PlanningService interface {
	Views(ctx context.Context) []ViewInfo
	Grid(ctx context.Context, view domain.ViewKind) (*GridSnapshot, error)
	// ApplyEdit routes req into the view's sheet. A rejected edit returns
	// both the unchanged snapshot and a *sheet.Rejection error.
	ApplyEdit(ctx context.Context, view domain.ViewKind, req sheet.EditRequest) (*EditResult, error)
	Review(ctx context.Context, view domain.ViewKind) ([]grid.Overallocation, error)
}

// ViewInfo summarizes one view.
type ViewInfo struct {
	Kind    domain.ViewKind
	Title   string
	SheetID string
	Rows    int
	Total   float64
}

// GridSnapshot is an immutable picture of a sheet at one revision.
type GridSnapshot struct {
	View      domain.ViewKind
	SheetID   string
	Revision  int
	Total     float64
	Rows      []domain.FlatRow
	Columns   []grid.Column
	Labels    []domain.WeekLabel
	Threshold float64
}

// EditResult reports what an edit did and the state after it.
type EditResult struct {
	Outcome  sheet.Outcome
	Snapshot *GridSnapshot
}
