package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/alexanderramin/capgrid/internal/grid"
	"github.com/alexanderramin/capgrid/internal/seed"
	"github.com/alexanderramin/capgrid/internal/sheet"
)

// ErrUnknownView is returned for a view kind the service does not hold.
var ErrUnknownView = errors.New("unknown view")

// PlanningConfig configures NewPlanningService. Zero values fall back to
// the built-in seeds, the default anchor and the 40 hour threshold.
type PlanningConfig struct {
	Seeds              map[domain.ViewKind][]*domain.PlanningNode
	Anchor             time.Time
	OverallocThreshold float64
	Notifier           sheet.Notifier
}

type planningService struct {
	mu        sync.Mutex
	sheets    map[domain.ViewKind]*sheet.Sheet
	labels    []domain.WeekLabel
	threshold float64
	observer  UseCaseObserver
}

func NewPlanningService(cfg PlanningConfig, observers ...UseCaseObserver) PlanningService {
	anchor := cfg.Anchor
	if anchor.IsZero() {
		anchor = domain.DefaultAnchor
	}
	threshold := cfg.OverallocThreshold
	if threshold <= 0 {
		threshold = grid.DefaultOverallocThreshold
	}

	s := &planningService{
		sheets:    make(map[domain.ViewKind]*sheet.Sheet, len(domain.ViewKinds)),
		labels:    domain.WeekLabels(anchor, domain.WeekCount),
		threshold: threshold,
		observer:  useCaseObserverOrNoop(observers),
	}
	for _, view := range domain.ViewKinds {
		forest, ok := cfg.Seeds[view]
		if !ok {
			forest = seed.Forest(view)
		}
		s.sheets[view] = sheet.New(view, forest, PolicyFor(view), sheet.WithNotifier(cfg.Notifier))
	}
	return s
}

func (s *planningService) Views(ctx context.Context) []ViewInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]ViewInfo, 0, len(domain.ViewKinds))
	for _, view := range domain.ViewKinds {
		sh := s.sheets[view]
		st := sh.State()
		infos = append(infos, ViewInfo{
			Kind:    view,
			Title:   view.Title(),
			SheetID: sh.ID(),
			Rows:    len(st.Rows),
			Total:   st.Total,
		})
	}
	return infos
}

func (s *planningService) Grid(ctx context.Context, view domain.ViewKind) (*GridSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sh, err := s.sheet(view)
	if err != nil {
		return nil, err
	}
	return s.snapshot(sh), nil
}

func (s *planningService) ApplyEdit(ctx context.Context, view domain.ViewKind, req sheet.EditRequest) (result *EditResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"view":  string(view),
		"row":   req.RowIndex,
		"field": req.FieldID,
	}
	defer func() {
		if result != nil {
			fields["outcome"] = string(result.Outcome)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "apply-edit",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	var sh *sheet.Sheet
	sh, err = s.sheet(view)
	if err != nil {
		return nil, err
	}
	fields["sheet_id"] = sh.ID()

	var outcome sheet.Outcome
	_, outcome, err = sh.ApplyEdit(ctx, req)
	result = &EditResult{Outcome: outcome, Snapshot: s.snapshot(sh)}
	if outcome == sheet.OutcomeApplied {
		fields["total"] = result.Snapshot.Total
	}
	return result, err
}

func (s *planningService) Review(ctx context.Context, view domain.ViewKind) (found []grid.Overallocation, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"view": string(view)}
	defer func() {
		fields["overallocated_cells"] = len(found)
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "review-overallocation",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	sh, err := s.sheet(view)
	if err != nil {
		return nil, err
	}
	fields["sheet_id"] = sh.ID()
	return grid.FindOverallocations(sh.Rows(), s.threshold), nil
}

func (s *planningService) sheet(view domain.ViewKind) (*sheet.Sheet, error) {
	sh, ok := s.sheets[view]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, view)
	}
	return sh, nil
}

func (s *planningService) snapshot(sh *sheet.Sheet) *GridSnapshot {
	st := sh.State()
	return &GridSnapshot{
		View:      sh.View(),
		SheetID:   sh.ID(),
		Revision:  st.Revision,
		Total:     st.Total,
		Rows:      st.Rows,
		Columns:   grid.Columns(sh.View(), s.labels),
		Labels:    s.labels,
		Threshold: s.threshold,
	}
}
