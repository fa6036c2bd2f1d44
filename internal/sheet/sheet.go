// Package sheet holds the per-view planning state and routes cell edits
// into it. A Sheet has a single writer; it is not safe for concurrent use.
package sheet

import (
	"context"
	"errors"

	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/google/uuid"
)

// Notifier surfaces a rejected edit to the user. Implementations block
// until the user has acknowledged the message where the host supports it.
type Notifier interface {
	Notify(ctx context.Context, r *Rejection)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, r *Rejection)

func (f NotifierFunc) Notify(ctx context.Context, r *Rejection) { f(ctx, r) }

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, *Rejection) {}

// Sheet is the state container for one view.
type Sheet struct {
	id       string
	view     domain.ViewKind
	policy   Policy
	state    State
	notifier Notifier
}

// Option configures a Sheet.
type Option func(*Sheet)

// WithNotifier sets the rejection notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Sheet) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithID overrides the generated sheet id.
func WithID(id string) Option {
	return func(s *Sheet) {
		s.id = id
	}
}

// New builds a sheet from seed. seed itself is copied and never modified.
func New(view domain.ViewKind, seed []*domain.PlanningNode, policy Policy, opts ...Option) *Sheet {
	s := &Sheet{
		id:       uuid.New().String(),
		view:     view,
		policy:   policy,
		state:    NewState(seed),
		notifier: noopNotifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sheet) ID() string             { return s.id }
func (s *Sheet) View() domain.ViewKind  { return s.view }
func (s *Sheet) Policy() Policy         { return s.policy }
func (s *Sheet) State() State           { return s.state }
func (s *Sheet) Rows() []domain.FlatRow { return s.state.Rows }

// ApplyEdit applies req and replaces the visible state with the result.
// A rejected edit is reported to the notifier exactly once and returned as
// a *Rejection; the state is left as it was.
func (s *Sheet) ApplyEdit(ctx context.Context, req EditRequest) (State, Outcome, error) {
	next, outcome, err := s.state.Apply(req, s.policy)
	var rej *Rejection
	if errors.As(err, &rej) {
		s.notifier.Notify(ctx, rej)
		return s.state, outcome, rej
	}
	s.state = next
	return s.state, outcome, nil
}
