package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/alexanderramin/capgrid/internal/cli/formatter"
	"github.com/alexanderramin/capgrid/internal/sheet"
)

// NoticeRouter is the sheet.Notifier handed to the planning service. It
// forwards rejections to whichever surface is active: a writer for one-shot
// commands or the grid modal in the TUI.
type NoticeRouter struct {
	mu     sync.Mutex
	target sheet.Notifier
}

func NewNoticeRouter() *NoticeRouter {
	return &NoticeRouter{}
}

// Use makes n the active target. A nil n drops notices.
func (r *NoticeRouter) Use(n sheet.Notifier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = n
}

func (r *NoticeRouter) Notify(ctx context.Context, rej *sheet.Rejection) {
	r.mu.Lock()
	target := r.target
	r.mu.Unlock()
	if target != nil {
		target.Notify(ctx, rej)
	}
}

// writerNotifier prints the rejection box to w.
func writerNotifier(w io.Writer) sheet.Notifier {
	return sheet.NotifierFunc(func(_ context.Context, rej *sheet.Rejection) {
		fmt.Fprintln(w, formatter.FormatRejection(rej))
	})
}

// noticeQueue holds rejections until the grid view shows them.
type noticeQueue struct {
	mu      sync.Mutex
	pending []*sheet.Rejection
}

func (q *noticeQueue) Notify(_ context.Context, rej *sheet.Rejection) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, rej)
}

// pop removes and returns the oldest pending rejection, or nil.
func (q *noticeQueue) pop() *sheet.Rejection {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	rej := q.pending[0]
	q.pending = q.pending[1:]
	return rej
}
