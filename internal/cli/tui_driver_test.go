package cli

import (
	"testing"

	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/alexanderramin/capgrid/internal/grid"
	"github.com/alexanderramin/capgrid/internal/teatest"
)

// TestDriver wraps teatest.Driver with grid-model inspection methods.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds a grid model on app, sets the terminal size and
// drains Init().
func NewTestDriver(t *testing.T, app *App, view domain.ViewKind) *TestDriver {
	t.Helper()
	d := teatest.New(t, newGridModel(app, view), teatest.WithSize(160, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) grid() gridModel {
	return d.Model.(gridModel)
}

// Cursor returns the focused row index and visible column.
func (d *TestDriver) Cursor() (int, int) {
	m := d.grid()
	return m.cursorRow, m.cursorCol
}

// FocusedColumn returns the column under the cursor.
func (d *TestDriver) FocusedColumn() grid.Column {
	c, _ := d.grid().focusedColumn()
	return c
}

// Total returns the visible sheet total.
func (d *TestDriver) Total() float64 {
	return d.grid().snap.Total
}

// ActiveView returns the selected view tab.
func (d *TestDriver) ActiveView() domain.ViewKind {
	return d.grid().view()
}

// ModalOpen reports whether a rejection notice is blocking input.
func (d *TestDriver) ModalOpen() bool {
	return d.grid().modal != nil
}

// Editing reports whether the in-cell editor is active.
func (d *TestDriver) Editing() bool {
	return d.grid().editing
}

// FromWeek returns the first visible week.
func (d *TestDriver) FromWeek() int {
	return d.grid().fromWeek
}

// MoveTo moves the cursor from the origin to (row, col).
func (d *TestDriver) MoveTo(row, col int) {
	d.T.Helper()
	d.Repeat(row, d.PressDown)
	d.Repeat(col, d.PressRight)
}

// EditCell opens the editor on the focused cell, replaces its content with
// value and commits.
func (d *TestDriver) EditCell(value string) {
	d.T.Helper()
	d.PressEnter()
	d.SendKey(ctrlU)
	d.Type(value)
	d.PressEnter()
}
