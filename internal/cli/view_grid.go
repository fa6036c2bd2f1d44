package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/capgrid/internal/capacity"
	"github.com/alexanderramin/capgrid/internal/cli/formatter"
	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/alexanderramin/capgrid/internal/grid"
	"github.com/alexanderramin/capgrid/internal/service"
	"github.com/alexanderramin/capgrid/internal/sheet"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// gridKeyMap binds the grid view's keys.
type gridKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	NextView key.Binding
	PrevView key.Binding
	Edit     key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultGridKeyMap() gridKeyMap {
	return gridKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		NextView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevView: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Edit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit cell")),
		Clear:    key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "clear cell")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k gridKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.NextView, k.Clear, k.Help, k.Quit}
}

func (k gridKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.NextView, k.PrevView},
		{k.Edit, k.Clear, k.Help, k.Quit},
	}
}

// Lines used around the grid body: tabs (2), year band, header, footer,
// status line and help line.
const gridChromeLines = 7

// gridModel is the interactive planning grid.
type gridModel struct {
	app     *App
	views   []domain.ViewKind
	viewIdx int
	snap    *service.GridSnapshot

	cursorRow int
	cursorCol int
	fromWeek  int
	rowOffset int

	width  int
	height int

	editing bool
	input   textinput.Model
	notices *noticeQueue
	modal   *sheet.Rejection

	keys   gridKeyMap
	help   help.Model
	status string
	err    error
}

func newGridModel(app *App, view domain.ViewKind) gridModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 200

	m := gridModel{
		app:      app,
		views:    domain.ViewKinds,
		fromWeek: 1,
		input:    ti,
		notices:  &noticeQueue{},
		keys:     defaultGridKeyMap(),
		help:     help.New(),
	}
	for i, v := range m.views {
		if v == view {
			m.viewIdx = i
		}
	}
	if app.Notices != nil {
		app.Notices.Use(m.notices)
	}
	m.reload()
	return m
}

func (m gridModel) view() domain.ViewKind {
	return m.views[m.viewIdx]
}

func (m *gridModel) reload() {
	snap, err := m.app.Planning.Grid(context.Background(), m.view())
	m.err = err
	if err == nil {
		m.snap = snap
	}
	m.clampCursor()
}

// columns returns the visible columns for the current window.
func (m gridModel) columns() []grid.Column {
	if m.snap == nil {
		return nil
	}
	return formatter.VisibleColumns(m.snap.Columns, m.fromWeek, m.app.weeksShown())
}

func (m gridModel) baseColumnCount() int {
	n := 0
	for _, c := range m.columns() {
		if !c.IsWeek() {
			n++
		}
	}
	return n
}

func (m gridModel) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-gridChromeLines, 1)
}

func (m *gridModel) clampCursor() {
	if m.snap == nil {
		return
	}
	m.cursorRow = min(max(m.cursorRow, 0), max(len(m.snap.Rows)-1, 0))
	m.cursorCol = min(max(m.cursorCol, 0), max(len(m.columns())-1, 0))

	if h := m.bodyHeight(); h > 0 {
		if m.cursorRow < m.rowOffset {
			m.rowOffset = m.cursorRow
		}
		if m.cursorRow >= m.rowOffset+h {
			m.rowOffset = m.cursorRow - h + 1
		}
	} else {
		m.rowOffset = 0
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m gridModel) Init() tea.Cmd {
	return nil
}

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.modal != nil {
			return m.updateModal(msg)
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

// updateModal blocks every key except the ones that dismiss the notice.
func (m gridModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.modal = m.notices.pop()
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

func (m gridModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		m.commit(m.input.Value())
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		m.status = formatter.Dim("edit cancelled")
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m gridModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursorRow--
	case key.Matches(msg, m.keys.Down):
		m.cursorRow++
	case key.Matches(msg, m.keys.PageUp):
		m.cursorRow -= max(m.bodyHeight(), 1)
	case key.Matches(msg, m.keys.PageDown):
		m.cursorRow += max(m.bodyHeight(), 1)
	case key.Matches(msg, m.keys.Left):
		m.moveLeft()
	case key.Matches(msg, m.keys.Right):
		m.moveRight()
	case key.Matches(msg, m.keys.NextView):
		m.switchView(1)
	case key.Matches(msg, m.keys.PrevView):
		m.switchView(-1)
	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()
	case key.Matches(msg, m.keys.Clear):
		m.commit("")
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.clampCursor()
	return m, nil
}

// moveLeft steps the cursor left, sliding the week window back when the
// cursor sits on the first visible week.
func (m *gridModel) moveLeft() {
	if m.cursorCol == m.baseColumnCount() && m.fromWeek > 1 {
		m.fromWeek--
		return
	}
	m.cursorCol--
}

// moveRight steps the cursor right, sliding the week window forward at the
// right edge.
func (m *gridModel) moveRight() {
	cols := m.columns()
	if m.cursorCol == len(cols)-1 && len(cols) > 0 && cols[len(cols)-1].IsWeek() &&
		cols[len(cols)-1].Week < domain.WeekCount {
		m.fromWeek++
		return
	}
	m.cursorCol++
}

func (m *gridModel) switchView(delta int) {
	n := len(m.views)
	m.viewIdx = ((m.viewIdx+delta)%n + n) % n
	m.cursorRow, m.cursorCol, m.rowOffset, m.fromWeek = 0, 0, 0, 1
	m.status = ""
	m.reload()
}

func (m gridModel) focusedColumn() (grid.Column, bool) {
	cols := m.columns()
	if m.snap == nil || m.cursorCol >= len(cols) || m.cursorRow >= len(m.snap.Rows) {
		return grid.Column{}, false
	}
	return cols[m.cursorCol], true
}

func (m gridModel) startEdit() (tea.Model, tea.Cmd) {
	col, ok := m.focusedColumn()
	if !ok {
		return m, nil
	}
	r := m.snap.Rows[m.cursorRow]
	value := col.Value(r)
	if col.Field == sheet.FieldInfo {
		value = ""
		if r.Info != nil {
			value = *r.Info
		}
	}
	m.editing = true
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// commit routes an edit of the focused cell through the planning service.
func (m *gridModel) commit(raw string) {
	col, ok := m.focusedColumn()
	if !ok {
		return
	}
	req := sheet.EditRequest{RowIndex: m.cursorRow, FieldID: col.Field, RawValue: raw}
	res, err := m.app.Planning.ApplyEdit(context.Background(), m.view(), req)
	var rej *sheet.Rejection
	if err != nil && !errors.As(err, &rej) {
		m.err = err
		return
	}
	m.err = nil
	m.snap = res.Snapshot
	m.status = formatter.FormatEditOutcome(req, res.Outcome)
	if col.IsWeek() && res.Outcome == sheet.OutcomeApplied {
		m.status += formatter.Dim("  " + capacity.FormatHours(capacity.CoerceHours(raw)) + "h stored")
	}
	m.modal = m.notices.pop()
	m.clampCursor()
}

func (m gridModel) View() string {
	if m.modal != nil {
		box := formatter.FormatRejection(m.modal) + "\n" + formatter.Dim("enter/esc: dismiss")
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
		return box
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.snap != nil {
		opts := formatter.GridOptions{
			FromWeek:  m.fromWeek,
			WeekCount: m.app.weeksShown(),
			RowOffset: m.rowOffset,
			RowLimit:  m.bodyHeight(),
			CursorRow: m.cursorRow,
			CursorCol: m.cursorCol,
		}
		b.WriteString(formatter.RenderGrid(m.snap, opts))
	}

	if m.editing {
		if col, ok := m.focusedColumn(); ok {
			b.WriteString(formatter.StyleHeader.Render(col.Label) + " ")
		}
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m gridModel) renderTabs() string {
	active := lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true)
	tabs := make([]string, len(m.views))
	for i, v := range m.views {
		if i == m.viewIdx {
			tabs[i] = active.Render(v.Title())
		} else {
			tabs[i] = formatter.Dim(v.Title())
		}
	}
	return strings.Join(tabs, "   ")
}
