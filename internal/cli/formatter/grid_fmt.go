package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/alexanderramin/capgrid/internal/grid"
	"github.com/alexanderramin/capgrid/internal/service"
	"github.com/alexanderramin/capgrid/internal/sheet"
)

const cellGap = " "

// GridOptions selects the part of a sheet to render.
type GridOptions struct {
	// FromWeek is the first visible week (1-based); WeekCount the window size.
	FromWeek  int
	WeekCount int
	// RowOffset and RowLimit page through rows; RowLimit <= 0 shows all.
	RowOffset int
	RowLimit  int
	// CursorRow and CursorCol mark the focused cell by absolute row index and
	// visible column index. Negative values disable the cursor.
	CursorRow int
	CursorCol int
}

// DefaultGridOptions shows the first n weeks and every row without a cursor.
func DefaultGridOptions(n int) GridOptions {
	return GridOptions{FromWeek: 1, WeekCount: n, CursorRow: -1, CursorCol: -1}
}

// VisibleColumns returns the base columns followed by the week columns
// inside the window.
func VisibleColumns(cols []grid.Column, from, count int) []grid.Column {
	from = max(from, 1)
	out := make([]grid.Column, 0, len(cols))
	for _, c := range cols {
		if c.IsWeek() && (c.Week < from || c.Week >= from+count) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// RenderGrid renders a sheet snapshot as a styled grid with a year band,
// a week header row, one line per row and a totals footer.
func RenderGrid(snap *service.GridSnapshot, opts GridOptions) string {
	cols := VisibleColumns(snap.Columns, opts.FromWeek, opts.WeekCount)

	var b strings.Builder
	if band := yearBand(cols, snap.Labels); band != "" {
		b.WriteString(band)
		b.WriteString("\n")
	}

	for i, c := range cols {
		if i > 0 {
			b.WriteString(cellGap)
		}
		b.WriteString(StyleHeader.Render(Fit(c.Label, c.Width)))
	}
	b.WriteString("\n")

	start, end := rowRange(len(snap.Rows), opts.RowOffset, opts.RowLimit)
	for ri := start; ri < end; ri++ {
		r := snap.Rows[ri]
		for ci, c := range cols {
			if ci > 0 {
				b.WriteString(grid.RowStyle(r.Depth).Render(cellGap))
			}
			style := grid.CellStyle(r, c, snap.Threshold)
			if ri == opts.CursorRow && ci == opts.CursorCol {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(cellText(snap.View, r, c)))
		}
		b.WriteString("\n")
	}
	if len(snap.Rows) == 0 {
		b.WriteString(Dim("(no rows)"))
		b.WriteString("\n")
	}

	b.WriteString(gridFooter(snap, cols, start, end))
	return b.String()
}

func cellText(view domain.ViewKind, r domain.FlatRow, c grid.Column) string {
	switch {
	case c.Field == sheet.FieldName:
		return Fit(grid.DisplayName(view, r), c.Width)
	case c.Field == sheet.FieldInfo:
		return Fit(SingleLine(c.Value(r)), c.Width)
	case c.IsWeek() || c.Field == sheet.FieldCapacity:
		return FitRight(c.Value(r), c.Width)
	default:
		return Fit(c.Value(r), c.Width)
	}
}

// yearBand renders the ISO year above each run of week columns.
func yearBand(cols []grid.Column, labels []domain.WeekLabel) string {
	lead := 0
	var visible []domain.WeekLabel
	for i, c := range cols {
		if !c.IsWeek() {
			lead += c.Width
			if i > 0 {
				lead += len(cellGap)
			}
			continue
		}
		if c.Week <= len(labels) {
			visible = append(visible, labels[c.Week-1])
		}
	}
	if len(visible) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lead))
	for _, span := range domain.YearSpans(visible) {
		width := span.Count*grid.WeekWidth + span.Count*len(cellGap)
		label := strconv.Itoa(span.Year)
		left := max((width-len(label))/2, 0)
		b.WriteString(StyleYellowBold.Render(Fit(strings.Repeat(" ", left)+label, width)))
	}
	return strings.TrimRight(b.String(), " ")
}

func gridFooter(snap *service.GridSnapshot, cols []grid.Column, start, end int) string {
	parts := []string{
		Bold("Total " + Hours(snap.Total)),
		fmt.Sprintf("rev %d", snap.Revision),
	}
	first, last := 0, 0
	for _, c := range cols {
		if !c.IsWeek() {
			continue
		}
		if first == 0 {
			first = c.Week
		}
		last = c.Week
	}
	if first > 0 {
		parts = append(parts, fmt.Sprintf("weeks %d-%d of %d", first, last, domain.WeekCount))
	}
	if end-start < len(snap.Rows) {
		parts = append(parts, fmt.Sprintf("rows %d-%d of %d", start+1, end, len(snap.Rows)))
	}
	return Dim(strings.Join(parts, "  ·  ")) + "\n"
}

func rowRange(n, offset, limit int) (int, int) {
	start := min(max(offset, 0), n)
	end := n
	if limit > 0 {
		end = min(start+limit, n)
	}
	return start, end
}
