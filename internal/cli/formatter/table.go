package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align is the horizontal alignment of a table column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// RenderTable renders a left-aligned table with a header separator line.
func RenderTable(headers []string, rows [][]string) string {
	return RenderAlignedTable(headers, nil, rows)
}

// RenderAlignedTable renders a table whose columns are padded to the widest
// cell. align may be shorter than headers; missing entries are left aligned.
func RenderAlignedTable(headers []string, align []Align, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	const colGap = 2
	gap := strings.Repeat(" ", colGap)

	pad := func(i int, cell string) string {
		n := max(widths[i]-lipgloss.Width(cell), 0)
		if i < len(align) && align[i] == AlignRight {
			return strings.Repeat(" ", n) + cell
		}
		if i == cols-1 {
			return cell
		}
		return cell + strings.Repeat(" ", n)
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(pad(i, StyleHeader.Render(h)))
	}
	b.WriteString("\n")

	for i, w := range widths {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i > 0 {
				b.WriteString(gap)
			}
			b.WriteString(pad(i, cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}
