package formatter

import (
	"strings"

	"github.com/alexanderramin/capgrid/internal/capacity"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Hours renders an hour value with an "h" suffix, e.g. "7.5h".
func Hours(v float64) string {
	return capacity.FormatHours(v) + "h"
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// SingleLine folds multi-line cell text onto one line.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " · ")), " ")
}

// Fit pads or truncates s to exactly width visible cells. Truncated text
// ends with an ellipsis. ANSI sequences in s are preserved.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if w := xansi.StringWidth(s); w <= width {
		return s + strings.Repeat(" ", width-w)
	}
	out := xansi.Truncate(s, width, "…")
	return out + strings.Repeat(" ", width-xansi.StringWidth(out))
}

// FitRight is Fit with right alignment, for numbers.
func FitRight(s string, width int) string {
	w := xansi.StringWidth(s)
	if w >= width {
		return Fit(s, width)
	}
	return strings.Repeat(" ", width-w) + s
}
