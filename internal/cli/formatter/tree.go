package formatter

import (
	"strings"

	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Badge  string
	Note   string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// TreeItems converts pre-order rows into tree items. Capacity becomes the
// badge; a row's own info becomes the note.
func TreeItems(rows []domain.FlatRow) []TreeItem {
	items := make([]TreeItem, len(rows))
	for i, r := range rows {
		items[i] = TreeItem{
			Title:  r.Name,
			Level:  r.Depth,
			IsLast: isLastSibling(rows, i),
			Badge:  Hours(r.Capacity),
		}
		if r.Info != nil {
			items[i].Note = SingleLine(*r.Info)
		}
	}
	return items
}

// isLastSibling reports whether no later row shares rows[i]'s parent.
func isLastSibling(rows []domain.FlatRow, i int) bool {
	d := rows[i].Depth
	for _, r := range rows[i+1:] {
		if r.Depth < d {
			return true
		}
		if r.Depth == d {
			return false
		}
	}
	return true
}

// RenderTree renders items as an indented tree using box-drawing
// connectors, with right-aligned badges.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
		note    string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0
	// open[l] is true while the ancestor at level l still has siblings below.
	var open []bool

	for idx, item := range items {
		var prefix strings.Builder
		if item.Level > 0 {
			for l := 1; l < item.Level; l++ {
				if l < len(open) && open[l] {
					prefix.WriteString(treePipe)
				} else {
					prefix.WriteString(treeBlank)
				}
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}
		for len(open) <= item.Level {
			open = append(open, false)
		}
		open = open[:item.Level+1]
		open[item.Level] = !item.IsLast

		title := item.Title
		if item.Level == 0 {
			title = Bold(title)
		}
		content := prefix.String() + title
		lines[idx].content = content
		if item.Badge != "" {
			lines[idx].badge = StyleBlue.Render("[ " + item.Badge + " ]")
		}
		if item.Note != "" {
			lines[idx].note = Dim(item.Note)
		}
		maxContentWidth = max(maxContentWidth, lipgloss.Width(content))
	}

	var b strings.Builder
	for _, li := range lines {
		b.WriteString(li.content)
		if li.badge != "" {
			b.WriteString(strings.Repeat(" ", maxContentWidth-lipgloss.Width(li.content)))
			b.WriteString("  " + li.badge)
		}
		if li.note != "" {
			b.WriteString("  " + li.note)
		}
		b.WriteString("\n")
	}
	return b.String()
}
