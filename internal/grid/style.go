package grid

import (
	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// DefaultOverallocThreshold is the weekly hour count above which a cell is
// flagged as overallocated.
const DefaultOverallocThreshold = 40.0

// Tier is the visual band for a row depth.
type Tier int

const (
	TierRoot Tier = iota
	TierMid
	TierLeaf
)

// TierFor maps depth onto the 3-tier palette; depth 2 and deeper share the leaf tier.
func TierFor(depth int) Tier {
	switch {
	case depth <= 0:
		return TierRoot
	case depth == 1:
		return TierMid
	default:
		return TierLeaf
	}
}

// Palette colors.
var (
	ColorRootBg    = lipgloss.Color("#e3eec0")
	ColorRootFg    = lipgloss.Color("#5a4b2c")
	ColorMidBg     = lipgloss.Color("#eef7f8")
	ColorMidFg     = lipgloss.Color("#3e4a6b")
	ColorLeafBg    = lipgloss.Color("#ffffff")
	ColorLeafFg    = lipgloss.Color("#000000")
	ColorOverBg    = lipgloss.Color("#d200d2")
	ColorOverFg    = lipgloss.Color("#ffffff")
	ColorCellEdges = lipgloss.Color("#dde4f5")
)

var tierStyles = [...]lipgloss.Style{
	TierRoot: lipgloss.NewStyle().Background(ColorRootBg).Foreground(ColorRootFg).Bold(true),
	TierMid:  lipgloss.NewStyle().Background(ColorMidBg).Foreground(ColorMidFg),
	TierLeaf: lipgloss.NewStyle().Background(ColorLeafBg).Foreground(ColorLeafFg),
}

// OverallocStyle highlights week cells above the threshold.
var OverallocStyle = lipgloss.NewStyle().Background(ColorOverBg).Foreground(ColorOverFg).Bold(true)

// RowStyle returns the tier style for depth.
func RowStyle(depth int) lipgloss.Style {
	return tierStyles[TierFor(depth)]
}

// Overallocated reports whether hours exceed threshold.
func Overallocated(hours, threshold float64) bool {
	return hours > threshold
}

// CellStyle picks the style for a cell: the overallocation highlight for
// present week values above threshold, otherwise the row tier.
func CellStyle(r domain.FlatRow, c Column, threshold float64) lipgloss.Style {
	if c.IsWeek() {
		if v, ok := r.Weeks.Get(c.Week); ok && Overallocated(v, threshold) {
			return OverallocStyle
		}
	}
	return RowStyle(r.Depth)
}

// Indent returns the name prefix for a display level.
func Indent(level int) string {
	switch {
	case level <= 0:
		return ""
	case level == 1:
		return "·· "
	default:
		return "···· "
	}
}

// DisplayLevel is the indentation level used in the name column. In the
// teams view the "Absences" and "Projects" rows sit under "Capacity" but are
// shown at the same level as it.
func DisplayLevel(view domain.ViewKind, r domain.FlatRow) int {
	if view == domain.ViewTeams && r.Depth >= 2 {
		switch r.Name {
		case "Absences", "Projects":
			return 1
		}
	}
	return r.Depth
}

// DisplayName returns the indented name cell text.
func DisplayName(view domain.ViewKind, r domain.FlatRow) string {
	return Indent(DisplayLevel(view, r)) + r.Name
}
