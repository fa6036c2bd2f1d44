// Package grid describes the rectangular rendering contract for planning
// sheets: column descriptors, depth tiers and the overallocation highlight.
package grid

import (
	"github.com/alexanderramin/capgrid/internal/capacity"
	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/alexanderramin/capgrid/internal/sheet"
)

// Column widths in terminal cells.
const (
	NameWidth     = 22
	SkillWidth    = 16
	CapacityWidth = 9
	InfoWidth     = 24
	WeekWidth     = 11
)

// Column describes one grid column.
type Column struct {
	Field string
	Label string
	Width int
	Week  int // 1..52 for week columns, 0 otherwise
	Value func(r domain.FlatRow) string
}

// IsWeek reports whether c is a week column.
func (c Column) IsWeek() bool {
	return c.Week > 0
}

// WeekColumns returns one column per label, bound to fields w1..wN.
func WeekColumns(labels []domain.WeekLabel) []Column {
	cols := make([]Column, 0, len(labels))
	for i, l := range labels {
		week := i + 1
		if !domain.ValidWeek(week) {
			break
		}
		cols = append(cols, Column{
			Field: sheet.WeekField(week),
			Label: l.Label(),
			Width: WeekWidth,
			Week:  week,
			Value: func(r domain.FlatRow) string {
				v, ok := r.Weeks.Get(week)
				if !ok {
					return ""
				}
				return capacity.FormatHours(v)
			},
		})
	}
	return cols
}

var (
	nameColumn = Column{Field: sheet.FieldName, Label: "Name", Width: NameWidth,
		Value: func(r domain.FlatRow) string { return r.Name }}
	skillColumn = Column{Field: sheet.FieldSkill, Label: "Skill", Width: SkillWidth,
		Value: func(r domain.FlatRow) string { return r.Skill }}
	capacityColumn = Column{Field: sheet.FieldCapacity, Label: "Capacity", Width: CapacityWidth,
		Value: func(r domain.FlatRow) string { return capacity.FormatHours(r.Capacity) }}
	infoColumn = Column{Field: sheet.FieldInfo, Label: "Info", Width: InfoWidth,
		Value: func(r domain.FlatRow) string { return r.InfoText() }}
)

// BaseColumns returns the leading, non-week columns of a view.
func BaseColumns(view domain.ViewKind) []Column {
	switch view {
	case domain.ViewTeams:
		return []Column{nameColumn, skillColumn, capacityColumn}
	case domain.ViewAdmin:
		return []Column{nameColumn, skillColumn, infoColumn}
	default:
		return []Column{nameColumn, infoColumn, capacityColumn}
	}
}

// Columns returns every column of a view. The admin roster carries no
// week columns.
func Columns(view domain.ViewKind, labels []domain.WeekLabel) []Column {
	base := BaseColumns(view)
	if view == domain.ViewAdmin {
		return base
	}
	return append(base, WeekColumns(labels)...)
}
