package sheet

import (
	"strconv"

	"github.com/alexanderramin/capgrid/internal/domain"
)

// Structural field ids. Week fields are "w1".."w52".
const (
	FieldName     = "name"
	FieldInfo     = "info"
	FieldSkill    = "skill"
	FieldCapacity = "capacity"
)

// WeekField returns the field id for week.
func WeekField(week int) string {
	return "w" + strconv.Itoa(week)
}

// ParseWeekField returns the week number named by id. Only the canonical
// form is accepted: "w" followed by 1..52 with no sign or leading zero.
func ParseWeekField(id string) (int, bool) {
	if len(id) < 2 || id[0] != 'w' || id[1] == '0' {
		return 0, false
	}
	for _, c := range id[1:] {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	week, err := strconv.Atoi(id[1:])
	if err != nil || !domain.ValidWeek(week) {
		return 0, false
	}
	return week, true
}

func isTextField(id string) bool {
	switch id {
	case FieldName, FieldInfo, FieldSkill:
		return true
	}
	return false
}
