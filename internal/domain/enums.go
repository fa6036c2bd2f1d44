package domain

type ViewKind string

const (
	ViewProjects ViewKind = "projects"
	ViewTeams    ViewKind = "teams"
	ViewAdmin    ViewKind = "admin"
)

// ViewKinds lists every view in tab order.
var ViewKinds = []ViewKind{ViewProjects, ViewTeams, ViewAdmin}

// ValidViewKinds is the canonical set of accepted view strings.
var ValidViewKinds = map[string]bool{
	"projects": true, "teams": true, "admin": true,
}

// Title returns the tab label for the view.
func (v ViewKind) Title() string {
	switch v {
	case ViewProjects:
		return "PlanProjects"
	case ViewTeams:
		return "PlanTeams"
	case ViewAdmin:
		return "Admin"
	default:
		return string(v)
	}
}
