package seed

import "github.com/alexanderramin/capgrid/internal/domain"

// Teams returns the person-view forest: person → Capacity → Absences/Projects → project.
func Teams() []*domain.PlanningNode {
	xxx := group("XXX",
		group("Capacity",
			node("Absences", week(2, 80), week(3, 20)),
			group("Projects",
				node("SPA", skill("3D"), week(4, 50), week(5, 40), week(6, 10)),
				node("FP0.8", skill("3D"), week(5, 70), week(6, 30), week(7, 40)),
			),
		),
	)
	skill("3D")(xxx)

	zzz := group("ZZZ",
		group("Capacity",
			node("Absences", week(7, 8)),
			group("Projects",
				node("ZEEKR", skill("Software"), week(8, 40), week(9, 32)),
				node("FP0.8", skill("Camera"), week(9, 10), week(10, 10)),
			),
		),
	)
	skill("Software,Camera")(zzz)

	return []*domain.PlanningNode{xxx, zzz}
}
