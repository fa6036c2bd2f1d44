package seed

import "github.com/alexanderramin/capgrid/internal/domain"

const milestones = "BM3:2025.11.21\nBM4:2025.12.23"

// Projects returns the project-view forest: project → discipline → engineer.
func Projects() []*domain.PlanningNode {
	return []*domain.PlanningNode{
		project("SPT1.5 THR"),
		project("ST 2.5 assembly machine"),
	}
}

func project(name string) *domain.PlanningNode {
	p := group(name,
		group("CS",
			node("Tang Xiaoyan", week(1, 40), week(2, 40)),
		),
		group("3D",
			node("Shao Yikai", week(5, 80), week(6, 120)),
			node("Wang Hao", week(3, 40), week(4, 40)),
			node("Li Fei", week(3, 40), week(4, 20)),
		),
		group("2D",
			node("Chen Panpan", week(7, 10), week(8, 10)),
			node("Zhang Wen", week(9, 30)),
		),
		group("ECAD",
			node("Wang Hua", week(10, 40), week(11, 16)),
		),
		group("Program",
			node("Guo Guangxing", week(5, 40), week(6, 40)),
			node("Fu Yang", week(7, 20)),
		),
		group("Camera",
			node("Liu Mingfu", week(12, 40)),
		),
		group("Service",
			node("Zhang Haiping", week(12, 40)),
		),
		group("Mechanic",
			node("Zhang Huasong", week(12, 40)),
		),
		group("Electrician",
			node("Wang Bicheng", week(12, 40)),
		),
	)
	info(milestones)(p)
	return p
}
