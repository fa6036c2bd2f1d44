package grid

import "github.com/alexanderramin/capgrid/internal/domain"

// Overallocation is one week cell above the threshold.
type Overallocation struct {
	RowIndex int
	Name     string
	Depth    int
	Week     int
	Hours    float64
}

// FindOverallocations scans rows in order, and each row's weeks in order,
// returning every present week value above threshold.
func FindOverallocations(rows []domain.FlatRow, threshold float64) []Overallocation {
	var out []Overallocation
	for i, r := range rows {
		for week := 1; week <= domain.WeekCount; week++ {
			v, ok := r.Weeks.Get(week)
			if !ok || !Overallocated(v, threshold) {
				continue
			}
			out = append(out, Overallocation{RowIndex: i, Name: r.Name, Depth: r.Depth, Week: week, Hours: v})
		}
	}
	return out
}
