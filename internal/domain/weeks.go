package domain

// WeekCount is the number of week columns in a planning year.
const WeekCount = 52

// WeekValues holds hours for weeks 1..WeekCount. Weeks that were never set
// read as absent and contribute 0 to sums. It is a value type: assigning it
// copies every slot.
type WeekValues struct {
	hours [WeekCount]float64
	set   [WeekCount]bool
}

// ValidWeek reports whether week is within 1..WeekCount.
func ValidWeek(week int) bool {
	return week >= 1 && week <= WeekCount
}

// Get returns the hours stored for week and whether a value is present.
func (w WeekValues) Get(week int) (float64, bool) {
	if !ValidWeek(week) {
		return 0, false
	}
	return w.hours[week-1], w.set[week-1]
}

// Hours returns the stored value for week, or 0 when absent.
func (w WeekValues) Hours(week int) float64 {
	v, _ := w.Get(week)
	return v
}

// Set stores hours for week. Out-of-range weeks are ignored.
func (w *WeekValues) Set(week int, hours float64) {
	if !ValidWeek(week) {
		return
	}
	w.hours[week-1] = hours
	w.set[week-1] = true
}

// Sum adds every present week.
func (w WeekValues) Sum() float64 {
	var total float64
	for i := range w.hours {
		if w.set[i] {
			total += w.hours[i]
		}
	}
	return total
}

// Weeks builds a WeekValues from a week -> hours map. Out-of-range keys are dropped.
func Weeks(m map[int]float64) WeekValues {
	var w WeekValues
	for week, hours := range m {
		w.Set(week, hours)
	}
	return w
}
