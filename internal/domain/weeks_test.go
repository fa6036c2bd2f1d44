package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekValues_SetGetSum(t *testing.T) {
	var w WeekValues
	w.Set(3, 40)
	w.Set(4, 20)

	v, ok := w.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 40.0, v)

	_, ok = w.Get(5)
	assert.False(t, ok, "unset week should be absent")
	assert.Equal(t, 60.0, w.Sum())
}

func TestWeekValues_OutOfRangeIgnored(t *testing.T) {
	var w WeekValues
	w.Set(0, 10)
	w.Set(53, 10)

	assert.Equal(t, 0.0, w.Sum())
	_, ok := w.Get(0)
	assert.False(t, ok)
	_, ok = w.Get(53)
	assert.False(t, ok)
}

func TestWeekValues_ZeroIsPresent(t *testing.T) {
	var w WeekValues
	w.Set(1, 0)

	v, ok := w.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestWeekValues_AssignmentCopies(t *testing.T) {
	a := Weeks(map[int]float64{1: 8})
	b := a
	b.Set(1, 16)

	assert.Equal(t, 8.0, a.Hours(1))
	assert.Equal(t, 16.0, b.Hours(1))
}

func TestPlanningNode_IsLeaf(t *testing.T) {
	assert.True(t, (&PlanningNode{Name: "a"}).IsLeaf())
	assert.True(t, (&PlanningNode{Name: "b", Children: []*PlanningNode{}}).IsLeaf())
	assert.False(t, (&PlanningNode{Name: "c", Children: []*PlanningNode{{Name: "d"}}}).IsLeaf())
}
