package grid

import (
	"testing"

	"github.com/alexanderramin/capgrid/internal/capacity"
	"github.com/alexanderramin/capgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOverallocations_TestForest(t *testing.T) {
	forest := testutil.NewTestForest()
	capacity.Recalculate(forest)
	rows := capacity.Flatten(forest)

	found := FindOverallocations(rows, DefaultOverallocThreshold)
	require.Len(t, found, 1)
	assert.Equal(t, Overallocation{RowIndex: 5, Name: "Cai", Depth: 2, Week: 5, Hours: 50}, found[0])
}

func TestFindOverallocations_OrderAndThreshold(t *testing.T) {
	forest := testutil.NewTestForest()
	capacity.Recalculate(forest)
	rows := capacity.Flatten(forest)

	found := FindOverallocations(rows, 20)
	require.Len(t, found, 4)
	assert.Equal(t, []int{1, 2, 3, 5}, []int{found[0].Week, found[1].Week, found[2].Week, found[3].Week})
	assert.Equal(t, "Ana", found[0].Name)
	assert.Equal(t, "Cai", found[3].Name)
}

func TestFindOverallocations_IgnoresCapacity(t *testing.T) {
	forest := testutil.NewTestForest()
	capacity.Recalculate(forest)

	assert.Empty(t, FindOverallocations(capacity.Flatten(forest), 60), "roll-ups are not week cells")
}
