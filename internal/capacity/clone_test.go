package capacity

import (
	"testing"

	"github.com/alexanderramin/capgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestClone_StructurallyEqual(t *testing.T) {
	forest := testutil.NewTestForest()
	Recalculate(forest)

	assert.Equal(t, forest, Clone(forest))
}

func TestClone_Independent(t *testing.T) {
	forest := testutil.NewTestForest()
	Recalculate(forest)
	before := Clone(forest)

	copied := Clone(forest)
	copied[0].Children[0].Children[0].Weeks.Set(1, 1)
	copied[0].Name = "Renamed"
	Recalculate(copied)

	assert.Equal(t, before, forest, "original forest must be untouched")
	assert.NotEqual(t, forest[0].Capacity, copied[0].Capacity)
}

func TestClone_Nil(t *testing.T) {
	assert.Nil(t, Clone(nil))
}
