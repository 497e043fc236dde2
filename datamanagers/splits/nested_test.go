package splits

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNestedKFold(t *testing.T) {
	table, err := NestedKFold(100, 5, 4, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	outer, inner := table.Shape()
	assert.Equal(t, 5, outer)
	assert.Equal(t, 4, inner)
	require.NoError(t, table.Validate(100))

	for i, row := range table {
		for j, cell := range row {
			// n=100, 5 outer folds: 20 test, 80 design
			assert.Len(t, cell.Test, 20, "fold [%d][%d]", i, j)
			assert.Len(t, cell.Validation, 20, "fold [%d][%d]", i, j)
			assert.Len(t, cell.Training, 60, "fold [%d][%d]", i, j)
			// the test block repeats across the inner folds of an outer fold
			assert.Equal(t, row[0].Test, cell.Test)
		}
	}
}

func TestNestedKFoldDeterministic(t *testing.T) {
	a, err := NestedKFold(50, 3, 2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := NestedKFold(50, 3, 2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNestedKFoldRejectsBadFoldCounts(t *testing.T) {
	_, err := NestedKFold(10, 0, 2, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
	// 10 indices, 5 outer folds leave 8 design indices: 9 inner folds cannot fit
	_, err = NestedKFold(10, 5, 9, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestTableSaveLoad(t *testing.T) {
	table, err := NestedKFold(40, 4, 3, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "table.json")
	require.NoError(t, table.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, table, loaded)
	require.NoError(t, loaded.Validate(40))
}

func TestValidateCatchesCorruption(t *testing.T) {
	table, err := NestedKFold(30, 3, 2, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	table[1][0].Training[0] = table[1][0].Test[0] // duplicate an index
	assert.Error(t, table.Validate(30))

	table, err = NestedKFold(30, 3, 2, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	table[0][1].Validation[0] = 30 // out of range
	assert.Error(t, table.Validate(30))
}

func TestDesign(t *testing.T) {
	cell := FoldIndices{Training: []int{3, 1}, Validation: []int{2}, Test: []int{0}}
	assert.Equal(t, []int{3, 1, 2}, cell.Design())
}
