package tensordata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	torch "github.com/wangkuiyi/gotorch"
)

func testRows(n int) ([][]float32, []int64) {
	xs := make([][]float32, n)
	ys := make([]int64, n)
	for i := range xs {
		xs[i] = []float32{float32(i), float32(-i)}
		ys[i] = int64(i % 2)
	}
	return xs, ys
}

func TestNewRejectsMismatchedLengths(t *testing.T) {
	xs, ys := testRows(5)
	_, err := New(xs, ys[:4], torch.NewDevice("cpu"))
	assert.Error(t, err)
}

func TestDatasetViews(t *testing.T) {
	xs, ys := testRows(6)
	ds, err := New(xs, ys, torch.NewDevice("cpu"))
	require.NoError(t, err)
	assert.Equal(t, 6, ds.Len())
	assert.Equal(t, 2, ds.NumFeatures())

	sub := ds.Subset([]int{2, 3, 4})
	assert.Equal(t, 3, sub.Len())
	row, label := sub.Row(0)
	assert.Equal(t, []float32{2, -2}, row)
	assert.Equal(t, int64(0), label)

	// subsetting a subset composes the views
	subsub := sub.Subset([]int{0, 2})
	assert.Equal(t, 2, subsub.Len())
	row, _ = subsub.Row(1)
	assert.Equal(t, []float32{4, -4}, row)

	// the parent dataset is untouched
	assert.Equal(t, 6, ds.Len())
}

func TestLabelsAndColumns(t *testing.T) {
	xs, ys := testRows(4)
	ds, err := New(xs, ys, torch.NewDevice("cpu"))
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 1, 0, 1}, ds.Labels())
	assert.Equal(t, []float64{0, 1, 2, 3}, ds.Column(0))
	assert.Equal(t, []float64{0, -1, -2, -3}, ds.Column(1))

	sub := ds.Subset([]int{3, 1})
	assert.Equal(t, []int64{1, 1}, sub.Labels())
	assert.Equal(t, []float64{3, 1}, sub.Column(0))
}

func TestSliceShapes(t *testing.T) {
	xs, ys := testRows(5)
	ds, err := New(xs, ys, torch.NewDevice("cpu"))
	require.NoError(t, err)

	x, y := ds.Slice(1, 4)
	assert.Equal(t, []int64{3, 2}, x.Shape())
	assert.Equal(t, []int64{3}, y.Shape())

	x, y = ds.Tensors()
	assert.Equal(t, []int64{5, 2}, x.Shape())
	assert.Equal(t, []int64{5}, y.Shape())
}

func TestSliceEmptyRange(t *testing.T) {
	ds, err := New(nil, nil, torch.NewDevice("cpu"))
	require.NoError(t, err)
	x, y := ds.Tensors()
	assert.Nil(t, x.T)
	assert.Nil(t, y.T)

	xs, ys := testRows(3)
	ds, err = New(xs, ys, torch.NewDevice("cpu"))
	require.NoError(t, err)
	x, y = ds.Slice(2, 2)
	assert.Nil(t, x.T)
	assert.Nil(t, y.T)
}
