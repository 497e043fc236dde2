package tensordata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	torch "github.com/wangkuiyi/gotorch"
)

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, MethodNone, m)
	m, err = ParseMethod("shuffle")
	require.NoError(t, err)
	assert.Equal(t, MethodShuffle, m)
	_, err = ParseMethod("jackknife")
	assert.Error(t, err)
}

// batchShapes walks one epoch and collects the feature tensor shapes.
func batchShapes(l *Loader) [][]int64 {
	var shapes [][]int64
	for l.Scan() {
		x, _ := l.Minibatch()
		shapes = append(shapes, x.Shape())
	}
	return shapes
}

func TestLoaderBatches(t *testing.T) {
	xs, ys := testRows(10)
	ds, err := New(xs, ys, torch.NewDevice("cpu"))
	require.NoError(t, err)

	l := NewLoader(ds, MethodNone, 3, false, 0)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, [][]int64{{3, 2}, {3, 2}, {3, 2}, {1, 2}}, batchShapes(l))

	// Scan rearms the loader after the epoch
	assert.Equal(t, [][]int64{{3, 2}, {3, 2}, {3, 2}, {1, 2}}, batchShapes(l))
}

func TestLoaderDropLast(t *testing.T) {
	xs, ys := testRows(10)
	ds, err := New(xs, ys, torch.NewDevice("cpu"))
	require.NoError(t, err)

	l := NewLoader(ds, MethodNone, 3, true, 0)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, [][]int64{{3, 2}, {3, 2}, {3, 2}}, batchShapes(l))
}

func TestLoaderWholeDatasetBatch(t *testing.T) {
	xs, ys := testRows(7)
	ds, err := New(xs, ys, torch.NewDevice("cpu"))
	require.NoError(t, err)

	l := NewLoader(ds, MethodNone, 0, false, 0)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, [][]int64{{7, 2}}, batchShapes(l))
}

func TestLoaderShuffleDeterministic(t *testing.T) {
	xs, ys := testRows(8)
	ds, err := New(xs, ys, torch.NewDevice("cpu"))
	require.NoError(t, err)

	a := NewLoader(ds, MethodShuffle, 1, false, 42)
	b := NewLoader(ds, MethodShuffle, 1, false, 42)
	assert.Equal(t, scanLabels(t, a), scanLabels(t, b))
}

func TestLoaderBootstrapKeepsFullBatches(t *testing.T) {
	xs, ys := testRows(10)
	ds, err := New(xs, ys, torch.NewDevice("cpu"))
	require.NoError(t, err)

	l := NewLoader(ds, MethodBootstrap, 3, false, 1)
	// 4 batches of 3: the bootstrap draw pads the epoch to full batches
	assert.Equal(t, [][]int64{{3, 2}, {3, 2}, {3, 2}, {3, 2}}, batchShapes(l))
}

func TestLoaderSettingsApplyNextEpoch(t *testing.T) {
	xs, ys := testRows(10)
	ds, err := New(xs, ys, torch.NewDevice("cpu"))
	require.NoError(t, err)

	l := NewLoader(ds, MethodNone, 3, false, 0)
	l.SetBatchSize(5)
	l.SetMethod(MethodShuffle)
	assert.Equal(t, 5, l.BatchSize())
	assert.Equal(t, MethodShuffle, l.Method())
	assert.Equal(t, [][]int64{{5, 2}, {5, 2}}, batchShapes(l))
}

func TestLoaderEmptyDataset(t *testing.T) {
	ds, err := New(nil, nil, torch.NewDevice("cpu"))
	require.NoError(t, err)

	l := NewLoader(ds, MethodShuffle, 4, false, 0)
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Scan())
}

// scanLabels walks one epoch with single-row batches and collects the labels.
func scanLabels(t *testing.T, l *Loader) []int64 {
	t.Helper()
	var labels []int64
	for l.Scan() {
		_, y := l.Minibatch()
		labels = append(labels, y.Item().(int64))
	}
	return labels
}
