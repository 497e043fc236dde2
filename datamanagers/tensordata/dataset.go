// Package tensordata provides in-memory datasets materialized as gotorch
// tensors, and minibatch loaders over them.
package tensordata

import (
	"fmt"

	torch "github.com/wangkuiyi/gotorch"
)

// Dataset holds a feature matrix and integer labels, with an optional index
// view over the rows. Subsets share the underlying rows; only the view and
// the target device differ.
type Dataset struct {
	xs      [][]float32
	ys      []int64
	indices []int // nil means the identity view
	device  torch.Device
}

// New builds a dataset over the given feature rows and labels.
func New(xs [][]float32, ys []int64, device torch.Device) (*Dataset, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("got %d feature rows and %d labels, want equal counts", len(xs), len(ys))
	}
	return &Dataset{xs: xs, ys: ys, device: device}, nil
}

// Len returns the number of rows under the current view.
func (d *Dataset) Len() int {
	if d.indices != nil {
		return len(d.indices)
	}
	return len(d.xs)
}

// NumFeatures returns the number of columns of the feature matrix.
func (d *Dataset) NumFeatures() int {
	if len(d.xs) == 0 {
		return 0
	}
	return len(d.xs[0])
}

// Device returns the device tensors are materialized on.
func (d *Dataset) Device() torch.Device { return d.device }

// To moves the dataset to device. Tensors materialized from now on are
// placed there.
func (d *Dataset) To(device torch.Device) { d.device = device }

// Subset returns a view of the dataset holding the given rows. Subsetting a
// subset composes the views, as in ds.Subset(a).Subset(b) == ds.Subset(a[b]).
func (d *Dataset) Subset(indices []int) *Dataset {
	view := make([]int, len(indices))
	if d.indices != nil {
		for i, idx := range indices {
			view[i] = d.indices[idx]
		}
	} else {
		copy(view, indices)
	}
	return &Dataset{xs: d.xs, ys: d.ys, indices: view, device: d.device}
}

// Row returns the i-th row under the current view. The feature slice is the
// backing row, not a copy.
func (d *Dataset) Row(i int) ([]float32, int64) {
	if d.indices != nil {
		i = d.indices[i]
	}
	return d.xs[i], d.ys[i]
}

// Labels returns the labels under the current view.
func (d *Dataset) Labels() []int64 {
	out := make([]int64, d.Len())
	for i := range out {
		_, out[i] = d.Row(i)
	}
	return out
}

// Column gathers feature column j under the current view, widened to
// float64 for numeric post-processing.
func (d *Dataset) Column(j int) []float64 {
	out := make([]float64, d.Len())
	for i := range out {
		row, _ := d.Row(i)
		out[i] = float64(row[j])
	}
	return out
}

// Slice materializes rows [lo, hi) as a pair of tensors on the dataset's
// device: float32 features of shape (hi-lo, NumFeatures) and int64 labels
// of shape (hi-lo). An empty range yields zero-value tensors: a tensor
// cannot be built from an empty Go slice.
func (d *Dataset) Slice(lo, hi int) (x, y torch.Tensor) {
	if hi <= lo {
		return torch.Tensor{}, torch.Tensor{}
	}
	xs := make([][]float32, 0, hi-lo)
	ys := make([]int64, 0, hi-lo)
	for i := lo; i < hi; i++ {
		xi, yi := d.Row(i)
		xs = append(xs, xi)
		ys = append(ys, yi)
	}
	x = torch.NewTensor(xs)
	y = torch.NewTensor(ys)
	return x.To(d.device, x.Dtype()), y.To(d.device, y.Dtype())
}

// Tensors materializes the whole dataset.
func (d *Dataset) Tensors() (x, y torch.Tensor) {
	return d.Slice(0, d.Len())
}
