package datamanagers

import (
	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/tensordata"
)

// DataFold is one cell of a cross-validation grid: the training,
// validation, design and test slices of a dataset, each with a ready
// loader. The design set is training and validation together.
type DataFold struct {
	Parent DataManager
	Name   string

	Training   *tensordata.Dataset
	Validation *tensordata.Dataset
	Design     *tensordata.Dataset
	Test       *tensordata.Dataset

	TrainingLoader   *tensordata.Loader
	ValidationLoader *tensordata.Loader
	DesignLoader     *tensordata.Loader
	TestLoader       *tensordata.Loader
}

// Datasets returns the fold's datasets in training, validation, design,
// test order.
func (f *DataFold) Datasets() []*tensordata.Dataset {
	return []*tensordata.Dataset{f.Training, f.Validation, f.Design, f.Test}
}

// Loaders returns the fold's loaders in training, validation, design, test
// order.
func (f *DataFold) Loaders() []*tensordata.Loader {
	return []*tensordata.Loader{f.TrainingLoader, f.ValidationLoader, f.DesignLoader, f.TestLoader}
}
