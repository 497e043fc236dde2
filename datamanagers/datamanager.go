// Package datamanagers defines the task-independent data-management layer:
// a DataManager bundles a versioned dataset with a grid of cross-validation
// folds and ready-made dataloaders for one machine-learning task.
package datamanagers

import (
	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/tensordata"
)

// DataManager is implemented by each task's data manager.
type DataManager interface {
	// Name identifies the manager and its artifact version, e.g.
	// "DoubleMoon-v1".
	Name() string

	// Readme describes the task in a short human-readable form.
	Readme() string

	// Folds returns the cross-validation grid, indexed [outer][inner].
	Folds() [][]*DataFold

	// FullDataset returns the dataset before any splitting.
	FullDataset() *tensordata.Dataset

	// FullLoader returns a loader over the full dataset.
	FullLoader() *tensordata.Loader

	// ChangeSettings reconfigures the manager and every fold in place.
	ChangeSettings(opts ...Option) error
}
