package datamanagers

import (
	"time"

	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/resources"
	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/tensordata"
)

// Settings collects the knobs shared by datamanager implementations.
type Settings struct {
	// BatchSize is the minibatch size of every loader. <= 0 means the
	// whole dataset in one batch.
	BatchSize int

	// Method is the iteration method of training and design loaders.
	// Validation and test loaders always iterate in order.
	Method tensordata.Method

	// Device names the device tensors are materialized on ("cpu", "cuda").
	Device string

	// Version selects the artifact version to load.
	Version string

	// Seed drives loader shuffling and bootstrap draws.
	Seed int64

	// Store resolves artifact files. Nil means the default store.
	Store *resources.Store
}

// DefaultSettings returns the settings managers start from.
func DefaultSettings() Settings {
	return Settings{
		BatchSize: 64,
		Method:    tensordata.MethodShuffle,
		Device:    "cpu",
		Version:   "v1",
		Seed:      time.Now().UnixNano(),
	}
}

// Option mutates one setting.
type Option func(*Settings)

// WithBatchSize sets the minibatch size of every loader.
func WithBatchSize(n int) Option {
	return func(s *Settings) { s.BatchSize = n }
}

// WithMethod sets the iteration method of training and design loaders.
func WithMethod(m tensordata.Method) Option {
	return func(s *Settings) { s.Method = m }
}

// WithDevice sets the device tensors are materialized on.
func WithDevice(device string) Option {
	return func(s *Settings) { s.Device = device }
}

// WithVersion selects the artifact version. Only valid at construction.
func WithVersion(v string) Option {
	return func(s *Settings) { s.Version = v }
}

// WithSeed fixes the loader seed. Only valid at construction.
func WithSeed(seed int64) Option {
	return func(s *Settings) { s.Seed = seed }
}

// WithStore sets the artifact store. Only valid at construction.
func WithStore(st *resources.Store) Option {
	return func(s *Settings) { s.Store = st }
}
