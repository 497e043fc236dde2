package doublemoon

import (
	"errors"
	"fmt"

	torch "github.com/wangkuiyi/gotorch"

	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers"
	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/resources"
	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/splits"
	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/tensordata"
)

const readme = `This binary classification task involves categorizing
points in a 2D plane that belong to two sets resembling
intertwined moons. x[:,0] are the x-coordinates and x[:,1]
are the y-coordinates on the cartesian plane. label[i]=0 indicates
moon 0, and label[i]=1 indicates moon 1.`

// Manager is the double moon datamanager: the versioned dataset plus its
// nested k-fold grid, ready to iterate.
type Manager struct {
	settings datamanagers.Settings
	device   torch.Device
	name     string

	full       *tensordata.Dataset
	fullLoader *tensordata.Loader
	folds      [][]*datamanagers.DataFold
}

var _ datamanagers.DataManager = (*Manager)(nil)

type rawData struct {
	xs [][]float32
	ys []int64
}

func readRaw(path string) (rawData, error) {
	xs, ys, err := ReadData(path)
	return rawData{xs: xs, ys: ys}, err
}

// New loads the versioned artifacts through the resource store and builds
// the full dataset, its loader, and the outer x inner fold grid.
func New(opts ...datamanagers.Option) (*Manager, error) {
	s := datamanagers.DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if _, err := tensordata.ParseMethod(string(s.Method)); err != nil {
		return nil, err
	}
	store := s.Store
	if store == nil {
		store = resources.Default()
	}

	dataPath, err := store.Resolve(DataFileName(s.Version))
	if err != nil {
		return nil, fmt.Errorf("doublemoon %s: %w", s.Version, err)
	}
	splitsPath, err := store.Resolve(SplitsFileName(s.Version))
	if err != nil {
		return nil, fmt.Errorf("doublemoon %s: %w", s.Version, err)
	}
	raw, err := resources.Cached(dataPath, readRaw)
	if err != nil {
		return nil, err
	}
	table, err := resources.Cached(splitsPath, splits.Load)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		settings: s,
		device:   datamanagers.Device(s.Device),
		name:     "DoubleMoon-" + s.Version,
	}
	m.full, err = tensordata.New(raw.xs, raw.ys, m.device)
	if err != nil {
		return nil, err
	}
	if err := table.Validate(m.full.Len()); err != nil {
		return nil, fmt.Errorf("doublemoon %s splits: %w", s.Version, err)
	}

	seed := s.Seed
	nextLoader := func(d *tensordata.Dataset, method tensordata.Method) *tensordata.Loader {
		seed++
		return tensordata.NewLoader(d, method, s.BatchSize, false, seed)
	}

	m.fullLoader = nextLoader(m.full, s.Method)

	outer, inner := table.Shape()
	m.folds = make([][]*datamanagers.DataFold, outer)
	for i := range m.folds {
		m.folds[i] = make([]*datamanagers.DataFold, inner)
		for j := range m.folds[i] {
			cell := table[i][j]
			fold := &datamanagers.DataFold{
				Parent:     m,
				Name:       fmt.Sprintf("out%din%d", i, j),
				Training:   m.full.Subset(cell.Training),
				Validation: m.full.Subset(cell.Validation),
				Design:     m.full.Subset(cell.Design()),
				Test:       m.full.Subset(cell.Test),
			}
			fold.TrainingLoader = nextLoader(fold.Training, s.Method)
			fold.ValidationLoader = nextLoader(fold.Validation, tensordata.MethodNone)
			fold.DesignLoader = nextLoader(fold.Design, s.Method)
			fold.TestLoader = nextLoader(fold.Test, tensordata.MethodNone)
			m.folds[i][j] = fold
		}
	}
	return m, nil
}

func (m *Manager) Name() string { return m.name }

func (m *Manager) Readme() string { return readme }

func (m *Manager) Folds() [][]*datamanagers.DataFold { return m.folds }

func (m *Manager) FullDataset() *tensordata.Dataset { return m.full }

func (m *Manager) FullLoader() *tensordata.Loader { return m.fullLoader }

// Settings returns the settings in effect.
func (m *Manager) Settings() datamanagers.Settings { return m.settings }

// ChangeSettings reconfigures batch size, training loader method and device
// across the full loader and every fold. Version, store and seed are fixed
// at construction.
func (m *Manager) ChangeSettings(opts ...datamanagers.Option) error {
	s := m.settings
	for _, opt := range opts {
		opt(&s)
	}
	if s.Version != m.settings.Version || s.Store != m.settings.Store || s.Seed != m.settings.Seed {
		return errors.New("version, store and seed are fixed; construct a new manager instead")
	}
	if _, err := tensordata.ParseMethod(string(s.Method)); err != nil {
		return err
	}
	m.settings = s
	m.device = datamanagers.Device(s.Device)

	m.full.To(m.device)
	m.fullLoader.SetBatchSize(s.BatchSize)
	m.fullLoader.SetMethod(s.Method)
	for _, row := range m.folds {
		for _, fold := range row {
			for _, d := range fold.Datasets() {
				d.To(m.device)
			}
			for _, l := range fold.Loaders() {
				l.SetBatchSize(s.BatchSize)
			}
			fold.TrainingLoader.SetMethod(s.Method)
			fold.DesignLoader.SetMethod(s.Method)
		}
	}
	return nil
}
