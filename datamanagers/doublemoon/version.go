package doublemoon

import (
	"errors"
	"fmt"
)

// VersionSpec pins the parameters an artifact version is generated with, so
// artifacts regenerate deterministically.
type VersionSpec struct {
	N          int
	Class0Frac float64
	Noise      float64
	Seed       int64
	OuterFolds int
	InnerFolds int
	SplitSeed  int64
}

// Versions registers the known artifact versions.
var Versions = map[string]VersionSpec{
	"v1": {
		N:          1000,
		Class0Frac: 0.5,
		Noise:      0,
		Seed:       42,
		OuterFolds: 5,
		InnerFolds: 5,
		SplitSeed:  42,
	},
}

// ErrUnknownVersion reports a version missing from Versions.
var ErrUnknownVersion = errors.New("unknown doublemoon version")

func lookupVersion(v string) (VersionSpec, error) {
	vs, ok := Versions[v]
	if !ok {
		return VersionSpec{}, fmt.Errorf("%w: %s", ErrUnknownVersion, v)
	}
	return vs, nil
}

// DataFileName returns the versioned CSV artifact name, e.g.
// "doublemoon_data_v1.csv".
func DataFileName(version string) string {
	return fmt.Sprintf("doublemoon_data_%s.csv", version)
}

// SplitsFileName returns the versioned indices-split artifact name, e.g.
// "doublemoon_indices_splits_v1.json".
func SplitsFileName(version string) string {
	return fmt.Sprintf("doublemoon_indices_splits_%s.json", version)
}
