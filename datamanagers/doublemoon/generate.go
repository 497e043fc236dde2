package doublemoon

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/resources"
	"github.com/MatteoPardi/Machine-Learning-Lab/datamanagers/splits"
)

// GenerateData samples the version's dataset and writes the CSV artifact
// and its checksum sidecar into dir, returning the artifact path.
func GenerateData(dir, version string) (string, error) {
	vs, err := lookupVersion(version)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	src := DefaultSource()
	src.Noise = vs.Noise
	rng := rand.New(rand.NewSource(vs.Seed))
	xs, ys := src.Sample(vs.N, vs.Class0Frac, rng)
	path := filepath.Join(dir, DataFileName(version))
	if err := WriteData(path, xs, ys); err != nil {
		return "", err
	}
	if err := resources.WriteChecksum(path); err != nil {
		return "", err
	}
	resources.Forget(path)
	return path, nil
}

// GenerateSplits builds the version's nested k-fold table and writes the
// JSON artifact and its checksum sidecar into dir, returning the artifact
// path.
func GenerateSplits(dir, version string) (string, error) {
	vs, err := lookupVersion(version)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	rng := rand.New(rand.NewSource(vs.SplitSeed))
	table, err := splits.NestedKFold(vs.N, vs.OuterFolds, vs.InnerFolds, rng)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, SplitsFileName(version))
	if err := table.Save(path); err != nil {
		return "", err
	}
	if err := resources.WriteChecksum(path); err != nil {
		return "", err
	}
	resources.Forget(path)
	return path, nil
}
