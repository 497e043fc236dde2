// Package resources locates, verifies and caches the versioned data
// artifacts that datamanagers load.
package resources

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvDir names the environment variable overriding the default resources
// directory.
const EnvDir = "MLLAB_RESOURCES"

// ErrNotFound reports an artifact missing from every search directory.
var ErrNotFound = errors.New("artifact not found")

// DefaultDir returns the resources directory: $MLLAB_RESOURCES if set,
// otherwise ./resources.
func DefaultDir() string {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}
	return "resources"
}

// Store resolves artifact names against an ordered list of directories.
type Store struct {
	dirs []string
}

// NewStore builds a store over the given search directories, first one
// winning. With no arguments it searches DefaultDir.
func NewStore(dirs ...string) *Store {
	if len(dirs) == 0 {
		dirs = []string{DefaultDir()}
	}
	return &Store{dirs: dirs}
}

// Default is the store over DefaultDir.
func Default() *Store { return NewStore() }

// Dir returns the first search directory, where new artifacts are written.
func (s *Store) Dir() string { return s.dirs[0] }

// Resolve returns the path of name in the first search directory holding it.
func (s *Store) Resolve(name string) (string, error) {
	for _, dir := range s.dirs {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s (searched %s)", ErrNotFound, name, strings.Join(s.dirs, ", "))
}
