package splits

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes the table to path as JSON: an outer array of inner arrays of
// {"training": [...], "validation": [...], "test": [...]} objects.
func (t Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := json.NewEncoder(f).Encode(t); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Load reads a table written by Save.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	var t Table
	if err := json.NewDecoder(f).Decode(&t); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return t, nil
}
