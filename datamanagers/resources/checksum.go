package resources

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// FileSHA256 returns the hex sha256 digest of the file at path.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// WriteChecksum records the sha256 of the file at path in a <path>.sha256
// sidecar.
func WriteChecksum(path string) error {
	sum, err := FileSHA256(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path+".sha256", []byte(sum+"\n"), 0o644); err != nil {
		return fmt.Errorf("write checksum of %s: %w", path, err)
	}
	return nil
}

// Verify rechecks an artifact against its .sha256 sidecar.
func (s *Store) Verify(name string) error {
	path, err := s.Resolve(name)
	if err != nil {
		return err
	}
	want, err := os.ReadFile(path + ".sha256")
	if err != nil {
		return fmt.Errorf("no checksum recorded for %s: %w", name, err)
	}
	got, err := FileSHA256(path)
	if err != nil {
		return err
	}
	if got != strings.TrimSpace(string(want)) {
		return fmt.Errorf("%s: checksum mismatch: artifact is %s, recorded %s",
			name, got, strings.TrimSpace(string(want)))
	}
	return nil
}
