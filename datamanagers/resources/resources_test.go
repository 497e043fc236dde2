package resources

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveSearchOrder(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	write(t, second, "a.csv", "only in second")
	write(t, first, "b.csv", "first")
	write(t, second, "b.csv", "second")

	st := NewStore(first, second)
	path, err := st.Resolve("a.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "a.csv"), path)

	path, err = st.Resolve("b.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, "b.csv"), path, "first directory wins")

	_, err = st.Resolve("missing.csv")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDir(t *testing.T) {
	st := NewStore("x", "y")
	assert.Equal(t, "x", st.Dir())
}

func TestChecksumRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "data.csv", "id,x1,x2,label\n0,1,2,0\n")
	require.NoError(t, WriteChecksum(path))

	st := NewStore(dir)
	require.NoError(t, st.Verify("data.csv"))

	// tampering is caught
	write(t, dir, "data.csv", "id,x1,x2,label\n0,9,9,1\n")
	err := st.Verify("data.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch")
}

func TestVerifyWithoutSidecar(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "data.csv", "x")
	assert.Error(t, NewStore(dir).Verify("data.csv"))
}

func TestCachedParsesOnce(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "v.txt", "payload")

	calls := 0
	load := func(p string) (string, error) {
		calls++
		b, err := os.ReadFile(p)
		return string(b), err
	}

	got, err := Cached(path, load)
	require.NoError(t, err)
	assert.Equal(t, "payload", got)
	got, err = Cached(path, load)
	require.NoError(t, err)
	assert.Equal(t, "payload", got)
	assert.Equal(t, 1, calls)

	Forget(path)
	_, err = Cached(path, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCachedPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := Cached(filepath.Join(t.TempDir(), "nope"), func(string) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
}
