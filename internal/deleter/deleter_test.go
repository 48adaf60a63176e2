package deleter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestDeleteOneDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "cache")
	writeFile(t, filepath.Join(root, "sub", "file.txt"), 100)

	result := DeleteOne(root)
	require.True(t, result.Success)
	assert.Equal(t, int64(100), result.FreedBytes)
	assert.Empty(t, result.Err)

	_, err := os.Lstat(root)
	assert.True(t, os.IsNotExist(err), "the tree must be gone")
}

func TestDeleteOneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loose.bin")
	writeFile(t, path, 42)

	result := DeleteOne(path)
	require.True(t, result.Success)
	assert.Equal(t, int64(42), result.FreedBytes)

	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteOneNotFound(t *testing.T) {
	result := DeleteOne(filepath.Join(t.TempDir(), "missing"))
	assert.False(t, result.Success)
	assert.Equal(t, "not found", result.Err)
	assert.Zero(t, result.FreedBytes)
}

func TestDeleteManyIndependentFailures(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	writeFile(t, filepath.Join(a, "x"), 10)
	writeFile(t, filepath.Join(b, "y"), 20)
	missing := filepath.Join(dir, "missing")

	batch := DeleteMany([]string{a, missing, b})
	require.Len(t, batch.Results, 3)
	assert.Equal(t, 2, batch.SuccessCount)
	assert.Equal(t, 1, batch.FailCount)
	assert.Equal(t, len(batch.Results), batch.SuccessCount+batch.FailCount)
	assert.Equal(t, int64(30), batch.TotalFreed)

	// The failure in the middle must not skip b.
	for _, path := range []string{a, b} {
		_, err := os.Lstat(path)
		assert.True(t, os.IsNotExist(err), path)
	}
}

func TestDeleteManyEmpty(t *testing.T) {
	batch := DeleteMany(nil)
	assert.Empty(t, batch.Results)
	assert.Zero(t, batch.TotalFreed)
}

func TestDeleteRefusesUnsafePaths(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	for _, path := range []string{"", "relative/path", "/", home} {
		result := DeleteOne(path)
		assert.False(t, result.Success, "must refuse %q", path)
		assert.NotEmpty(t, result.Err)
	}
}
