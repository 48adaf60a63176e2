package scan

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestDirSizeSumsRecursively(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.bin"), 20)
	writeFile(t, filepath.Join(root, "sub", "file.txt"), 100)
	writeFile(t, filepath.Join(root, "sub", "deep", "more.txt"), 7)

	require.Equal(t, int64(127), DirSize(root))
	require.Equal(t, int64(107), DirSize(filepath.Join(root, "sub")))

	// Parent equals the sum of its parts.
	var children int64
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			children += DirSize(path)
			continue
		}
		info, err := entry.Info()
		require.NoError(t, err)
		children += info.Size()
	}
	require.Equal(t, DirSize(root), children)
}

func TestDirSizeMissingPath(t *testing.T) {
	require.Equal(t, int64(0), DirSize(filepath.Join(t.TempDir(), "missing")))
}

func TestDirSizeToleratesBrokenSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "real.txt"), 50)
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))

	// The broken link contributes nothing and does not fail the walk.
	require.Equal(t, int64(50), DirSize(root))
}

func TestDirSizeEmptyDir(t *testing.T) {
	require.Equal(t, int64(0), DirSize(t.TempDir()))
}
