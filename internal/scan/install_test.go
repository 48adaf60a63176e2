package scan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindKnownInstallations(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".cursor", "Cache", "blob"), 300)
	writeFile(t, filepath.Join(home, ".aider", "history"), 40)

	installations := FindKnownInstallations(home)
	require.Len(t, installations, 2)

	// Signature declaration order: Cursor before Aider.
	require.Equal(t, "Cursor", installations[0].Tool)
	require.Equal(t, filepath.Join(home, ".cursor"), installations[0].Path)
	require.Equal(t, ".cursor", installations[0].MatchedPattern)
	require.Equal(t, int64(300), installations[0].Size)

	require.Equal(t, "Aider", installations[1].Tool)
	require.Equal(t, int64(40), installations[1].Size)
}

func TestFindKnownInstallationsDeterministic(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".cursor", "a"), 1)
	writeFile(t, filepath.Join(home, ".claude", "b"), 2)
	writeFile(t, filepath.Join(home, ".continue", "c"), 3)

	require.Equal(t, FindKnownInstallations(home), FindKnownInstallations(home))
}

func TestFindKnownInstallationsIgnoresFiles(t *testing.T) {
	home := t.TempDir()
	// A plain file at a signature location is not an installation.
	writeFile(t, filepath.Join(home, ".cursor"), 10)

	require.Empty(t, FindKnownInstallations(home))
}

func TestFindKnownInstallationsEmptyHome(t *testing.T) {
	require.Empty(t, FindKnownInstallations(t.TempDir()))
}
