package scan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/aimole/internal/catalog"
	"github.com/lakshaymaurya-felt/aimole/internal/overrides"
	"github.com/lakshaymaurya-felt/aimole/internal/safety"
)

// fixtureHome builds a fake home with a .cursor root:
//
//	.cursor/
//	  Cache/blob        300 bytes  (safe bucket)
//	  User/state        200 bytes  (caution bucket)
//	  extensions/ext    100 bytes  (danger bucket)
//	  .hidden/secret     50 bytes  (not rendered, still sized)
//	  loose.txt          25 bytes
//	  .DS_Store           5 bytes  (noise)
func fixtureHome(t *testing.T) (home, cursorRoot string) {
	t.Helper()
	home = t.TempDir()
	cursorRoot = filepath.Join(home, ".cursor")
	writeFile(t, filepath.Join(cursorRoot, "Cache", "blob"), 300)
	writeFile(t, filepath.Join(cursorRoot, "User", "state"), 200)
	writeFile(t, filepath.Join(cursorRoot, "extensions", "ext"), 100)
	writeFile(t, filepath.Join(cursorRoot, ".hidden", "secret"), 50)
	writeFile(t, filepath.Join(cursorRoot, "loose.txt"), 25)
	writeFile(t, filepath.Join(cursorRoot, ".DS_Store"), 5)
	return home, cursorRoot
}

func testRoots() []catalog.Root {
	return []catalog.Root{
		{Tool: "Cursor", Location: "~/.cursor", Tier: safety.TierCaution, Description: "Cursor home directory"},
		{Tool: "Aider", Location: "~/.aider", Tier: safety.TierSafe, Description: "Aider caches"},
	}
}

func newTestScanner(home string, store safety.OverrideStore) *Scanner {
	classifier := safety.NewClassifier(store, safety.TierCaution)
	return NewScanner(home, testRoots(), classifier)
}

func TestScanSizesAndClassifies(t *testing.T) {
	home, cursorRoot := fixtureHome(t)
	result := newTestScanner(home, overrides.NewMemory()).Scan()

	// The .aider root does not exist and is omitted, not an error.
	require.Len(t, result.Nodes, 1)
	node := result.Nodes[0]
	require.Equal(t, cursorRoot, node.Path)
	require.Equal(t, safety.TierCaution, node.Tier)
	require.Equal(t, "Cursor home directory", node.Description)

	// Root size counts hidden children, noise, and loose files.
	require.Equal(t, int64(680), node.Size)
	require.Equal(t, node.Size, result.TotalSize)

	// Children: visible directories only, size descending.
	require.Len(t, node.Children, 3)
	require.Equal(t, "Cache", node.Children[0].Name)
	require.Equal(t, "User", node.Children[1].Name)
	require.Equal(t, "extensions", node.Children[2].Name)
	require.Equal(t, int64(300), node.Children[0].Size)

	require.Equal(t, safety.TierSafe, node.Children[0].Tier)
	require.Equal(t, safety.TierCaution, node.Children[1].Tier)
	require.Equal(t, safety.TierDanger, node.Children[2].Tier)
}

func TestScanDeterministic(t *testing.T) {
	home, _ := fixtureHome(t)
	scanner := newTestScanner(home, overrides.NewMemory())
	require.Equal(t, scanner.Scan(), scanner.Scan())
}

func TestScanOverrideWinsOnRootAndChild(t *testing.T) {
	home, cursorRoot := fixtureHome(t)
	store := overrides.NewMemory()
	require.NoError(t, store.Set(cursorRoot, safety.TierSafe))
	require.NoError(t, store.Set(filepath.Join(cursorRoot, "extensions"), safety.TierSafe))

	result := newTestScanner(home, store).Scan()
	node := result.Nodes[0]
	require.Equal(t, safety.TierSafe, node.Tier)
	require.Equal(t, "User-defined", node.Description)

	for _, child := range node.Children {
		if child.Name == "extensions" {
			require.Equal(t, safety.TierSafe, child.Tier)
			require.Equal(t, "User-defined", child.Description)
		}
	}
}

func TestScanUnknownChildGetsDefaultTier(t *testing.T) {
	home, cursorRoot := fixtureHome(t)
	writeFile(t, filepath.Join(cursorRoot, "mystery", "data"), 10)

	result := newTestScanner(home, overrides.NewMemory()).Scan()
	node := result.Nodes[0]
	for _, child := range node.Children {
		if child.Name == "mystery" {
			require.Equal(t, safety.TierCaution, child.Tier)
			require.Equal(t, "Unknown directory", child.Description)
			return
		}
	}
	t.Fatal("mystery child not found")
}

func TestScanNoRoots(t *testing.T) {
	result := newTestScanner(t.TempDir(), overrides.NewMemory()).Scan()
	require.Empty(t, result.Nodes)
	require.Zero(t, result.TotalSize)
}
