package overrides

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/aimole/internal/safety"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "overrides.yaml")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("/home/u/.cursor/Cache", safety.TierSafe))
	require.NoError(t, store.Set("/home/u/.claude", safety.TierDanger))

	// A fresh open sees the persisted entries.
	reopened, err := Open(path)
	require.NoError(t, err)
	tier, ok := reopened.Get("/home/u/.cursor/Cache")
	require.True(t, ok)
	assert.Equal(t, safety.TierSafe, tier)
	tier, ok = reopened.Get("/home/u/.claude")
	require.True(t, ok)
	assert.Equal(t, safety.TierDanger, tier)

	_, ok = reopened.Get("/home/u/unset")
	assert.False(t, ok)
}

func TestFileStoreRemoveAndClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Set("/a", safety.TierSafe))
	require.NoError(t, store.Set("/b", safety.TierCaution))
	require.NoError(t, store.Remove("/a"))

	reopened, err := Open(path)
	require.NoError(t, err)
	_, ok := reopened.Get("/a")
	assert.False(t, ok)
	_, ok = reopened.Get("/b")
	assert.True(t, ok)

	require.NoError(t, store.Clear())
	reopened, err = Open(path)
	require.NoError(t, err)
	assert.Empty(t, reopened.All())
}

func TestFileStoreAllReturnsCopy(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "overrides.yaml"))
	require.NoError(t, err)
	require.NoError(t, store.Set("/a", safety.TierSafe))

	all := store.All()
	all["/b"] = safety.TierDanger
	_, ok := store.Get("/b")
	assert.False(t, ok, "mutating the copy must not touch the store")
}

func TestOpenRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[not: a: map"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory()
	require.NoError(t, store.Set("/p", safety.TierDanger))

	tier, ok := store.Get("/p")
	require.True(t, ok)
	assert.Equal(t, safety.TierDanger, tier)

	require.NoError(t, store.Remove("/p"))
	_, ok = store.Get("/p")
	assert.False(t, ok)

	require.NoError(t, store.Set("/q", safety.TierSafe))
	require.NoError(t, store.Clear())
	_, ok = store.Get("/q")
	assert.False(t, ok)
}
