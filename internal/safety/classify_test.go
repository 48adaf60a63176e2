package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapStore is a minimal in-memory OverrideStore for classifier tests.
type mapStore map[string]Tier

func (m mapStore) Get(path string) (Tier, bool) { t, ok := m[path]; return t, ok }
func (m mapStore) Set(path string, t Tier) error { m[path] = t; return nil }
func (m mapStore) Remove(path string) error { delete(m, path); return nil }
func (m mapStore) Clear() error {
	for k := range m {
		delete(m, k)
	}
	return nil
}

func TestClassifyPrecedence(t *testing.T) {
	const path = "/home/u/.tool/extensions"
	buckets := &Buckets{Danger: []string{"extensions"}}
	store := mapStore{}
	classifier := NewClassifier(store, TierCaution)

	// Override wins over everything.
	require.NoError(t, store.Set(path, TierSafe))
	tier, desc := classifier.Classify(buckets, "extensions", path)
	assert.Equal(t, TierSafe, tier)
	assert.Equal(t, "User-defined", desc)

	// Bucket wins once the override is gone.
	require.NoError(t, store.Remove(path))
	tier, desc = classifier.Classify(buckets, "extensions", path)
	assert.Equal(t, TierDanger, tier)
	assert.Equal(t, "Required for the tool to function", desc)

	// Unknown names fall back to the configured default.
	tier, desc = classifier.Classify(buckets, "mystery", "/home/u/.tool/mystery")
	assert.Equal(t, TierCaution, tier)
	assert.Equal(t, "Unknown directory", desc)
}

func TestClassifyConfiguredDefaultTier(t *testing.T) {
	classifier := NewClassifier(nil, TierSafe)
	tier, desc := classifier.Classify(nil, "anything", "/p")
	assert.Equal(t, TierSafe, tier)
	assert.Equal(t, "Unknown directory", desc)
}

func TestBucketsMostConservativeWins(t *testing.T) {
	buckets := &Buckets{
		Safe:    []string{"x"},
		Caution: []string{"x"},
		Danger:  []string{"x"},
	}
	tier, _, ok := buckets.Resolve("x")
	require.True(t, ok)
	assert.Equal(t, TierDanger, tier)

	buckets.Danger = nil
	tier, _, ok = buckets.Resolve("x")
	require.True(t, ok)
	assert.Equal(t, TierCaution, tier)

	buckets.Caution = nil
	tier, _, ok = buckets.Resolve("x")
	require.True(t, ok)
	assert.Equal(t, TierSafe, tier)
}

func TestBucketsCaseInsensitive(t *testing.T) {
	buckets := &Buckets{Safe: []string{"Cache"}}
	tier, _, ok := buckets.Resolve("CACHE")
	require.True(t, ok)
	assert.Equal(t, TierSafe, tier)

	_, _, ok = buckets.Resolve("cache2")
	assert.False(t, ok)
}

func TestOverrideFor(t *testing.T) {
	store := mapStore{"/p": TierDanger}
	classifier := NewClassifier(store, TierCaution)

	tier, desc, ok := classifier.OverrideFor("/p")
	require.True(t, ok)
	assert.Equal(t, TierDanger, tier)
	assert.Equal(t, DescOverride, desc)
	assert.Equal(t, "User-defined", DescOverride)

	_, _, ok = classifier.OverrideFor("/other")
	assert.False(t, ok)
}

func TestTierStringRoundTrip(t *testing.T) {
	for _, tier := range []Tier{TierSafe, TierCaution, TierDanger} {
		parsed, err := ParseTier(tier.String())
		require.NoError(t, err)
		assert.Equal(t, tier, parsed)
	}

	_, err := ParseTier("frobnicate")
	assert.Error(t, err)
}

func TestTierLabels(t *testing.T) {
	assert.Equal(t, "Safe", TierSafe.Label())
	assert.Equal(t, "Caution", TierCaution.Label())
	assert.Equal(t, "Danger", TierDanger.Label())
}
