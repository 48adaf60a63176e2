package safety

import "strings"

// DescOverride is the rationale shown for user-overridden tiers. It is
// exported for callers that apply an override outside a classify pass.
const DescOverride = "User-defined"

// Descriptions attached to the computed classification sources.
const (
	descSafe    = "Cached data, rebuilt automatically"
	descCaution = "May contain user data or history"
	descDanger  = "Required for the tool to function"
	descUnknown = "Unknown directory"
)

// OverrideStore is the persisted user-override lookup the classifier
// consults. Keys are absolute paths; last writer wins.
type OverrideStore interface {
	Get(path string) (Tier, bool)
	Set(path string, tier Tier) error
	Remove(path string) error
	Clear() error
}

// Buckets is a tool signature's per-directory tier assignment. The three
// sets are intended to be disjoint; on multi-membership the most
// conservative tier wins (Danger > Caution > Safe).
type Buckets struct {
	Safe    []string
	Caution []string
	Danger  []string
}

// Classifier resolves the safety tier of a directory. Precedence is
// strict: persisted override, then signature bucket, then the configured
// default tier.
type Classifier struct {
	overrides   OverrideStore
	defaultTier Tier
}

// NewClassifier builds a classifier. overrides may be nil when no
// override store is available (computed classification only).
func NewClassifier(overrides OverrideStore, defaultTier Tier) *Classifier {
	return &Classifier{overrides: overrides, defaultTier: defaultTier}
}

// Classify returns the tier and human-readable rationale for a directory.
// buckets is the owning tool's bucket assignment, nil for unknown tools.
// absPath keys the override lookup.
func (c *Classifier) Classify(buckets *Buckets, name, absPath string) (Tier, string) {
	if c.overrides != nil {
		if tier, ok := c.overrides.Get(absPath); ok {
			return tier, DescOverride
		}
	}
	if buckets != nil {
		if tier, desc, ok := buckets.Resolve(name); ok {
			return tier, desc
		}
	}
	return c.defaultTier, descUnknown
}

// OverrideFor reports the persisted override for a path, if any, with
// its description. Used by callers whose computed tier does not come
// from the bucket tables (top-level scan roots).
func (c *Classifier) OverrideFor(absPath string) (Tier, string, bool) {
	if c.overrides == nil {
		return c.defaultTier, "", false
	}
	tier, ok := c.overrides.Get(absPath)
	if !ok {
		return c.defaultTier, "", false
	}
	return tier, DescOverride, true
}

// Resolve looks up name in the bucket sets, most conservative first.
// Membership is case-insensitive to behave the same on case-preserving
// filesystems.
func (b *Buckets) Resolve(name string) (Tier, string, bool) {
	if containsFold(b.Danger, name) {
		return TierDanger, descDanger, true
	}
	if containsFold(b.Caution, name) {
		return TierCaution, descCaution, true
	}
	if containsFold(b.Safe, name) {
		return TierSafe, descSafe, true
	}
	return TierCaution, "", false
}

func containsFold(set []string, name string) bool {
	for _, entry := range set {
		if strings.EqualFold(entry, name) {
			return true
		}
	}
	return false
}
