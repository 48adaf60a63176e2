// Package safety classifies cache directories by deletion risk.
package safety

import "fmt"

// Tier is the deletion-risk classification of a cache directory.
type Tier int

const (
	// TierSafe marks directories that can be deleted freely.
	TierSafe Tier = iota
	// TierCaution marks directories that may hold user data.
	TierCaution
	// TierDanger marks directories the tool needs to function.
	TierDanger
)

// String returns the lowercase wire form used in config and override files.
func (t Tier) String() string {
	switch t {
	case TierSafe:
		return "safe"
	case TierCaution:
		return "caution"
	case TierDanger:
		return "danger"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Label returns the capitalized display form.
func (t Tier) Label() string {
	switch t {
	case TierSafe:
		return "Safe"
	case TierCaution:
		return "Caution"
	case TierDanger:
		return "Danger"
	default:
		return t.String()
	}
}

// ParseTier converts the wire form back to a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "safe":
		return TierSafe, nil
	case "caution":
		return TierCaution, nil
	case "danger":
		return TierDanger, nil
	default:
		return TierCaution, fmt.Errorf("unknown safety tier %q", s)
	}
}

// MarshalYAML encodes the tier as its wire string.
func (t Tier) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML decodes the wire string form.
func (t *Tier) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
