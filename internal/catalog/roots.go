package catalog

import "github.com/lakshaymaurya-felt/aimole/internal/safety"

// Root is a known top-level cache root probed by the scanner. Roots
// carry their own fixed tier and description; they are not looked up
// through the signature buckets.
type Root struct {
	// Tool is the owning signature's display name.
	Tool string

	// Location is home-relative ("~" notation).
	Location string

	// Platform restricts the root to one GOOS value; empty means all.
	Platform string

	Tier        safety.Tier
	Description string
}

// ScanRoots returns the top-level cache roots to probe on the given
// platform, in declaration order.
func ScanRoots(goos string) []Root {
	var out []Root
	for _, r := range scanRoots {
		if r.Platform == "" || r.Platform == goos {
			out = append(out, r)
		}
	}
	return out
}

var scanRoots = []Root{
	{Tool: "Cursor", Location: "~/.cursor", Tier: safety.TierCaution,
		Description: "Cursor home directory (extensions, history, caches)"},
	{Tool: "Windsurf", Location: "~/.windsurf", Tier: safety.TierCaution,
		Description: "Windsurf home directory"},
	{Tool: "Windsurf", Location: "~/.codeium", Tier: safety.TierCaution,
		Description: "Codeium engine data and caches"},
	{Tool: "Claude Code", Location: "~/.claude", Tier: safety.TierCaution,
		Description: "Claude Code home directory (projects, sessions, caches)"},
	{Tool: "Aider", Location: "~/.aider", Tier: safety.TierSafe,
		Description: "Aider caches and chat history"},
	{Tool: "Continue", Location: "~/.continue", Tier: safety.TierCaution,
		Description: "Continue index, sessions and config"},
	{Tool: "Tabnine", Location: "~/.tabnine", Tier: safety.TierSafe,
		Description: "Tabnine local models and caches"},
	{Tool: "GitHub Copilot", Location: "~/.config/github-copilot", Tier: safety.TierCaution,
		Description: "GitHub Copilot configuration and version cache"},

	// macOS application containers.
	{Tool: "Cursor", Location: "~/Library/Application Support/Cursor", Platform: "darwin",
		Tier: safety.TierCaution, Description: "Cursor application support data"},
	{Tool: "Cursor", Location: "~/Library/Caches/com.todesktop.230313mzl4w4u92", Platform: "darwin",
		Tier: safety.TierSafe, Description: "Cursor application cache"},
	{Tool: "Windsurf", Location: "~/Library/Application Support/Windsurf", Platform: "darwin",
		Tier: safety.TierCaution, Description: "Windsurf application support data"},

	// Linux XDG config trees.
	{Tool: "Cursor", Location: "~/.config/Cursor", Platform: "linux",
		Tier: safety.TierCaution, Description: "Cursor application support data"},
	{Tool: "Windsurf", Location: "~/.config/Windsurf", Platform: "linux",
		Tier: safety.TierCaution, Description: "Windsurf application support data"},

	// Windows roaming profiles.
	{Tool: "Cursor", Location: "~/AppData/Roaming/Cursor", Platform: "windows",
		Tier: safety.TierCaution, Description: "Cursor application support data"},
	{Tool: "Windsurf", Location: "~/AppData/Roaming/Windsurf", Platform: "windows",
		Tier: safety.TierCaution, Description: "Windsurf application support data"},
}
