// Package catalog is the static registry of known AI coding-tool
// signatures: where each tool keeps its caches and how its
// subdirectories classify.
package catalog

import (
	"path/filepath"
	"strings"

	"github.com/lakshaymaurya-felt/aimole/internal/safety"
)

// ToolSignature describes one known AI tool.
type ToolSignature struct {
	// Name is the display identity, used for grouping and attribution.
	Name string

	// Patterns are literal name fragments matched case-insensitively
	// as substrings of directory basenames.
	Patterns []string

	// Locations are home-relative search roots ("~" notation), expanded
	// at lookup time.
	Locations []string

	// Buckets assigns tiers to known subdirectory basenames.
	Buckets safety.Buckets
}

// Signatures returns the built-in tool registry. Order is significant:
// discovery and attribution iterate in declaration order.
func Signatures() []ToolSignature {
	return builtin
}

var builtin = []ToolSignature{
	{
		Name:      "Cursor",
		Patterns:  []string{".cursor", "cursor"},
		Locations: []string{"~", "~/.config", "~/Library/Application Support", "~/AppData/Roaming"},
		Buckets: safety.Buckets{
			Safe:    []string{"Cache", "CachedData", "CachedProfilesData", "Code Cache", "GPUCache", "DawnCache", "logs"},
			Caution: []string{"User", "History", "workspaceStorage", "Backups"},
			Danger:  []string{"extensions", "globalStorage"},
		},
	},
	{
		Name:      "Windsurf",
		Patterns:  []string{".windsurf", "windsurf", ".codeium"},
		Locations: []string{"~", "~/.config", "~/Library/Application Support", "~/AppData/Roaming"},
		Buckets: safety.Buckets{
			Safe:    []string{"Cache", "Code Cache", "GPUCache", "logs", "cascade"},
			Caution: []string{"User", "History", "workspaceStorage"},
			Danger:  []string{"extensions", "globalStorage"},
		},
	},
	{
		Name:      "GitHub Copilot",
		Patterns:  []string{"github-copilot", "copilot"},
		Locations: []string{"~/.config", "~/Library/Application Support", "~/AppData/Local"},
		Buckets: safety.Buckets{
			Safe:    []string{"cache", "logs"},
			Caution: []string{"versions"},
			Danger:  []string{"hosts.json", "apps.json"},
		},
	},
	{
		Name:      "Claude Code",
		Patterns:  []string{".claude", "claude"},
		Locations: []string{"~", "~/.config", "~/Library/Application Support"},
		Buckets: safety.Buckets{
			Safe:    []string{"cache", "statsig", "shell-snapshots", "downloads"},
			Caution: []string{"projects", "todos", "history"},
			Danger:  []string{"plugins", "settings.json"},
		},
	},
	{
		Name:      "Cline",
		Patterns:  []string{"cline", "claude-dev"},
		Locations: []string{"~/.config", "~/Library/Application Support", "~/AppData/Roaming"},
		Buckets: safety.Buckets{
			Safe:    []string{"cache", "logs"},
			Caution: []string{"tasks", "checkpoints"},
			Danger:  []string{"settings"},
		},
	},
	{
		Name:      "Aider",
		Patterns:  []string{".aider", "aider"},
		Locations: []string{"~", "~/.cache", "~/Library/Caches"},
		Buckets: safety.Buckets{
			Safe:    []string{"cache", "tags.cache.v3", "tags.cache.v4"},
			Caution: []string{"history"},
			Danger:  []string{},
		},
	},
	{
		Name:      "Continue",
		Patterns:  []string{".continue", "continue"},
		Locations: []string{"~", "~/.config"},
		Buckets: safety.Buckets{
			Safe:    []string{"index", "logs", ".utils"},
			Caution: []string{"sessions", "dev_data"},
			Danger:  []string{"config.json", "config.yaml"},
		},
	},
	{
		Name:      "Tabnine",
		Patterns:  []string{".tabnine", "tabnine"},
		Locations: []string{"~", "~/Library/Caches", "~/AppData/Roaming", "~/.cache"},
		Buckets: safety.Buckets{
			Safe:    []string{"models", "cache", "logs", "resources"},
			Caution: []string{},
			Danger:  []string{"config"},
		},
	},
	{
		Name:      "Cody",
		Patterns:  []string{"cody", "sourcegraph"},
		Locations: []string{"~/.config", "~/.cache", "~/Library/Caches", "~/Library/Application Support"},
		Buckets: safety.Buckets{
			Safe:    []string{"cache", "logs"},
			Caution: []string{"chat"},
			Danger:  []string{"config.json"},
		},
	},
	{
		Name:      "Amazon Q",
		Patterns:  []string{"amazonq", "amazon-q", "codewhisperer"},
		Locations: []string{"~/.aws", "~/.config", "~/Library/Application Support"},
		Buckets: safety.Buckets{
			Safe:    []string{"cache", "logs"},
			Caution: []string{"history", "profiles"},
			Danger:  []string{"sso"},
		},
	},
}

// MatchTool attributes a directory basename to the first signature whose
// pattern appears as a case-insensitive substring. Returns the matched
// pattern alongside the signature.
func MatchTool(name string) (*ToolSignature, string, bool) {
	lower := strings.ToLower(name)
	for i := range builtin {
		for _, pattern := range builtin[i].Patterns {
			if strings.Contains(lower, strings.ToLower(pattern)) {
				return &builtin[i], pattern, true
			}
		}
	}
	return nil, "", false
}

// SignatureFor returns the signature with the given display name.
func SignatureFor(tool string) (*ToolSignature, bool) {
	for i := range builtin {
		if builtin[i].Name == tool {
			return &builtin[i], true
		}
	}
	return nil, false
}

// ExpandLocation resolves the home-relative "~" shorthand against the
// given home directory. Absolute paths pass through unchanged.
func ExpandLocation(home, location string) string {
	if location == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(location, "~/"); ok {
		return filepath.Join(home, filepath.FromSlash(rest))
	}
	return filepath.FromSlash(location)
}
