package scan

import (
	"os"
	"path/filepath"

	"github.com/lakshaymaurya-felt/aimole/internal/catalog"
)

// Installation is one discovered location of a known tool.
type Installation struct {
	Tool           string
	Path           string
	Size           int64
	MatchedPattern string
}

// FindKnownInstallations probes every signature's location × pattern
// combination under home and returns the directories that exist, each
// with its aggregated size. Output order is stable: signature
// declaration order, then location order, then pattern order.
func FindKnownInstallations(home string) []Installation {
	var out []Installation
	for _, sig := range catalog.Signatures() {
		for _, location := range sig.Locations {
			base := catalog.ExpandLocation(home, location)
			for _, pattern := range sig.Patterns {
				path := filepath.Join(base, pattern)
				info, err := os.Lstat(path)
				if err != nil || !info.IsDir() {
					continue
				}
				out = append(out, Installation{
					Tool:           sig.Name,
					Path:           path,
					Size:           DirSize(path),
					MatchedPattern: pattern,
				})
			}
		}
	}
	return out
}
