package scan

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/lakshaymaurya-felt/aimole/internal/catalog"
	"github.com/lakshaymaurya-felt/aimole/internal/safety"
)

// CacheNode is one annotated directory in a scan result.
type CacheNode struct {
	Path        string
	Name        string
	Size        int64
	Tier        safety.Tier
	Description string

	// Children holds the node's immediate subdirectories, sorted by
	// size descending, populated only to the scan's bounded depth.
	// A parent's Size is computed by full recursive walk and is not
	// required to equal the sum of rendered children (hidden entries
	// and loose files count toward Size but are not rendered).
	Children []CacheNode
}

// ScanResult is the aggregate of one scan pass. It is recomputed fully
// on every scan, never patched incrementally.
type ScanResult struct {
	TotalSize int64
	Nodes     []CacheNode
}

// noiseNames are platform metadata files that never surface in results.
var noiseNames = map[string]struct{}{
	".DS_Store":   {},
	"Thumbs.db":   {},
	"desktop.ini": {},
}

// Scanner probes known cache roots and expands one level of children
// beneath each. Configuration is explicit; there is no package-level
// scan state.
type Scanner struct {
	home       string
	roots      []catalog.Root
	classifier *safety.Classifier
}

// NewScanner builds a scanner over the given roots. home resolves the
// roots' "~" locations.
func NewScanner(home string, roots []catalog.Root, classifier *safety.Classifier) *Scanner {
	return &Scanner{home: home, roots: roots, classifier: classifier}
}

// Scan probes every root, skipping the ones that do not exist, and
// returns the annotated tree. Ordering is deterministic: roots in
// declaration order, children by size descending with enumeration order
// breaking ties.
func (s *Scanner) Scan() ScanResult {
	var result ScanResult
	for _, root := range s.roots {
		abs := catalog.ExpandLocation(s.home, root.Location)
		info, err := os.Lstat(abs)
		if err != nil || !info.IsDir() {
			// Missing roots are omitted, never an error.
			continue
		}
		node := s.scanRoot(root, abs)
		result.TotalSize += node.Size
		result.Nodes = append(result.Nodes, node)
	}
	return result
}

// scanRoot sizes and classifies one root and its immediate children.
// Every entry under the root is sized exactly once: the root's own size
// is the sum over all entries, rendered or not.
func (s *Scanner) scanRoot(root catalog.Root, abs string) CacheNode {
	node := CacheNode{
		Path:        abs,
		Name:        filepath.Base(abs),
		Tier:        root.Tier,
		Description: root.Description,
	}
	// Top-level roots carry a fixed tier and description; only a
	// persisted override supersedes them.
	if tier, desc, ok := s.classifier.OverrideFor(abs); ok {
		node.Tier = tier
		node.Description = desc
	}

	sig, _ := catalog.SignatureFor(root.Tool)
	var buckets *safety.Buckets
	if sig != nil {
		buckets = &sig.Buckets
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		// Unreadable root: report it with whatever the walker can see.
		node.Size = DirSize(abs)
		return node
	}

	var total int64
	for _, entry := range entries {
		childPath := filepath.Join(abs, entry.Name())
		if entry.IsDir() {
			size := DirSize(childPath)
			total += size
			if hidden(entry.Name()) {
				continue
			}
			tier, desc := s.classifier.Classify(buckets, entry.Name(), childPath)
			node.Children = append(node.Children, CacheNode{
				Path:        childPath,
				Name:        entry.Name(),
				Size:        size,
				Tier:        tier,
				Description: desc,
			})
			continue
		}
		// Loose files contribute to the root's size but are not
		// rendered as children.
		if info, infoErr := entry.Info(); infoErr == nil {
			total += info.Size()
		}
	}
	node.Size = total

	sort.SliceStable(node.Children, func(i, j int) bool {
		return node.Children[i].Size > node.Children[j].Size
	})
	return node
}

// hidden reports whether a child entry is excluded from rendering:
// dot-prefixed names and platform noise files.
func hidden(name string) bool {
	if _, noise := noiseNames[name]; noise {
		return true
	}
	return len(name) > 0 && name[0] == '.'
}
