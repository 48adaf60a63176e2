// Package search scans broad filesystem locations for directories whose
// names match a free-text query, attributing matches to known tools.
package search

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"unicode"
	"unicode/utf8"

	"github.com/lakshaymaurya-felt/aimole/internal/catalog"
	"github.com/lakshaymaurya-felt/aimole/internal/scan"
)

// Result is one search match. Results are ephemeral and never persisted.
type Result struct {
	Path string

	// Tool is the inferred owning tool, "Unknown" when no signature
	// pattern appears in the matched name.
	Tool string

	Size int64

	// MatchedFragment is the slice of the directory name that matched
	// the query, with the name's original casing.
	MatchedFragment string
}

// Progress reports per-item search progress.
type Progress struct {
	Processed   int
	Total       int
	CurrentPath string
	Percentage  float64
}

// ProgressFunc receives a Progress update after every candidate visited.
type ProgressFunc func(Progress)

// denyList holds noisy directory names excluded from both counting and
// matching: version-control metadata and package-manager caches.
var denyList = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	"node_modules": {},
	".npm":         {},
	".pnpm-store":  {},
	"__pycache__":  {},
}

// Engine scans a fixed set of search roots. Callers must validate the
// query (at least 2 characters) before invoking it.
type Engine struct {
	roots []string
}

// NewEngine builds an engine over the given absolute search roots.
func NewEngine(roots []string) *Engine {
	return &Engine{roots: roots}
}

// DefaultRoots returns the home directory plus the platform's typical
// application-data roots.
func DefaultRoots(home string) []string {
	roots := []string{home}
	switch runtime.GOOS {
	case "darwin":
		roots = append(roots,
			filepath.Join(home, "Library", "Application Support"),
			filepath.Join(home, "Library", "Caches"))
	case "windows":
		roots = append(roots,
			filepath.Join(home, "AppData", "Roaming"),
			filepath.Join(home, "AppData", "Local"))
	default:
		roots = append(roots,
			filepath.Join(home, ".config"),
			filepath.Join(home, ".cache"),
			filepath.Join(home, ".local", "share"))
	}
	return roots
}

type candidate struct {
	path string
	name string
}

// Run streams matches for query over a background goroutine. The first
// phase counts candidates across all roots so that progress percentages
// are exact; the second visits each candidate, invoking onProgress after
// every item. Cancellation is cooperative through ctx: once cancelled,
// no further candidates are visited and the channel closes; results
// already received remain valid.
func (e *Engine) Run(ctx context.Context, query string, onProgress ProgressFunc) <-chan Result {
	out := make(chan Result)
	go func() {
		defer close(out)

		candidates := e.candidates()
		total := len(candidates)
		for i, c := range candidates {
			if ctx.Err() != nil {
				return
			}
			if r, ok := match(c, query); ok {
				select {
				case out <- r:
				case <-ctx.Done():
					return
				}
			}
			if onProgress != nil {
				processed := i + 1
				pct := 100.0
				if total > 0 {
					pct = float64(processed) / float64(total) * 100
				}
				onProgress(Progress{
					Processed:   processed,
					Total:       total,
					CurrentPath: c.path,
					Percentage:  pct,
				})
			}
		}
	}()
	return out
}

// SearchSync is the degraded no-progress variant: it materializes the
// full result list before returning.
func (e *Engine) SearchSync(ctx context.Context, query string) []Result {
	var results []Result
	for r := range e.Run(ctx, query, nil) {
		results = append(results, r)
	}
	return results
}

// candidates enumerates the immediate subdirectories of every root,
// skipping deny-listed names. Missing or unreadable roots contribute
// nothing.
func (e *Engine) candidates() []candidate {
	var out []candidate
	for _, root := range e.roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if _, denied := denyList[entry.Name()]; denied {
				continue
			}
			out = append(out, candidate{
				path: filepath.Join(root, entry.Name()),
				name: entry.Name(),
			})
		}
	}
	return out
}

// match tests a candidate name against the query, case-insensitively,
// and builds the sized, tool-attributed result.
func match(c candidate, query string) (Result, bool) {
	start, end, ok := foldIndex(c.name, query)
	if !ok {
		return Result{}, false
	}
	tool := "Unknown"
	if sig, _, ok := catalog.MatchTool(c.name); ok {
		tool = sig.Name
	}
	return Result{
		Path:            c.path,
		Tool:            tool,
		Size:            scan.DirSize(c.path),
		MatchedFragment: c.name[start:end],
	}, true
}

// foldIndex locates the first case-insensitive occurrence of query in
// name and returns the byte bounds of the match within name. Indexes
// borrowed from a lowercased copy are unusable here: Unicode case
// mapping changes rune widths, so such an index can split a rune or run
// past the end of the original string.
func foldIndex(name, query string) (start, end int, ok bool) {
	want := []rune(query)
	if len(want) == 0 {
		return 0, 0, true
	}
	for i := 0; i < len(name); {
		j, matched := i, 0
		for matched < len(want) && j < len(name) {
			r, width := utf8.DecodeRuneInString(name[j:])
			if unicode.ToLower(r) != unicode.ToLower(want[matched]) {
				break
			}
			j += width
			matched++
		}
		if matched == len(want) {
			return i, j, true
		}
		_, width := utf8.DecodeRuneInString(name[i:])
		i += width
	}
	return 0, 0, false
}
