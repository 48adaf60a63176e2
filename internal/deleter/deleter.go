// Package deleter performs validated, accounted, independently-failing
// deletion of cache paths. Deletions are permanent.
package deleter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lakshaymaurya-felt/aimole/internal/scan"
)

// Result is the outcome of deleting one path. Failures carry the
// underlying error as a message; they are reported, never thrown.
type Result struct {
	Path       string
	Success    bool
	FreedBytes int64
	Err        string
}

// BatchResult aggregates a DeleteMany call. SuccessCount plus FailCount
// always equals len(Results).
type BatchResult struct {
	Results      []Result
	TotalFreed   int64
	SuccessCount int
	FailCount    int
}

// DeleteOne removes a single file or directory tree. For directories
// the freed-byte figure is the recursive aggregate size captured before
// removal; on a failed removal it is zero, since the partially freed
// amount is unknowable without re-walking.
func DeleteOne(path string) Result {
	if err := validatePath(path); err != nil {
		return Result{Path: path, Err: err.Error()}
	}

	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Path: path, Err: "not found"}
		}
		return Result{Path: path, Err: err.Error()}
	}

	var freed int64
	if info.IsDir() {
		freed = scan.DirSize(path)
		err = os.RemoveAll(path)
	} else {
		freed = info.Size()
		err = os.Remove(path)
	}
	if err != nil {
		return Result{Path: path, Err: err.Error()}
	}
	return Result{Path: path, Success: true, FreedBytes: freed}
}

// DeleteMany removes each path independently and sequentially. One
// path's failure never aborts or skips the rest.
func DeleteMany(paths []string) BatchResult {
	batch := BatchResult{Results: make([]Result, 0, len(paths))}
	for _, path := range paths {
		result := DeleteOne(path)
		batch.Results = append(batch.Results, result)
		if result.Success {
			batch.SuccessCount++
			batch.TotalFreed += result.FreedBytes
		} else {
			batch.FailCount++
		}
	}
	return batch
}

// validatePath refuses paths whose deletion can never be intended:
// empty or relative paths, filesystem roots, and the home directory.
func validatePath(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	if !filepath.IsAbs(path) {
		return errors.New("path must be absolute")
	}
	cleaned := filepath.Clean(path)
	if cleaned == filepath.VolumeName(cleaned)+string(filepath.Separator) {
		return errors.New("refusing to delete a filesystem root")
	}
	if home, err := os.UserHomeDir(); err == nil && cleaned == filepath.Clean(home) {
		return errors.New("refusing to delete the home directory")
	}
	return nil
}
