// Package scan walks known cache roots and builds annotated, sized,
// classified directory trees.
package scan

import (
	"io/fs"
	"path/filepath"
)

// DirSize returns the total size in bytes of all files under path,
// recursively. Entries that cannot be read (permission denied, broken
// symlinks, races with concurrent deletion) contribute zero; the walk
// itself never fails. Symlinks are not followed.
func DirSize(path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(_ string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry — skip, don't fail.
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		info, infoErr := entry.Info()
		if infoErr != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	return total
}
