// Package status collects disk-level context for cache reporting.
package status

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// VolumeUsage describes the filesystem volume containing a path.
type VolumeUsage struct {
	Mount       string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// VolumeFor returns usage for the volume holding path (typically the
// home directory).
func VolumeFor(path string) (VolumeUsage, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return VolumeUsage{}, fmt.Errorf("disk usage for %s: %w", path, err)
	}
	return VolumeUsage{
		Mount:       usage.Path,
		Total:       usage.Total,
		Used:        usage.Used,
		Free:        usage.Free,
		UsedPercent: usage.UsedPercent,
	}, nil
}
