package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/aimole/internal/catalog"
	"github.com/lakshaymaurya-felt/aimole/internal/safety"
	"github.com/lakshaymaurya-felt/aimole/internal/scan"
	"github.com/lakshaymaurya-felt/aimole/internal/status"
	"github.com/lakshaymaurya-felt/aimole/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show disk usage and reclaimable cache space",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, _, _, classifier, err := loadCore()
		if err != nil {
			return err
		}

		usage, err := status.VolumeFor(home)
		if err != nil {
			return err
		}
		fmt.Printf("  Volume %s: %s used of %s (%.1f%%), %s free\n",
			usage.Mount,
			ui.FormatSize(int64(usage.Used)), ui.FormatSize(int64(usage.Total)),
			usage.UsedPercent, ui.FormatSize(int64(usage.Free)))

		scanner := scan.NewScanner(home, catalog.ScanRoots(runtime.GOOS), classifier)
		result := scanner.Scan()

		var reclaimable int64
		for _, node := range result.Nodes {
			if node.Tier == safety.TierSafe {
				reclaimable += node.Size
				continue
			}
			for _, child := range node.Children {
				if child.Tier == safety.TierSafe {
					reclaimable += child.Size
				}
			}
		}

		fmt.Printf("  AI tool caches: %s across %d root(s)\n",
			ui.FormatSize(result.TotalSize), len(result.Nodes))
		fmt.Printf("  Safe to reclaim: %s\n", ui.FormatSize(reclaimable))
		return nil
	},
}
