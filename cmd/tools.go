package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/aimole/internal/scan"
	"github.com/lakshaymaurya-felt/aimole/internal/ui"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List discovered AI tool installations",
	Long:  "Probe every known tool signature and list the installations present on this machine.",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, _, _, _, err := loadCore()
		if err != nil {
			return err
		}

		installations := scan.FindKnownInstallations(home)
		if len(installations) == 0 {
			fmt.Println("No known AI tool installations found.")
			return nil
		}

		var total int64
		for _, inst := range installations {
			fmt.Printf("  %-16s %10s  %s  (matched %q)\n",
				inst.Tool, ui.FormatSize(inst.Size), inst.Path, inst.MatchedPattern)
			total += inst.Size
		}
		fmt.Printf("\n%s installation(s), %s on disk\n",
			humanize.Comma(int64(len(installations))), ui.FormatSize(total))
		return nil
	},
}
