package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/aimole/internal/catalog"
	"github.com/lakshaymaurya-felt/aimole/internal/deleter"
	"github.com/lakshaymaurya-felt/aimole/internal/safety"
	"github.com/lakshaymaurya-felt/aimole/internal/scan"
	"github.com/lakshaymaurya-felt/aimole/internal/ui"
)

var (
	cleanDryRun bool
	cleanYes    bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean <path>...",
	Short: "Delete cache directories",
	Long: `Delete the given cache files or directories permanently. Each path is
deleted independently; one failure never stops the rest. Danger-tier
paths require an extra confirmation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Preview what would be deleted without deleting")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Skip confirmation prompts")
}

func runClean(cmd *cobra.Command, args []string) error {
	_, _, _, classifier, err := loadCore()
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(args))
	var dangers []string
	var previewTotal int64
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", arg, err)
		}
		paths = append(paths, abs)

		tier := tierOf(classifier, abs)
		if tier == safety.TierDanger {
			dangers = append(dangers, abs)
		}
		if cleanDryRun {
			size := sizeOf(abs)
			previewTotal += size
			fmt.Printf("  would delete %s  [%s]  %s\n", ui.FormatSize(size), tier.Label(), abs)
		}
	}

	if cleanDryRun {
		fmt.Printf("\nwould free %s across %d path(s)\n", ui.FormatSize(previewTotal), len(paths))
		return nil
	}

	if !cleanYes {
		if ok, err := confirmClean(paths, dangers); err != nil || !ok {
			if err == nil {
				fmt.Println("Aborted.")
			}
			return err
		}
	}

	batch := deleter.DeleteMany(paths)
	printBatchSummary(batch)
	return nil
}

// tierOf classifies a standalone path by attributing its basename to a
// known tool, the same chain the scanner uses.
func tierOf(classifier *safety.Classifier, abs string) safety.Tier {
	base := filepath.Base(abs)
	var buckets *safety.Buckets
	if sig, _, ok := catalog.MatchTool(base); ok {
		buckets = &sig.Buckets
	}
	tier, _ := classifier.Classify(buckets, base, abs)
	return tier
}

func sizeOf(abs string) int64 {
	info, err := os.Lstat(abs)
	if err != nil {
		return 0
	}
	if info.IsDir() {
		return scan.DirSize(abs)
	}
	return info.Size()
}

// confirmClean prompts before deleting; danger-tier paths get a second,
// explicit prompt. Tier gating lives here at the presentation boundary,
// not inside the deletion service.
func confirmClean(paths, dangers []string) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete %d path(s) permanently?", len(paths))).
			Description("Deletions cannot be undone.").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	if !confirmed || len(dangers) == 0 {
		return confirmed, nil
	}

	dangerOK := false
	form = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("%d path(s) are classified DANGER. Delete anyway?", len(dangers))).
			Description("Danger-tier directories are required for their tool to function.").
			Value(&dangerOK),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return dangerOK, nil
}

func printBatchSummary(batch deleter.BatchResult) {
	for _, result := range batch.Results {
		if result.Success {
			fmt.Printf("  deleted %s  (%s freed)\n", result.Path, ui.FormatSize(result.FreedBytes))
		} else {
			fmt.Printf("  FAILED  %s: %s\n", result.Path, result.Err)
		}
	}
	fmt.Printf("\n%d deleted, %d failed, %s freed\n",
		batch.SuccessCount, batch.FailCount, ui.FormatSize(batch.TotalFreed))
}
