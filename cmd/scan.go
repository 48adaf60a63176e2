package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/aimole/internal/catalog"
	"github.com/lakshaymaurya-felt/aimole/internal/scan"
	"github.com/lakshaymaurya-felt/aimole/internal/tui"
	"github.com/lakshaymaurya-felt/aimole/internal/ui"
)

var scanStatic bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan known AI tool cache roots",
	Long:  "Scan the known cache roots of installed AI coding tools and browse them interactively.",
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanStatic, "static", false, "Print a plain tree instead of the interactive browser")
}

func runScan(cmd *cobra.Command, args []string) error {
	home, _, store, classifier, err := loadCore()
	if err != nil {
		return err
	}

	roots := catalog.ScanRoots(runtime.GOOS)
	debugf("probing %d roots for %s", len(roots), runtime.GOOS)
	scanner := scan.NewScanner(home, roots, classifier)

	// The interactive browser needs a terminal; fall back to the static
	// tree when stdout is piped or --static is set.
	if scanStatic || !isatty.IsTerminal(os.Stdout.Fd()) {
		printStaticTree(scanner.Scan())
		return nil
	}

	model := tui.New(scanner, store)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run scan browser: %w", err)
	}
	return nil
}

// printStaticTree prints scan results as a plain-text tree. ASCII
// connectors keep the output readable in any console.
func printStaticTree(result scan.ScanResult) {
	if len(result.Nodes) == 0 {
		fmt.Println("  No known AI tool caches found.")
		return
	}

	fmt.Printf("  AI tool caches: %s\n", ui.FormatSize(result.TotalSize))
	fmt.Println("  " + strings.Repeat("-", 58))

	for _, node := range result.Nodes {
		fmt.Printf("  %s  %s  [%s]  %s\n", node.Path, ui.FormatSize(node.Size), node.Tier.Label(), node.Description)
		for i, child := range node.Children {
			connector := "+--"
			if i == len(node.Children)-1 {
				connector = `\--`
			}
			fmt.Printf("  %s %s  %s  [%s]  %s\n", connector, child.Name, ui.FormatSize(child.Size), child.Tier.Label(), child.Description)
		}
	}

	fmt.Println("  " + strings.Repeat("-", 58))
	fmt.Printf("  Total: %s\n", ui.FormatSize(result.TotalSize))
}
