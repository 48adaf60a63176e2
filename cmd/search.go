package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/aimole/internal/search"
	"github.com/lakshaymaurya-felt/aimole/internal/ui"
)

var searchSync bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search broad locations for cache directories by name",
	Long: `Search the home directory and platform application-data roots for
directories whose names contain the query (case-insensitive).
Interrupt with Ctrl-C; results already printed remain valid.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchSync, "sync", false, "Collect all results before printing (no progress)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	// The engine assumes a valid query; the length check lives here.
	if len(query) < 2 {
		return fmt.Errorf("query must be at least 2 characters")
	}

	home, _, _, _, err := loadCore()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine := search.NewEngine(search.DefaultRoots(home))

	if searchSync {
		printResults(engine.SearchSync(ctx, query))
		return nil
	}

	// Live progress only when stderr is a terminal; piped runs stay quiet.
	var onProgress search.ProgressFunc
	showProgress := isatty.IsTerminal(os.Stderr.Fd())
	if showProgress {
		onProgress = func(p search.Progress) {
			fmt.Fprintf(os.Stderr, "\r\033[K  %s/%s (%3.0f%%) %s",
				humanize.Comma(int64(p.Processed)), humanize.Comma(int64(p.Total)),
				p.Percentage, p.CurrentPath)
		}
	}

	count := 0
	for result := range engine.Run(ctx, query, onProgress) {
		if showProgress {
			fmt.Fprint(os.Stderr, "\r\033[K")
		}
		fmt.Printf("  %-16s %10s  %s  (matched %q)\n",
			result.Tool, ui.FormatSize(result.Size), result.Path, result.MatchedFragment)
		count++
	}
	if showProgress {
		fmt.Fprint(os.Stderr, "\r\033[K")
	}
	fmt.Printf("\n%d match(es)\n", count)
	return nil
}

func printResults(results []search.Result) {
	for _, result := range results {
		fmt.Printf("  %-16s %10s  %s  (matched %q)\n",
			result.Tool, ui.FormatSize(result.Size), result.Path, result.MatchedFragment)
	}
	fmt.Printf("\n%d match(es)\n", len(results))
}
