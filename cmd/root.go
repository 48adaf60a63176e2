package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/aimole/internal/config"
	"github.com/lakshaymaurya-felt/aimole/internal/overrides"
	"github.com/lakshaymaurya-felt/aimole/internal/safety"
)

var (
	// Global flags
	debug bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "aim",
	Short: "Find and clean AI coding-tool caches",
	Long: `AIMole - find and clean AI coding-tool caches.

Discovers cache directories left behind by AI coding tools (Cursor,
Windsurf, Claude Code, Copilot, Aider, ...), sizes them, classifies
their deletion risk, and deletes them safely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Without a subcommand, run the interactive scan browser.
		return runScan(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aimole %s (%s) built %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")

	// Register all subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(overrideCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// debugf logs to stderr when --debug is set.
func debugf(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
	}
}

// loadCore resolves the home directory and assembles the configuration,
// override store, and classifier shared by most commands.
func loadCore() (home string, cfg config.Config, store *overrides.FileStore, classifier *safety.Classifier, err error) {
	home, err = os.UserHomeDir()
	if err != nil {
		return "", config.Config{}, nil, nil, fmt.Errorf("resolve home directory: %w", err)
	}

	dir, err := config.Dir()
	if err != nil {
		return "", config.Config{}, nil, nil, err
	}

	cfg, err = config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		return "", config.Config{}, nil, nil, err
	}
	debugf("config dir: %s, default tier: %s", dir, cfg.DefaultTier)

	store, err = overrides.Open(filepath.Join(dir, "overrides.yaml"))
	if err != nil {
		return "", config.Config{}, nil, nil, err
	}

	classifier = safety.NewClassifier(store, cfg.DefaultTier)
	return home, cfg, store, classifier, nil
}
