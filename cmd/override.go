package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/aimole/internal/safety"
)

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Manage per-path safety tier overrides",
	Long:  "Persisted overrides supersede computed classification until removed.",
}

var overrideSetCmd = &cobra.Command{
	Use:   "set <path> <safe|caution|danger>",
	Short: "Set the tier for a path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tier, err := safety.ParseTier(args[1])
		if err != nil {
			return err
		}
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve %s: %w", args[0], err)
		}
		_, _, store, _, err := loadCore()
		if err != nil {
			return err
		}
		if err := store.Set(abs, tier); err != nil {
			return err
		}
		fmt.Printf("%s → %s\n", abs, tier.Label())
		return nil
	},
}

var overrideUnsetCmd = &cobra.Command{
	Use:   "unset <path>",
	Short: "Remove the override for a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve %s: %w", args[0], err)
		}
		_, _, store, _, err := loadCore()
		if err != nil {
			return err
		}
		if err := store.Remove(abs); err != nil {
			return err
		}
		fmt.Printf("override removed: %s\n", abs)
		return nil
	},
}

var overrideClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, store, _, err := loadCore()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("all overrides removed")
		return nil
	},
}

var overrideListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, store, _, err := loadCore()
		if err != nil {
			return err
		}
		all := store.All()
		if len(all) == 0 {
			fmt.Println("no overrides set")
			return nil
		}
		paths := make([]string, 0, len(all))
		for path := range all {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			fmt.Printf("  %-8s %s\n", all[path].Label(), path)
		}
		return nil
	},
}

func init() {
	overrideCmd.AddCommand(overrideSetCmd)
	overrideCmd.AddCommand(overrideUnsetCmd)
	overrideCmd.AddCommand(overrideClearCmd)
	overrideCmd.AddCommand(overrideListCmd)
}
