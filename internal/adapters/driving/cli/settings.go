package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure sommelier settings.

Settings live in config.toml inside the configuration directory.
A running interactive view picks up changes to the file immediately.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetDelayCmd = &cobra.Command{
	Use:   "set-delay [duration]",
	Short: "Set the analysis delay",
	Long: `Set how long an analysis takes before the view becomes idle again.

The duration uses Go syntax, for example 750ms, 1s or 2.5s.
It must be positive and at most one minute.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsSetDelay,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetDelayCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	defaults := settingsService.GetDefaults()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Analysis]")
	cmd.Printf("  Delay: %s", settings.Analysis.Delay)
	if settings.Analysis.Delay == defaults.Analysis.Delay {
		cmd.Print(" (default)")
	}
	cmd.Println()

	if configPath != "" {
		cmd.Println()
		cmd.Printf("Config file: %s\n", configPath)
	}
	return nil
}

func runSettingsSetDelay(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	d, err := time.ParseDuration(args[0])
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", args[0], err)
	}

	if err := settingsService.SetAnalyzeDelay(d); err != nil {
		return fmt.Errorf("failed to set delay: %w", err)
	}

	cmd.Printf("Analysis delay set to %s\n", d)
	return nil
}
