// Package cli provides the cobra command tree for sommelier.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/sommelier/internal/core/ports/driving"
	"github.com/custodia-labs/sommelier/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	logFile   string
)

// Services wired by the entrypoint.
var (
	recommendationService driving.RecommendationService
	settingsService       driving.SettingsService

	// configPath is the settings file watched for hot reload.
	// Empty disables watching.
	configPath string
)

// Services bundles the core services the commands drive.
type Services struct {
	Recommendation driving.RecommendationService
	Settings       driving.SettingsService
	ConfigPath     string
}

// ServicesFactory builds services once the global flags are parsed.
// configDir is empty unless --config-dir was given.
type ServicesFactory func(configDir string) (*Services, error)

var servicesFactory ServicesFactory

// logCloser closes the --log-file handle after the command finishes.
var logCloser io.Closer

// isTerminal reports whether stdin and stdout are attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "sommelier",
	Short: "Book recommendations in your terminal",
	Long: `Book Sommelier suggests your next read based on plot similarity,
not just popularity.

Run without arguments in a terminal to open the interactive view.
When output is piped the recommendations are printed instead.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupRun,
	PersistentPostRunE: teardownRun,
	RunE:               runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.sommelier)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to every command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices installs the services used by all commands.
func SetServices(s *Services) {
	if s == nil {
		recommendationService = nil
		settingsService = nil
		configPath = ""
		return
	}
	recommendationService = s.Recommendation
	settingsService = s.Settings
	configPath = s.ConfigPath
}

// SetServicesFactory defers service construction until flags are parsed.
func SetServicesFactory(f ServicesFactory) {
	servicesFactory = f
}

func setupRun(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logger.SetOutput(f)
		logCloser = f
	}

	if servicesFactory == nil || recommendationService != nil {
		return nil
	}
	s, err := servicesFactory(configDir)
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(s)
	return nil
}

func teardownRun(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	logger.SetOutput(os.Stderr)
	err := logCloser.Close()
	logCloser = nil
	return err
}

func runRoot(cmd *cobra.Command, args []string) error {
	if isTerminal() {
		return runTUI(cmd, args)
	}
	logger.Debug("stdout is not a terminal, printing recommendations")
	return runRecommend(cmd, args)
}

// errNoRecommendationService is returned when no recommendation service is wired.
var errNoRecommendationService = errors.New("recommendation service not configured")

// errNoSettingsService is returned when no settings service is wired.
var errNoSettingsService = errors.New("settings service not configured")
