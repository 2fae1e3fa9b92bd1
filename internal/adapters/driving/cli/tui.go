package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sommelier/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sommelier/internal/logger"
)

var tuiDelay time.Duration

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive Book Sommelier view.

Describe a book or plot you love and press enter to analyze.

Controls:
  Enter       - Analyze & Recommend
  Tab         - Switch between search field and button
  F1          - Toggle help
  Esc         - Back
  Ctrl+C      - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().DurationVar(&tuiDelay, "delay", 0, "analysis delay for this run (default from settings)")
	rootCmd.AddCommand(tuiCmd)
}

// newProgram builds the bubbletea program. Tests replace it.
var newProgram = func(model tea.Model, opts ...tea.ProgramOption) programRunner {
	return tea.NewProgram(model, opts...)
}

// programRunner is the part of tea.Program the TUI command uses.
type programRunner interface {
	Run() (tea.Model, error)
	Send(msg tea.Msg)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	// Keep the alternate screen clean unless logs go to a file.
	if logFile == "" {
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)
	}

	ports := tui.NewPorts(recommendationService, settingsService)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	defer app.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	if tuiDelay != 0 {
		if err := app.RecommendView().SetDelay(tuiDelay); err != nil {
			return fmt.Errorf("invalid --delay: %w", err)
		}
	}

	p := newProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if err := watchSettings(ctx, p); err != nil {
		logger.Warn("settings hot reload disabled: %v", err)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// watchSettings forwards reloaded settings into the running program.
func watchSettings(ctx context.Context, p programRunner) error {
	if configPath == "" || settingsService == nil {
		return nil
	}
	w := file.NewWatcher(configPath)
	return w.Start(ctx, func() {
		settings, err := settingsService.Reload()
		if err != nil {
			logger.Warn("reloading settings: %v", err)
			return
		}
		logger.Debug("settings reloaded: delay=%s", settings.Analysis.Delay)
		p.Send(messages.SettingsChanged{Settings: settings})
	})
}
