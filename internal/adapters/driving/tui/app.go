package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/views/recommend"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/sommelier/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	styles *styles.Styles
	keymap *keymap.KeyMap

	// recommendView is the search box and recommendation grid.
	recommendView *recommend.View
	settingsView  *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// The analysis delay comes from the settings service when one is provided.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	view := recommend.NewView(s, km, ports.Recommendation)

	if ports.Settings != nil {
		cfg, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("tui: using default settings: %v", err)
		} else {
			_ = view.SetDelay(cfg.Analysis.Delay)
		}
	}

	return &App{
		ports:         ports,
		styles:        s,
		keymap:        km,
		recommendView: view,
		settingsView:  settings.NewView(s, ports.Settings),
		currentView:   messages.ViewRecommend,
	}, nil
}

// WithContext binds pending work in the views to ctx.
func (a *App) WithContext(ctx context.Context) *App {
	a.recommendView.WithContext(ctx)
	return a
}

// WithAnalyzeDelay overrides the analysis delay.
func (a *App) WithAnalyzeDelay(d time.Duration) *App {
	a.recommendView.WithDelay(d)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Book Sommelier"),
		a.recommendView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.SettingsChanged:
		// Applies to the next submission even if another view is showing.
		a.recommendView, cmd = a.recommendView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		if msg.Err == nil && msg.Settings != nil {
			a.recommendView, _ = a.recommendView.Update(messages.SettingsChanged{Settings: msg.Settings})
		}
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewRecommend {
			a.recommendView, cmd = a.recommendView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		a.Close()
		return a, tea.Quit
	}

	// Forward other messages to active view
	if a.currentView == messages.ViewRecommend {
		a.recommendView, cmd = a.recommendView.Update(msg)
		a.err = a.recommendView.Err()
	}
	return a, cmd
}

// handleKeyMsg applies global bindings before delegating to the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if keymap.Matches(key, a.keymap.Quit) {
		a.Close()
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewHelp:
		if keymap.Matches(key, a.keymap.Back) || keymap.Matches(key, a.keymap.Help) {
			return a, a.switchTo(messages.ViewRecommend)
		}
		return a, nil

	case messages.ViewSettings:
		if keymap.Matches(key, a.keymap.Back) || keymap.Matches(key, a.keymap.Settings) {
			return a, a.switchTo(messages.ViewRecommend)
		}
		var cmd tea.Cmd
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ViewRecommend:
		if keymap.Matches(key, a.keymap.Help) {
			return a, a.switchTo(messages.ViewHelp)
		}
		if keymap.Matches(key, a.keymap.Settings) {
			return a, a.switchTo(messages.ViewSettings)
		}
		var cmd tea.Cmd
		a.recommendView, cmd = a.recommendView.Update(msg)
		return a, cmd
	}

	return a, nil
}

// switchTo changes the active view. Leaving the recommendation view tears
// it down; entering it mounts a fresh one.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	if view == a.currentView {
		return nil
	}
	logger.Debug("tui: %s -> %s", a.currentView, view)

	if a.currentView == messages.ViewRecommend {
		a.recommendView.Close()
	}
	a.currentView = view

	switch view {
	case messages.ViewRecommend:
		a.recommendView.Reset()
		if a.ready {
			a.recommendView.SetDimensions(a.width, a.height)
		}
		return a.recommendView.Init()
	case messages.ViewSettings:
		a.settingsView.Reset()
		return a.settingsView.Init()
	}
	return nil
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewRecommend:
		return a.recommendView.View()
	default:
		return a.recommendView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Help.Render(`Help

Search:
  (type)       Describe a book or plot
  enter        Analyze & Recommend
  tab          Switch between field and button
  enter/space  Press the focused button

General:
  f1           Toggle help
  f2           Settings
  esc          Back
  ctrl+c       Quit

[esc] back to recommendations`)
}

// Close tears down the active view and cancels pending work.
func (a *App) Close() {
	a.recommendView.Close()
}

// RecommendView returns the recommendation view.
func (a *App) RecommendView() *recommend.View {
	return a.recommendView
}

// SettingsView returns the settings view.
func (a *App) SettingsView() *settings.View {
	return a.settingsView
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.recommendView.Query()
}

// Busy reports whether an analysis is in progress.
func (a *App) Busy() bool {
	return a.recommendView.Busy()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.recommendView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
