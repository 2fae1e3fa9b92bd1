// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sommelier/internal/core/domain"
	"github.com/custodia-labs/sommelier/internal/core/ports/driving"
)

// Key constants for key handling.
const (
	keyUp    = "up"
	keyDown  = "down"
	keyEnter = "enter"
)

// DelayPresets are the analysis delays offered for selection.
var DelayPresets = []time.Duration{
	500 * time.Millisecond,
	time.Second,
	1500 * time.Millisecond,
	2 * time.Second,
	3 * time.Second,
	5 * time.Second,
}

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	// Current settings
	settings *domain.AppSettings
	err      error
	notice   string

	options  []time.Duration
	selected int

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	options := delayOptions(domain.DefaultAnalyzeDelay)
	return &View{
		styles:          s,
		settingsService: settingsService,
		options:         options,
		selected:        max(indexOf(options, domain.DefaultAnalyzeDelay), 0),
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := svc.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// saveDelay returns a command that persists d.
func (v *View) saveDelay(d time.Duration) tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		if err := svc.SetAnalyzeDelay(d); err != nil {
			return messages.SettingsSaved{Err: err}
		}
		settings, err := svc.Get()
		return messages.SettingsSaved{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.setSettings(msg.Settings)
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.notice = ""
			return v, nil
		}
		v.setSettings(msg.Settings)
		v.notice = "Saved"
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) setSettings(settings *domain.AppSettings) {
	if settings == nil {
		return
	}
	v.settings = settings
	v.err = nil
	v.options = delayOptions(settings.Analysis.Delay)
	v.selected = max(indexOf(v.options, settings.Analysis.Delay), 0)
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case keyUp, "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(v.options)-1 {
			v.selected++
		}
	case keyEnter:
		if v.settings != nil && v.options[v.selected] == v.settings.Analysis.Delay {
			return v, nil
		}
		v.notice = ""
		return v, v.saveDelay(v.options[v.selected])
	}
	return v, nil
}

// View renders the settings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.SectionTitle.Render("Analysis delay"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("How long an analysis runs before the view is ready again."))
	b.WriteString("\n\n")

	var current time.Duration
	if v.settings != nil {
		current = v.settings.Analysis.Delay
	}

	for i, d := range v.options {
		cursor := "  "
		if i == v.selected {
			cursor = "> "
		}
		line := cursor + d.String()
		if d == current {
			line += " (current)"
		}
		if i == v.selected {
			b.WriteString(v.styles.Normal.Bold(true).Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}
	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(v.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] select  [enter] save  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset clears transient state before the view is shown again.
func (v *View) Reset() {
	v.err = nil
	v.notice = ""
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Selected returns the highlighted delay.
func (v *View) Selected() time.Duration {
	return v.options[v.selected]
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// delayOptions returns the presets plus current when it is not one of them.
func delayOptions(current time.Duration) []time.Duration {
	opts := append([]time.Duration(nil), DelayPresets...)
	if indexOf(opts, current) < 0 && domain.ValidateAnalyzeDelay(current) == nil {
		opts = append(opts, current)
		sort.Slice(opts, func(i, j int) bool { return opts[i] < opts[j] })
	}
	return opts
}

func indexOf(opts []time.Duration, d time.Duration) int {
	for i, o := range opts {
		if o == d {
			return i
		}
	}
	return -1
}
