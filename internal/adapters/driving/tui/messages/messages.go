// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/sommelier/internal/core/domain"
)

// RecommendationsLoaded carries the ranked list for the current mount.
type RecommendationsLoaded struct {
	Recommendations []domain.Recommendation
	Err             error
}

// AnalysisCompleted fires when a submission's delay has elapsed.
// ID identifies the submission so stale completions can be ignored.
type AnalysisCompleted struct {
	ID string
}

// SettingsChanged carries settings reloaded from the config file.
type SettingsChanged struct {
	Settings *domain.AppSettings
}

// SettingsLoaded is sent when the settings view has read the current settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved is sent after the settings view persisted a change.
type SettingsSaved struct {
	Settings *domain.AppSettings
	Err      error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewRecommend is the search box and recommendation grid.
	ViewRecommend ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
	// ViewSettings is the settings view.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewRecommend:
		return "recommend"
	case ViewHelp:
		return "help"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
