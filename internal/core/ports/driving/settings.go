package driving

import (
	"time"

	"github.com/custodia-labs/sommelier/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// SetAnalyzeDelay validates and persists the analysis delay.
	SetAnalyzeDelay(d time.Duration) error

	// Reload re-reads settings from storage.
	Reload() (*domain.AppSettings, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
