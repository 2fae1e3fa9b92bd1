package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/sommelier/internal/core/domain"
	"github.com/custodia-labs/sommelier/internal/core/ports/driven"
	"github.com/custodia-labs/sommelier/internal/core/ports/driving"
	"github.com/custodia-labs/sommelier/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyAnalyzeDelayMS = "analysis.delay_ms"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Analysis: domain.AnalysisSettings{
			Delay: s.getDelay(keyAnalyzeDelayMS, defaults.Analysis.Delay),
		},
	}

	return settings, nil
}

// SetAnalyzeDelay validates and persists the analysis delay.
func (s *SettingsService) SetAnalyzeDelay(d time.Duration) error {
	if err := domain.ValidateAnalyzeDelay(d); err != nil {
		return err
	}
	if err := s.configStore.Set(keyAnalyzeDelayMS, d.Milliseconds()); err != nil {
		return fmt.Errorf("save analysis delay: %w", err)
	}
	logger.Debug("Analysis delay set to %s", d)
	return nil
}

// Reload re-reads the configuration store and returns fresh settings.
func (s *SettingsService) Reload() (*domain.AppSettings, error) {
	if err := s.configStore.Load(); err != nil {
		return nil, fmt.Errorf("reload config: %w", err)
	}
	return s.Get()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// getDelay reads a millisecond duration, returning fallback if unset or invalid.
func (s *SettingsService) getDelay(key string, fallback time.Duration) time.Duration {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	d := time.Duration(s.configStore.GetInt(key)) * time.Millisecond
	if err := domain.ValidateAnalyzeDelay(d); err != nil {
		logger.Warn("Ignoring %s: %v", key, err)
		return fallback
	}
	return d
}
