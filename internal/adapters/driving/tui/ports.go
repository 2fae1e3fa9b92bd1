// Package tui provides an interactive terminal user interface for sommelier.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/sommelier/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Recommendation provides the ranked recommendation list.
	Recommendation driving.RecommendationService

	// Settings provides the analysis delay. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	recommendation driving.RecommendationService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Recommendation: recommendation,
		Settings:       settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Recommendation == nil {
		return ErrMissingRecommendationService
	}
	return nil
}
