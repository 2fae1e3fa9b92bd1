package mcp

import (
	"github.com/custodia-labs/sommelier/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Recommendation provides the ranked recommendation list.
	Recommendation driving.RecommendationService

	// Settings exposes the current settings. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Recommendation == nil {
		return ErrMissingRecommendationService
	}
	return nil
}
