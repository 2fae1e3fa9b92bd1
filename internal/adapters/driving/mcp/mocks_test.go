package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/sommelier/internal/core/domain"
)

// mockRecommendationService is a mock implementation of driving.RecommendationService.
type mockRecommendationService struct {
	recs []domain.Recommendation
	err  error
}

func (m *mockRecommendationService) Top(_ context.Context) ([]domain.Recommendation, error) {
	return m.recs, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) SetAnalyzeDelay(_ time.Duration) error {
	return m.err
}

func (m *mockSettingsService) Reload() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func sampleRecommendations() []domain.Recommendation {
	return []domain.Recommendation{
		{
			ID: 1, Title: "The Midnight Library", Author: "Matt Haig", Similarity: 92,
			Description: "Between life and death.", Keywords: []string{"Fantasy", "Life"},
			Cover: "/midnight-library-cover.png",
		},
		{
			ID: 3, Title: "Piranesi", Author: "Susanna Clarke", Similarity: 85,
			Description: "A house of infinite halls.",
		},
	}
}
