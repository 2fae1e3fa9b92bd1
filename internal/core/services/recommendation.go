package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sommelier/internal/core/domain"
	"github.com/custodia-labs/sommelier/internal/core/ports/driven"
	"github.com/custodia-labs/sommelier/internal/core/ports/driving"
	"github.com/custodia-labs/sommelier/internal/logger"
)

// Ensure RecommendationService implements the interface.
var _ driving.RecommendationService = (*RecommendationService)(nil)

// RecommendationService serves the ranked recommendation list.
type RecommendationService struct {
	catalog driven.CatalogStore
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(catalog driven.CatalogStore) *RecommendationService {
	return &RecommendationService{catalog: catalog}
}

// Top returns every displayable record ordered by similarity, highest first.
// Records that fail validation are dropped, as are later records reusing an
// earlier ID. An empty result is ErrNotFound.
func (s *RecommendationService) Top(ctx context.Context) ([]domain.Recommendation, error) {
	logger.Section("Recommendations")

	if s.catalog == nil {
		return nil, fmt.Errorf("list catalog: %w", domain.ErrNotFound)
	}

	records, err := s.catalog.List(ctx)
	if err != nil {
		logger.Warn("Catalog lookup failed: %v", err)
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	logger.Debug("Catalog returned %d records", len(records))

	valid := make([]domain.Recommendation, 0, len(records))
	seen := make(map[int]struct{}, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			logger.Warn("Skipping record: %v", err)
			continue
		}
		if _, dup := seen[records[i].ID]; dup {
			logger.Warn("Skipping record: duplicate id %d", records[i].ID)
			continue
		}
		seen[records[i].ID] = struct{}{}
		valid = append(valid, records[i])
	}

	if len(valid) == 0 {
		return nil, fmt.Errorf("list catalog: %w", domain.ErrNotFound)
	}

	if !domain.IsRanked(valid) {
		logger.Debug("Catalog out of order, sorting by similarity")
		domain.SortBySimilarity(valid)
	}

	return valid, nil
}
