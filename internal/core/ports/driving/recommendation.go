package driving

import (
	"context"

	"github.com/custodia-labs/sommelier/internal/core/domain"
)

// RecommendationService provides the ranked recommendation list.
type RecommendationService interface {
	// Top returns the recommendations ordered by similarity, highest first.
	// The result does not depend on any query.
	Top(ctx context.Context) ([]domain.Recommendation, error)
}
