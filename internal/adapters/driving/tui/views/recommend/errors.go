package recommend

import "errors"

// Error definitions for the recommendation view.
var (
	// ErrNoRecommendationService indicates that no recommendation service was provided.
	ErrNoRecommendationService = errors.New("recommendation service is required")
)
