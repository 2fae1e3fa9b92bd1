package tui

import "errors"

// ErrMissingRecommendationService is returned when the recommendation service is not provided.
var ErrMissingRecommendationService = errors.New("tui: recommendation service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
