// Package mcp provides an MCP (Model Context Protocol) server adapter for sommelier.
// It lets AI assistants read the book recommendations over stdio.
package mcp

import "errors"

// ErrMissingRecommendationService is returned when the recommendation service is not provided.
var ErrMissingRecommendationService = errors.New("mcp: recommendation service is required")
