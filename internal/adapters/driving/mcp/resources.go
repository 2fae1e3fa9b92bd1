package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for sommelier resources.
	uriScheme = "sommelier://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "recommendations",
		Name:        "recommendations",
		Description: "Top book recommendations ranked by similarity",
		MIMEType:    "application/json",
	}, s.handleRecommendationsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "recommendations/{id}",
		Name:        "recommendation",
		Description: "A single recommended book",
		MIMEType:    "application/json",
	}, s.handleRecommendationResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current sommelier settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleRecommendationsResource returns the full ranked list.
func (s *Server) handleRecommendationsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	recs, err := s.ports.Recommendation.Top(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}
	return jsonResult(req.Params.URI, toOutputs(recs))
}

// handleRecommendationResource returns one book by ID.
func (s *Server) handleRecommendationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := extractRecommendationID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	recs, err := s.ports.Recommendation.Top(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}
	for _, out := range toOutputs(recs) {
		if out.ID == id {
			return jsonResult(req.Params.URI, out)
		}
	}
	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// handleSettingsResource returns the current settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	type settingsInfo struct {
		AnalyzeDelayMS int64 `json:"analyze_delay_ms"`
	}
	return jsonResult(req.Params.URI, settingsInfo{
		AnalyzeDelayMS: settings.Analysis.Delay.Milliseconds(),
	})
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRecommendationID extracts the ID from a URI like sommelier://recommendations/{id}.
func extractRecommendationID(uri string) (int, bool) {
	const prefix = uriScheme + "recommendations/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return 0, false
	}
	return id, true
}
