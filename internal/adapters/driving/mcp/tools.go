package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sommelier/internal/core/domain"
	"github.com/custodia-labs/sommelier/internal/logger"
)

// RecommendInput is the input schema for the recommend tool.
type RecommendInput struct {
	Query string `json:"query,omitempty" jsonschema:"a book title or a plot you love"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of recommendations to return (default all)"`
}

// RecommendOutput is the output schema for the recommend tool.
type RecommendOutput struct {
	Query           string                 `json:"query"`
	Recommendations []RecommendationOutput `json:"recommendations"`
	Count           int                    `json:"count"`
}

// RecommendationOutput represents a single recommended book.
type RecommendationOutput struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Similarity  int      `json:"similarity"`
	Match       string   `json:"match"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
	Cover       string   `json:"cover"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recommend",
		Description: "Recommend books ranked by plot similarity",
	}, s.handleRecommend)
}

// handleRecommend handles the recommend tool invocation.
// The ranking is precomputed, so the query does not change the result.
func (s *Server) handleRecommend(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecommendInput,
) (*mcp.CallToolResult, RecommendOutput, error) {
	query := strings.TrimSpace(input.Query)
	logger.Debug("mcp: recommend query=%q limit=%d", query, input.Limit)

	recs, err := s.ports.Recommendation.Top(ctx)
	if err != nil {
		return nil, RecommendOutput{}, err
	}

	if input.Limit > 0 && input.Limit < len(recs) {
		recs = recs[:input.Limit]
	}

	output := RecommendOutput{
		Query:           query,
		Recommendations: toOutputs(recs),
		Count:           len(recs),
	}
	return nil, output, nil
}

func toOutputs(recs []domain.Recommendation) []RecommendationOutput {
	out := make([]RecommendationOutput, len(recs))
	for i := range recs {
		out[i] = RecommendationOutput{
			ID:          recs[i].ID,
			Title:       recs[i].Title,
			Author:      recs[i].Author,
			Similarity:  recs[i].Similarity,
			Match:       recs[i].MatchLabel(),
			Description: recs[i].Description,
			Keywords:    recs[i].Keywords,
			Cover:       recs[i].CoverRef(),
		}
	}
	return out
}
