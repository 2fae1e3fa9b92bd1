package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/sommelier/internal/core/domain"
	"github.com/custodia-labs/sommelier/internal/logger"
)

var recommendJSON bool

var recommendCmd = &cobra.Command{
	Use:   "recommend [query]",
	Short: "Print the top book recommendations",
	Long: `Prints the ranked book recommendations.

The query describes a book or plot you love. Recommendations are
precomputed, so the query does not change the list and a blank query
is accepted.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output recommendations as JSON")
	rootCmd.AddCommand(recommendCmd)
}

// outputWidth is the column budget for wrapped descriptions.
var outputWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func runRecommend(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))

	if recommendationService == nil {
		return errNoRecommendationService
	}

	logger.With(map[string]any{"query": query}).Debug("recommend")

	recs, err := recommendationService.Top(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading recommendations: %w", err)
	}

	if recommendJSON {
		return outputRecommendJSON(cmd, recs)
	}
	return outputRecommendTable(cmd, recs)
}

func outputRecommendJSON(cmd *cobra.Command, recs []domain.Recommendation) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecommendTable(cmd *cobra.Command, recs []domain.Recommendation) error {
	if len(recs) == 0 {
		cmd.Println("No recommendations found.")
		return nil
	}

	wrap := lipgloss.NewStyle().Width(outputWidth() - 6)

	cmd.Println("Top Recommendations:")
	cmd.Println()
	for i := range recs {
		r := recs[i]
		// Format: [N] Title - Author (NN% Match)
		cmd.Printf("  [%d] %s - %s (%s)\n", i+1, r.Title, r.Author, r.MatchLabel())
		for _, line := range strings.Split(wrap.Render(r.Description), "\n") {
			cmd.Printf("      %s\n", strings.TrimRight(line, " "))
		}
		if len(r.Keywords) > 0 {
			cmd.Printf("      Keywords: %s\n", strings.Join(r.Keywords, ", "))
		}
		cmd.Println()
	}
	return nil
}
