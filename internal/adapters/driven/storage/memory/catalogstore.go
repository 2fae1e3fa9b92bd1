package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/sommelier/internal/core/domain"
	"github.com/custodia-labs/sommelier/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
type CatalogStore struct {
	mu      sync.RWMutex
	records []domain.Recommendation
}

// NewCatalogStore creates a catalog holding a copy of records.
func NewCatalogStore(records []domain.Recommendation) *CatalogStore {
	return &CatalogStore{records: cloneRecords(records)}
}

// NewDefaultCatalogStore creates a catalog holding the built-in picks.
func NewDefaultCatalogStore() *CatalogStore {
	return NewCatalogStore(DefaultRecommendations())
}

// List returns a copy of every record in catalog order.
func (s *CatalogStore) List(ctx context.Context) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.records), nil
}

func cloneRecords(records []domain.Recommendation) []domain.Recommendation {
	if records == nil {
		return nil
	}
	out := make([]domain.Recommendation, len(records))
	for i, r := range records {
		r.Keywords = append([]string(nil), r.Keywords...)
		out[i] = r
	}
	return out
}

// DefaultRecommendations returns the built-in recommendation set,
// already ranked by similarity.
func DefaultRecommendations() []domain.Recommendation {
	return []domain.Recommendation{
		{
			ID:         1,
			Title:      "The Midnight Library",
			Author:     "Matt Haig",
			Similarity: 92,
			Description: "A story about a woman who gets a chance to explore all the different lives " +
				"she could have lived in an infinite library of parallel worlds.",
			Keywords: []string{"Fantasy", "Life", "Magic"},
			Cover:    "/midnight-library-cover.png",
		},
		{
			ID:         2,
			Title:      "The Song of Achilles",
			Author:     "Madeline Miller",
			Similarity: 88,
			Description: "An intimate retelling of the Trojan War centered on the relationship " +
				"between Achilles and Patroclus during ancient Greece.",
			Keywords: []string{"Mythology", "Romance", "War"},
			Cover:    "/song-of-achilles-cover.png",
		},
		{
			ID:         3,
			Title:      "Piranesi",
			Author:     "Susanna Clarke",
			Similarity: 85,
			Description: "A mysterious tale set in a house of impossible architecture where a man " +
				"awakens with no memory of his past in a labyrinthine world.",
			Keywords: []string{"Mystery", "Fantasy", "Surreal"},
			Cover:    "/book-cover-piranesi.jpg",
		},
		{
			ID:         4,
			Title:      "The Starless Sea",
			Author:     "Erin Morgenstern",
			Similarity: 81,
			Description: "An enchanting journey through a magical underground library where a college " +
				"student discovers a book that contains the story of his own life.",
			Keywords: []string{"Library", "Adventure", "Magic"},
			Cover:    "/book-cover-starless-sea.jpg",
		},
		{
			ID:         5,
			Title:      "Howl's Moving Castle",
			Author:     "Diana Wynne Jones",
			Similarity: 78,
			Description: "A young woman cursed into an old body joins a mysterious wizard and his " +
				"magical castle, embarking on an unexpected adventure.",
			Keywords: []string{"Magic", "Fantasy", "Romance"},
			Cover:    "/book-cover-howls-moving-castle.jpg",
		},
	}
}
