package driven

import (
	"context"

	"github.com/custodia-labs/sommelier/internal/core/domain"
)

// CatalogStore supplies recommendation records.
// Similarity scores are computed elsewhere; the store only returns them.
type CatalogStore interface {
	// List returns every record in the catalog, in catalog order.
	List(ctx context.Context) ([]domain.Recommendation, error)
}
