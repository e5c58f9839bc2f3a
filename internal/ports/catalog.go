package ports

import (
	"context"

	"github.com/komekomeaaa/tarot/internal/domain"
)

// CatalogSource provides the card catalog.
type CatalogSource interface {
	Catalog(ctx context.Context) (*domain.Catalog, error)
}
