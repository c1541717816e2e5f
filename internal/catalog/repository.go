package catalog

import (
	"context"

	"luxera-storefront/internal/domain"
)

// Repository provides read-only access to the product catalog. The catalog
// is reference data owned by an external service; this storefront only ever
// reads it.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
}
