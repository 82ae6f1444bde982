package ports

import (
	"context"

	"github.com/eshop-platform/eshop-api/internal/core/domain"
)

// ProductFilter carries the optional list constraints. Nil/empty fields
// impose no constraint; active constraints combine with logical AND.
type ProductFilter struct {
	Category          string   // exact match
	ProductCollection string   // exact match
	MinPrice          *float64 // price >= MinPrice
	MaxPrice          *float64 // price <= MaxPrice
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns products matching all active filter constraints.
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	// Search matches query as a case-insensitive substring of the product
	// name or description. It is a separate query path from List.
	Search(ctx context.Context, query string) ([]*domain.Product, error)
	// FindLowStock returns products where at least one variant's stock is
	// strictly below threshold.
	FindLowStock(ctx context.Context, threshold int) ([]*domain.Product, error)
	Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// SetVariantStock overwrites one variant's stock count. The write is
	// atomic within the product document.
	SetVariantStock(ctx context.Context, productID, sku string, stock int) error
}
