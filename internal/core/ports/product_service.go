package ports

import (
	"context"

	"github.com/eshop-platform/eshop-api/internal/core/domain"
)

// VariantInput holds one variant of a product payload.
type VariantInput struct {
	SKU   string
	Size  string
	Color string
	Stock int
}

// ProductInput carries all data needed to create or replace a product.
type ProductInput struct {
	Name              string
	Description       string
	Price             float64
	DiscountPrice     float64
	Category          string
	ProductCollection string
	Variants          []VariantInput
}

// UpdateInventoryInput identifies one variant and the stock count to set.
type UpdateInventoryInput struct {
	ProductID string
	SKU       string
	Stock     int
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	Search(ctx context.Context, query string) ([]*domain.Product, error)
	// LowStock returns products with any variant under threshold. A
	// non-positive threshold falls back to the configured default.
	LowStock(ctx context.Context, threshold int) ([]*domain.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// UpdateInventory overwrites the variant's stock. Repeating the call
	// with the same quantity is a no-op with the same result.
	UpdateInventory(ctx context.Context, in UpdateInventoryInput) (*domain.Product, error)
}
