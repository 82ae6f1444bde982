package ports

import (
	"context"

	"github.com/eshop-platform/eshop-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, id string, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
