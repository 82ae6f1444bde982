package ports

import (
	"context"

	"github.com/eshop-platform/eshop-api/internal/core/domain"
)

// CategoryInput carries the data to create or replace a category.
type CategoryInput struct {
	Name        string
	Slug        string
	Description string
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	Create(ctx context.Context, in CategoryInput) (*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, id string, in CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
