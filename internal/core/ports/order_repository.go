package ports

import (
	"context"
	"time"

	"github.com/eshop-platform/eshop-api/internal/core/domain"
)

// ListOrdersFilter carries the query parameters for listing orders.
// UserID is enforced by the service layer for non-admin callers.
type ListOrdersFilter struct {
	UserID string // empty = no filter (admin); non-empty = scoped to user
	Status string // optional: filter by order status
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	// FindByID retrieves an order. When userID is non-empty, the query is
	// additionally scoped to that user (role enforcement).
	FindByID(ctx context.Context, id string, userID string) (*domain.Order, error)
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, error)
	// UpdateStatus atomically sets the new status and appends a history entry.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, ts time.Time, notes string) error
	Delete(ctx context.Context, id string) error
}
