package ports

import (
	"context"

	"github.com/eshop-platform/eshop-api/internal/core/domain"
)

// OrderItemInput references a product (and optionally one of its variants)
// with a purchase quantity. Prices are snapshotted server-side.
type OrderItemInput struct {
	ProductID string
	SKU       string
	Quantity  int
}

// CreateOrderInput carries all data needed to place an order.
type CreateOrderInput struct {
	UserID string
	Items  []OrderItemInput
}

// GetOrderInput identifies an order plus the caller for role scoping:
// customers only see their own orders.
type GetOrderInput struct {
	ID     string
	Role   string
	UserID string
}

// ListOrdersInput carries all parameters for the list endpoint.
type ListOrdersInput struct {
	Role   string
	UserID string
	Status string
}

// UpdateOrderStatusInput carries a requested status transition.
type UpdateOrderStatusInput struct {
	ID     string
	Status string
	Notes  string
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, in GetOrderInput) (*domain.Order, error)
	List(ctx context.Context, in ListOrdersInput) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, in UpdateOrderStatusInput) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
