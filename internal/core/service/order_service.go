package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eshop-platform/eshop-api/internal/api/metrics"
	"github.com/eshop-platform/eshop-api/internal/core/domain"
	"github.com/eshop-platform/eshop-api/internal/core/ports"
)

// OrderService implements order use-cases.
type OrderService struct {
	repo     ports.OrderRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, products ports.ProductRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, products: products, logger: logger}
}

// Create places an order. Item prices are snapshotted from the catalog at
// order time; the discount price wins when one is set.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	now := time.Now().UTC()

	items := make([]domain.OrderItem, 0, len(in.Items))
	var total float64
	for _, it := range in.Items {
		product, err := s.products.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if it.SKU != "" && product.VariantBySKU(it.SKU) == nil {
			return nil, domain.ErrVariantNotFound
		}

		unit := product.Price
		if product.DiscountPrice > 0 {
			unit = product.DiscountPrice
		}

		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			SKU:       it.SKU,
			Name:      product.Name,
			UnitPrice: unit,
			Quantity:  it.Quantity,
		})
		total += unit * float64(it.Quantity)
	}

	order := &domain.Order{
		OrderNumber: generateOrderNumber(),
		UserID:      in.UserID,
		Items:       items,
		Total:       total,
		Status:      domain.OrderPending,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.OrderPending, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", in.UserID).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.logger.Info().
		Str("order_number", created.OrderNumber).
		Str("user_id", in.UserID).
		Float64("total", total).
		Msg("order created")

	return created, nil
}

// Get retrieves a single order. Customers only see their own orders; the
// user scope is applied at the query level.
func (s *OrderService) Get(ctx context.Context, in ports.GetOrderInput) (*domain.Order, error) {
	scope := in.UserID
	if in.Role == domain.RoleAdmin {
		scope = ""
	}
	return s.repo.FindByID(ctx, in.ID, scope)
}

func (s *OrderService) List(ctx context.Context, in ports.ListOrdersInput) ([]*domain.Order, error) {
	filter := ports.ListOrdersFilter{Status: in.Status}
	if in.Role != domain.RoleAdmin {
		filter.UserID = in.UserID
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus applies a status transition guarded by the order state machine.
func (s *OrderService) UpdateStatus(ctx context.Context, in ports.UpdateOrderStatusInput) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, in.ID, "")
	if err != nil {
		return nil, err
	}

	next := domain.OrderStatus(in.Status)
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, next)
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, in.ID, next, now, in.Notes); err != nil {
		return nil, err
	}

	order.Status = next
	order.UpdatedAt = now
	order.StatusHistory = append(order.StatusHistory, domain.StatusHistoryEntry{
		Status:    next,
		Timestamp: now,
		Notes:     in.Notes,
	})

	s.logger.Info().Str("order_id", in.ID).Str("status", in.Status).Msg("order status updated")
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// generateOrderNumber returns an order number in the format ORD-XXXXXXXX.
func generateOrderNumber() string {
	id := uuid.New()
	return fmt.Sprintf("ORD-%X", id[:4])
}
