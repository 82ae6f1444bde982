package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/eshop-platform/eshop-api/internal/core/domain"
	"github.com/eshop-platform/eshop-api/internal/core/ports"
)

// memOrderRepo is an in-memory OrderRepository.
type memOrderRepo struct {
	orders     map[string]*domain.Order
	seq        int
	lastFilter ports.ListOrdersFilter
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *memOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	r.seq++
	cp := *o
	cp.ID = fmt.Sprintf("order-%d", r.seq)
	r.orders[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id string, userID string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok || (userID != "" && o.UserID != userID) {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) List(_ context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, error) {
	r.lastFilter = filter
	var out []*domain.Order
	for _, o := range r.orders {
		if filter.UserID != "" && o.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus, ts time.Time, notes string) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = ts
	o.StatusHistory = append(o.StatusHistory, domain.StatusHistoryEntry{Status: status, Timestamp: ts, Notes: notes})
	return nil
}

func (r *memOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func newOrderFixture(t *testing.T) (*OrderService, *memOrderRepo, *memProductRepo) {
	t.Helper()
	orders := newMemOrderRepo()
	products := newMemProductRepo()
	return NewOrderService(orders, products, zerolog.Nop()), orders, products
}

func seedCatalog(t *testing.T, products *memProductRepo) (shirt, mug *domain.Product) {
	t.Helper()
	var err error
	shirt, err = products.Create(context.Background(), &domain.Product{
		Name:     "Shirt",
		Price:    20,
		Variants: []domain.Variant{{SKU: "SHIRT-S", Stock: 10}},
	})
	if err != nil {
		t.Fatalf("seed shirt: %v", err)
	}
	mug, err = products.Create(context.Background(), &domain.Product{
		Name:          "Mug",
		Price:         10,
		DiscountPrice: 8,
	})
	if err != nil {
		t.Fatalf("seed mug: %v", err)
	}
	return shirt, mug
}

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	svc, _, products := newOrderFixture(t)
	shirt, mug := seedCatalog(t, products)

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: "user-1",
		Items: []ports.OrderItemInput{
			{ProductID: shirt.ID, SKU: "SHIRT-S", Quantity: 2},
			{ProductID: mug.ID, Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// 2 * 20 + 3 * 8 (discount price wins for the mug).
	if order.Total != 64 {
		t.Errorf("Total = %v, want 64", order.Total)
	}
	if order.Items[0].UnitPrice != 20 || order.Items[1].UnitPrice != 8 {
		t.Errorf("unit prices = %v/%v, want 20/8", order.Items[0].UnitPrice, order.Items[1].UnitPrice)
	}
	if order.Status != domain.OrderPending {
		t.Errorf("Status = %q, want pending", order.Status)
	}
	if len(order.StatusHistory) != 1 || order.StatusHistory[0].Status != domain.OrderPending {
		t.Errorf("StatusHistory = %+v, want single pending entry", order.StatusHistory)
	}
	if !strings.HasPrefix(order.OrderNumber, "ORD-") || len(order.OrderNumber) != 12 {
		t.Errorf("OrderNumber = %q, want ORD-XXXXXXXX", order.OrderNumber)
	}
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	svc, _, _ := newOrderFixture(t)

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: "user-1",
		Items:  []ports.OrderItemInput{{ProductID: "missing", Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("error = %v, want ErrProductNotFound", err)
	}
}

func TestCreateOrderUnknownVariant(t *testing.T) {
	svc, _, products := newOrderFixture(t)
	shirt, _ := seedCatalog(t, products)

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: "user-1",
		Items:  []ports.OrderItemInput{{ProductID: shirt.ID, SKU: "SHIRT-XXL", Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrVariantNotFound) {
		t.Fatalf("error = %v, want ErrVariantNotFound", err)
	}
}

func placeOrder(t *testing.T, svc *OrderService, products *memProductRepo, userID string) *domain.Order {
	t.Helper()
	shirt, _ := seedCatalog(t, products)
	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID: userID,
		Items:  []ports.OrderItemInput{{ProductID: shirt.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	return order
}

func TestUpdateStatusValidTransitions(t *testing.T) {
	svc, _, products := newOrderFixture(t)
	order := placeOrder(t, svc, products, "user-1")

	for _, status := range []string{"paid", "shipped", "delivered"} {
		updated, err := svc.UpdateStatus(context.Background(), ports.UpdateOrderStatusInput{
			ID: order.ID, Status: status,
		})
		if err != nil {
			t.Fatalf("UpdateStatus(%s): %v", status, err)
		}
		if string(updated.Status) != status {
			t.Errorf("Status = %q, want %q", updated.Status, status)
		}
	}
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	svc, _, products := newOrderFixture(t)
	order := placeOrder(t, svc, products, "user-1")

	// pending -> delivered skips the paid and shipped states.
	_, err := svc.UpdateStatus(context.Background(), ports.UpdateOrderStatusInput{
		ID: order.ID, Status: "delivered",
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("error = %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateStatusAppendsHistory(t *testing.T) {
	svc, _, products := newOrderFixture(t)
	order := placeOrder(t, svc, products, "user-1")

	updated, err := svc.UpdateStatus(context.Background(), ports.UpdateOrderStatusInput{
		ID: order.ID, Status: "paid", Notes: "card ending 4242",
	})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if len(updated.StatusHistory) != 2 {
		t.Fatalf("history len = %d, want 2", len(updated.StatusHistory))
	}
	last := updated.StatusHistory[1]
	if last.Status != domain.OrderPaid || last.Notes != "card ending 4242" {
		t.Errorf("last history entry = %+v", last)
	}
}

func TestGetScopesCustomerToOwnOrders(t *testing.T) {
	svc, _, products := newOrderFixture(t)
	order := placeOrder(t, svc, products, "user-1")

	if _, err := svc.Get(context.Background(), ports.GetOrderInput{
		ID: order.ID, Role: domain.RoleCustomer, UserID: "user-2",
	}); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("error = %v, want ErrOrderNotFound for foreign order", err)
	}

	if _, err := svc.Get(context.Background(), ports.GetOrderInput{
		ID: order.ID, Role: domain.RoleAdmin, UserID: "user-2",
	}); err != nil {
		t.Fatalf("admin Get: %v", err)
	}
}

func TestListScopesByRole(t *testing.T) {
	svc, orders, products := newOrderFixture(t)
	placeOrder(t, svc, products, "user-1")

	if _, err := svc.List(context.Background(), ports.ListOrdersInput{
		Role: domain.RoleCustomer, UserID: "user-1",
	}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if orders.lastFilter.UserID != "user-1" {
		t.Errorf("customer list filter UserID = %q, want user-1", orders.lastFilter.UserID)
	}

	if _, err := svc.List(context.Background(), ports.ListOrdersInput{
		Role: domain.RoleAdmin, UserID: "user-1",
	}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if orders.lastFilter.UserID != "" {
		t.Errorf("admin list filter UserID = %q, want empty", orders.lastFilter.UserID)
	}
}
