package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/eshop-platform/eshop-api/internal/api/metrics"
	"github.com/eshop-platform/eshop-api/internal/core/domain"
	"github.com/eshop-platform/eshop-api/internal/core/ports"
)

const defaultLowStockThreshold = 10

// ProductCache abstracts the read-through product cache (Redis). Failures
// are handled inside the implementation; the service never blocks on it.
type ProductCache interface {
	Get(ctx context.Context, id string) (*domain.Product, bool)
	Set(ctx context.Context, p *domain.Product)
	Invalidate(ctx context.Context, id string)
}

// AlertQueue is the producer side of the stock alert dispatcher.
type AlertQueue interface {
	Enqueue(alert ports.StockAlertInput)
}

// ProductService implements catalog use-cases.
type ProductService struct {
	repo      ports.ProductRepository
	cache     ProductCache
	alerts    AlertQueue
	threshold int
	logger    zerolog.Logger
}

// NewProductService builds a ProductService. threshold is the default
// low-stock threshold; non-positive values fall back to 10.
func NewProductService(repo ports.ProductRepository, cache ProductCache, alerts AlertQueue, threshold int, logger zerolog.Logger) *ProductService {
	if threshold <= 0 {
		threshold = defaultLowStockThreshold
	}
	return &ProductService{repo: repo, cache: cache, alerts: alerts, threshold: threshold, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	variants := toVariants(in.Variants)
	if domain.HasDuplicateSKU(variants) {
		return nil, domain.ErrDuplicateSKU
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:              in.Name,
		Description:       in.Description,
		Price:             in.Price,
		DiscountPrice:     in.DiscountPrice,
		Category:          in.Category,
		ProductCollection: in.ProductCollection,
		Variants:          variants,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("category", created.Category).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if p, ok := s.cache.Get(ctx, id); ok {
		return p, nil
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, p)
	return p, nil
}

func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *ProductService) Search(ctx context.Context, query string) ([]*domain.Product, error) {
	start := time.Now()
	products, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	metrics.ProductSearchDuration.Observe(time.Since(start).Seconds())
	return products, nil
}

func (s *ProductService) LowStock(ctx context.Context, threshold int) ([]*domain.Product, error) {
	if threshold <= 0 {
		threshold = s.threshold
	}
	return s.repo.FindLowStock(ctx, threshold)
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductInput) (*domain.Product, error) {
	variants := toVariants(in.Variants)
	if domain.HasDuplicateSKU(variants) {
		return nil, domain.ErrDuplicateSKU
	}

	product := &domain.Product{
		Name:              in.Name,
		Description:       in.Description,
		Price:             in.Price,
		DiscountPrice:     in.DiscountPrice,
		Category:          in.Category,
		ProductCollection: in.ProductCollection,
		Variants:          variants,
		UpdatedAt:         time.Now().UTC(),
	}

	updated, err := s.repo.Update(ctx, id, product)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// UpdateInventory overwrites one variant's stock count. When the new count
// is below the low-stock threshold, an alert is enqueued for the dispatcher.
func (s *ProductService) UpdateInventory(ctx context.Context, in ports.UpdateInventoryInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	variant := product.VariantBySKU(in.SKU)
	if variant == nil {
		return nil, domain.ErrVariantNotFound
	}

	if err := s.repo.SetVariantStock(ctx, in.ProductID, in.SKU, in.Stock); err != nil {
		return nil, err
	}

	variant.Stock = in.Stock
	product.UpdatedAt = time.Now().UTC()
	s.cache.Invalidate(ctx, in.ProductID)

	if in.Stock < s.threshold {
		s.alerts.Enqueue(ports.StockAlertInput{
			ProductID:   product.ID,
			ProductName: product.Name,
			SKU:         in.SKU,
			Stock:       in.Stock,
			Threshold:   s.threshold,
			Timestamp:   product.UpdatedAt,
		})
	}

	s.logger.Info().
		Str("product_id", in.ProductID).
		Str("sku", in.SKU).
		Int("stock", in.Stock).
		Msg("inventory updated")

	return product, nil
}

func toVariants(in []ports.VariantInput) []domain.Variant {
	out := make([]domain.Variant, len(in))
	for i, v := range in {
		out[i] = domain.Variant{SKU: v.SKU, Size: v.Size, Color: v.Color, Stock: v.Stock}
	}
	return out
}
