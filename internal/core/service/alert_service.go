package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eshop-platform/eshop-api/internal/api/metrics"
	"github.com/eshop-platform/eshop-api/internal/core/domain"
	"github.com/eshop-platform/eshop-api/internal/core/ports"
)

// DedupChecker abstracts the alert idempotency store (Redis). Repeated
// inventory writes with the same resulting stock produce one alert.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, productID, sku string, stock int) (bool, error)
	Mark(ctx context.Context, productID, sku string, stock int) error
}

type alertService struct {
	repo  ports.AlertRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewAlertService returns an AlertService implementation.
func NewAlertService(repo ports.AlertRepository, dedup DedupChecker, log zerolog.Logger) ports.AlertService {
	return &alertService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and records a single low-stock alert.
func (s *alertService) Process(ctx context.Context, in ports.StockAlertInput) error {
	isDup, err := s.dedup.IsDuplicate(ctx, in.ProductID, in.SKU, in.Stock)
	if err != nil {
		s.log.Warn().Err(err).Str("product_id", in.ProductID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.StockAlertsTotal.WithLabelValues("duplicate").Inc()
		s.log.Debug().Str("product_id", in.ProductID).Str("sku", in.SKU).Msg("duplicate alert skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, in.ProductID, in.SKU, in.Stock); markErr != nil {
		s.log.Warn().Err(markErr).Str("product_id", in.ProductID).Msg("failed to set dedup key")
	}

	alert := &domain.StockAlert{
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		SKU:         in.SKU,
		Stock:       in.Stock,
		Threshold:   in.Threshold,
		Timestamp:   in.Timestamp,
	}
	if err := s.repo.Insert(ctx, alert); err != nil {
		metrics.StockAlertsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("process alert: %w", err)
	}

	metrics.StockAlertsTotal.WithLabelValues("recorded").Inc()
	s.log.Info().
		Str("product_id", in.ProductID).
		Str("sku", in.SKU).
		Int("stock", in.Stock).
		Int("threshold", in.Threshold).
		Msg("low stock alert recorded")

	return nil
}
