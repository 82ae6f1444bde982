package ports

import (
	"context"

	"github.com/eshop-platform/eshop-api/internal/core/domain"
)

// AlertRepository persists low-stock alerts to the audit collection.
type AlertRepository interface {
	Insert(ctx context.Context, alert *domain.StockAlert) error
}
