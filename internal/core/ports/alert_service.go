package ports

import (
	"context"
	"time"
)

// StockAlertInput is the DTO passed from the producer side (inventory
// updates) through the dispatcher to the AlertService.
type StockAlertInput struct {
	ProductID   string
	ProductName string
	SKU         string
	Stock       int
	Threshold   int
	Timestamp   time.Time
}

// AlertService processes low-stock alerts coming off the dispatcher.
type AlertService interface {
	Process(ctx context.Context, alert StockAlertInput) error
}
