package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eshop-platform/eshop-api/internal/core/domain"
	"github.com/eshop-platform/eshop-api/internal/core/ports"
)

const collectionStockAlerts = "stock_alerts"

// AlertRepository implements ports.AlertRepository using MongoDB.
type AlertRepository struct {
	col *mongo.Collection
}

// NewAlertRepository creates a new AlertRepository.
func NewAlertRepository(db *mongo.Database) ports.AlertRepository {
	return &AlertRepository{col: db.Collection(collectionStockAlerts)}
}

// Insert persists a low-stock alert to the stock_alerts audit collection.
func (r *AlertRepository) Insert(ctx context.Context, alert *domain.StockAlert) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"product_id":   alert.ProductID,
		"product_name": alert.ProductName,
		"sku":          alert.SKU,
		"stock":        alert.Stock,
		"threshold":    alert.Threshold,
		"timestamp":    alert.Timestamp.UTC(),
		"recorded_at":  time.Now().UTC(),
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
