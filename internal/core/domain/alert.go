package domain

import "time"

// StockAlert records that a variant dropped below the low-stock threshold
// after an inventory update.
type StockAlert struct {
	ProductID   string
	ProductName string
	SKU         string
	Stock       int
	Threshold   int
	Timestamp   time.Time
}
