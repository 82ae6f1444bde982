package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrVariantNotFound = errors.New("variant not found")
var ErrDuplicateSKU = errors.New("duplicate variant sku")

// Variant is a purchasable configuration of a product (size/colour) with
// its own stock count. SKU identifies the variant within its product.
type Variant struct {
	SKU   string `json:"sku" bson:"sku"`
	Size  string `json:"size,omitempty" bson:"size,omitempty"`
	Color string `json:"color,omitempty" bson:"color,omitempty"`
	Stock int    `json:"stock" bson:"stock"`
}

// Product is the catalog aggregate root. Variants live inside the product
// document, so a variant stock write is atomic within one product.
type Product struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	Name              string    `json:"name" bson:"name"`
	Description       string    `json:"description,omitempty" bson:"description,omitempty"`
	Price             float64   `json:"price" bson:"price"`
	DiscountPrice     float64   `json:"discount_price,omitempty" bson:"discount_price,omitempty"`
	Category          string    `json:"category" bson:"category"`
	ProductCollection string    `json:"product_collection,omitempty" bson:"product_collection,omitempty"`
	Variants          []Variant `json:"variants" bson:"variants"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at"`
}

// VariantBySKU returns the variant with the given SKU, or nil.
func (p *Product) VariantBySKU(sku string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].SKU == sku {
			return &p.Variants[i]
		}
	}
	return nil
}

// HasDuplicateSKU reports whether two variants share a SKU.
func HasDuplicateSKU(variants []Variant) bool {
	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if _, ok := seen[v.SKU]; ok {
			return true
		}
		seen[v.SKU] = struct{}{}
	}
	return false
}
