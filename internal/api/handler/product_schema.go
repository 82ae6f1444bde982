package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type variantRequest struct {
	SKU   string `json:"sku"   validate:"required"`
	Size  string `json:"size"`
	Color string `json:"color"`
	Stock int    `json:"stock" validate:"gte=0"`
}

type productRequest struct {
	Name              string           `json:"name"               validate:"required"`
	Description       string           `json:"description"`
	Price             float64          `json:"price"              validate:"required,gt=0"`
	DiscountPrice     float64          `json:"discount_price"     validate:"omitempty,gt=0"`
	Category          string           `json:"category"           validate:"required"`
	ProductCollection string           `json:"product_collection"`
	Variants          []variantRequest `json:"variants"           validate:"dive"`
}

// updateInventoryRequest overwrites one variant's stock count. The variant
// is addressed by its SKU within the product.
type updateInventoryRequest struct {
	SKU      string `json:"sku"      validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}
