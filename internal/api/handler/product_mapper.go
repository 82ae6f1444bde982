package handler

import (
	"github.com/eshop-platform/eshop-api/internal/core/ports"
)

// --- Request → Service input ---

func toProductInput(req productRequest) ports.ProductInput {
	variants := make([]ports.VariantInput, len(req.Variants))
	for i, v := range req.Variants {
		variants[i] = ports.VariantInput{
			SKU:   v.SKU,
			Size:  v.Size,
			Color: v.Color,
			Stock: v.Stock,
		}
	}

	return ports.ProductInput{
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		DiscountPrice:     req.DiscountPrice,
		Category:          req.Category,
		ProductCollection: req.ProductCollection,
		Variants:          variants,
	}
}
