package products

import (
	"github.com/angelmondragon/salesboard/internal/catalog"
	"github.com/angelmondragon/salesboard/pkg/enums"
)

type createProductRequest struct {
	Name              string  `json:"name" validate:"required,max=120"`
	Description       string  `json:"description" validate:"required,max=1000"`
	PriceCents        int64   `json:"price_cents" validate:"gte=0"`
	Category          string  `json:"category" validate:"required,category"`
	StockLevel        int     `json:"stock_level" validate:"gte=0"`
	LowStockThreshold int     `json:"low_stock_threshold" validate:"omitempty,gte=1"`
	Marketplace       string  `json:"marketplace" validate:"omitempty,marketplace"`
	Image             *string `json:"image" validate:"omitempty,url"`
}

func (r createProductRequest) toInput() catalog.CreateProductInput {
	return catalog.CreateProductInput{
		Name:              r.Name,
		Description:       r.Description,
		PriceCents:        r.PriceCents,
		Category:          enums.ProductCategory(r.Category),
		StockLevel:        r.StockLevel,
		LowStockThreshold: r.LowStockThreshold,
		Marketplace:       enums.Marketplace(r.Marketplace),
		Image:             r.Image,
	}
}

type updateInventoryRequest struct {
	StockLevel        *int `json:"stock_level" validate:"omitempty,gte=0"`
	LowStockThreshold *int `json:"low_stock_threshold" validate:"omitempty,gte=1"`
}

func (r updateInventoryRequest) toInput() catalog.UpdateInventoryInput {
	return catalog.UpdateInventoryInput{
		StockLevel:        r.StockLevel,
		LowStockThreshold: r.LowStockThreshold,
	}
}
