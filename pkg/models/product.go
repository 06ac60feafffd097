package models

import (
	"time"

	"github.com/angelmondragon/salesboard/pkg/enums"
)

// DefaultLowStockThreshold is applied to generated and newly created products.
const DefaultLowStockThreshold = 15

// Product represents a catalog listing tracked by the dashboard.
type Product struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Description       string                `json:"description"`
	PriceCents        int64                 `json:"price_cents"`
	Category          enums.ProductCategory `json:"category"`
	StockLevel        int                   `json:"stock_level"`
	LowStockThreshold int                   `json:"low_stock_threshold"`
	Marketplace       enums.Marketplace     `json:"marketplace"`
	Image             *string               `json:"image,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// IsOutOfStock reports whether no units remain.
func (p Product) IsOutOfStock() bool {
	return p.StockLevel == 0
}

// IsLowStock reports whether units remain but fewer than the threshold.
func (p Product) IsLowStock() bool {
	return p.StockLevel > 0 && p.StockLevel < p.LowStockThreshold
}

// NeedsRestock reports whether the product is below its threshold, out-of-stock included.
func (p Product) NeedsRestock() bool {
	return p.StockLevel < p.LowStockThreshold
}

// StockStatus buckets the stock level against the threshold.
func (p Product) StockStatus() enums.StockStatus {
	switch {
	case p.IsOutOfStock():
		return enums.StockStatusOut
	case p.IsLowStock():
		return enums.StockStatusLow
	default:
		return enums.StockStatusIn
	}
}

// ListedOn reports whether the product can be sold through the given marketplace.
func (p Product) ListedOn(m enums.Marketplace) bool {
	return p.Marketplace == m || p.Marketplace == enums.MarketplaceBoth
}
