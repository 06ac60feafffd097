package catalog

import (
	"strings"

	"github.com/angelmondragon/salesboard/pkg/enums"
	"github.com/angelmondragon/salesboard/pkg/models"
)

// Filter narrows the inventory table. Zero-valued fields do not filter.
type Filter struct {
	Query       string
	Category    enums.ProductCategory
	Marketplace enums.Marketplace
	Stock       enums.StockStatus
}

// Matches reports whether p passes every populated criterion.
func (f Filter) Matches(p models.Product) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(string(p.Category)), q) {
			return false
		}
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Marketplace != "" && !p.ListedOn(f.Marketplace) {
		return false
	}
	switch f.Stock {
	case enums.StockStatusLow:
		// out-of-stock items are listed under low as well
		if !p.NeedsRestock() {
			return false
		}
	case enums.StockStatusOut:
		if !p.IsOutOfStock() {
			return false
		}
	case enums.StockStatusIn:
		if p.NeedsRestock() {
			return false
		}
	}
	return true
}

// Apply returns the products matching f, preserving order.
func (f Filter) Apply(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
