package analytics

import (
	"github.com/angelmondragon/salesboard/pkg/enums"
	"github.com/angelmondragon/salesboard/pkg/models"
)

// SalesByCategory returns one row per known category, in catalog order, including categories with
// no completed orders. Orders whose product is missing or has an unknown category are skipped.
func SalesByCategory(orders []models.Order, index ProductIndex) []CategorySales {
	categories := enums.ProductCategories()
	rows := make([]CategorySales, len(categories))
	position := make(map[enums.ProductCategory]int, len(categories))
	for i, category := range categories {
		rows[i] = CategorySales{Category: category}
		position[category] = i
	}

	for _, o := range orders {
		if !o.IsCompleted() {
			continue
		}
		product, ok := index.Lookup(o.ProductID)
		if !ok {
			continue
		}
		i, ok := position[product.Category]
		if !ok {
			continue
		}
		rows[i].RevenueCents += o.TotalCents
		rows[i].Orders++
	}
	return rows
}

// SalesByMarketplace returns one row per concrete marketplace (Amazon, then Walmart).
func SalesByMarketplace(orders []models.Order) []MarketplaceSales {
	marketplaces := enums.ConcreteMarketplaces()
	rows := make([]MarketplaceSales, len(marketplaces))
	for i, marketplace := range marketplaces {
		rows[i] = MarketplaceSales{Marketplace: marketplace}
		for _, o := range orders {
			if o.Marketplace != marketplace || !o.IsCompleted() {
				continue
			}
			rows[i].RevenueCents += o.TotalCents
			rows[i].Orders++
		}
	}
	return rows
}
