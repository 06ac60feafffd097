package analytics

import "github.com/angelmondragon/salesboard/pkg/models"

// Summarize computes the landing-page KPIs. Stock alerts cover every product below its
// threshold, out-of-stock included, in catalog order.
func Summarize(orders []models.Order, products []models.Product) Summary {
	summary := Summary{
		TotalProducts: len(products),
		StockAlerts:   []StockAlert{},
	}

	for _, o := range orders {
		if !o.IsCompleted() {
			continue
		}
		summary.TotalRevenueCents += o.TotalCents
		summary.TotalOrders++
	}

	for _, p := range products {
		if !p.NeedsRestock() {
			continue
		}
		summary.StockAlerts = append(summary.StockAlerts, StockAlert{
			ProductID:         p.ID,
			Name:              p.Name,
			Category:          p.Category,
			StockLevel:        p.StockLevel,
			LowStockThreshold: p.LowStockThreshold,
			Status:            p.StockStatus(),
		})
	}
	summary.LowStockCount = len(summary.StockAlerts)
	return summary
}

// Totals sums revenue and order counts across a series.
func Totals(points []RevenuePoint) (int64, int) {
	var revenue int64
	var orders int
	for _, p := range points {
		revenue += p.RevenueCents
		orders += p.Orders
	}
	return revenue, orders
}
