package analytics

import "github.com/angelmondragon/salesboard/pkg/enums"

// RevenuePoint is a single bucket of an aggregated revenue series. Date holds a calendar day
// (YYYY-MM-DD), a week label, a month name, or a year depending on the series granularity.
type RevenuePoint struct {
	Date         string                `json:"date"`
	RevenueCents int64                 `json:"revenue_cents"`
	Orders       int                   `json:"orders"`
	Category     enums.ProductCategory `json:"category,omitempty"`
	Marketplace  enums.Marketplace     `json:"marketplace,omitempty"`
}

// CategorySales sums completed orders for one catalog category.
type CategorySales struct {
	Category     enums.ProductCategory `json:"category"`
	RevenueCents int64                 `json:"revenue_cents"`
	Orders       int                   `json:"orders"`
}

// MarketplaceSales sums completed orders for one concrete marketplace.
type MarketplaceSales struct {
	Marketplace  enums.Marketplace `json:"marketplace"`
	RevenueCents int64             `json:"revenue_cents"`
	Orders       int               `json:"orders"`
}

// StockAlert flags a product that is below its low-stock threshold.
type StockAlert struct {
	ProductID         string                `json:"product_id"`
	Name              string                `json:"name"`
	Category          enums.ProductCategory `json:"category"`
	StockLevel        int                   `json:"stock_level"`
	LowStockThreshold int                   `json:"low_stock_threshold"`
	Status            enums.StockStatus     `json:"status"`
}

// Summary carries the headline KPIs of the dashboard landing page.
type Summary struct {
	TotalRevenueCents int64        `json:"total_revenue_cents"`
	TotalOrders       int          `json:"total_orders"`
	TotalProducts     int          `json:"total_products"`
	LowStockCount     int          `json:"low_stock_count"`
	StockAlerts       []StockAlert `json:"stock_alerts"`
}

// DashboardResponse bundles everything the landing page renders.
type DashboardResponse struct {
	Summary          Summary            `json:"summary"`
	DailyRevenue     []RevenuePoint     `json:"daily_revenue"`
	CategorySales    []CategorySales    `json:"category_sales"`
	MarketplaceSales []MarketplaceSales `json:"marketplace_sales"`
}

// RevenueQuery selects the series shown on the revenue page.
type RevenueQuery struct {
	Range    enums.TimeRange
	Category string
}

// RevenueReport is the revenue page payload: the selected series, its totals, and the
// category and marketplace comparisons.
type RevenueReport struct {
	Range             enums.TimeRange    `json:"range"`
	Category          string             `json:"category"`
	Series            []RevenuePoint     `json:"series"`
	TotalRevenueCents int64              `json:"total_revenue_cents"`
	TotalOrders       int                `json:"total_orders"`
	CategorySales     []CategorySales    `json:"category_sales"`
	MarketplaceSales  []MarketplaceSales `json:"marketplace_sales"`
}
