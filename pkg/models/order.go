package models

import (
	"time"

	"github.com/angelmondragon/salesboard/pkg/enums"
)

// Order is a single marketplace sale. PriceCents is the unit price at order time and is never
// recomputed from the product.
type Order struct {
	ID          string            `json:"id"`
	ProductID   string            `json:"product_id"`
	ProductName string            `json:"product_name"`
	Quantity    int               `json:"quantity"`
	PriceCents  int64             `json:"price_cents"`
	TotalCents  int64             `json:"total_cents"`
	Date        time.Time         `json:"date"`
	Status      enums.OrderStatus `json:"status"`
	Marketplace enums.Marketplace `json:"marketplace"`
}

// IsCompleted reports whether the order contributes to revenue.
func (o Order) IsCompleted() bool {
	return o.Status == enums.OrderStatusCompleted
}

// Day returns the UTC calendar day the order was placed on, formatted YYYY-MM-DD.
func (o Order) Day() string {
	return o.Date.UTC().Format(DayLayout)
}

// DayLayout is the calendar-day format used for daily buckets.
const DayLayout = "2006-01-02"
