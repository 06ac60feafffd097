package analytics

import (
	"time"

	"github.com/angelmondragon/salesboard/pkg/enums"
	"github.com/angelmondragon/salesboard/pkg/models"
)

// TrailingDays is the length of every daily series.
const TrailingDays = 30

// DailyRevenue buckets completed orders into the last TrailingDays UTC calendar days ending at
// now, oldest first.
func DailyRevenue(orders []models.Order, now time.Time) []RevenuePoint {
	return dailySeries(orders, now, nil)
}

// RevenueByCategory is DailyRevenue restricted to orders whose product resolves to category.
// Every point is tagged with the category.
func RevenueByCategory(orders []models.Order, index ProductIndex, category enums.ProductCategory, now time.Time) []RevenuePoint {
	points := dailySeries(orders, now, func(o models.Order) bool {
		product, ok := index.Lookup(o.ProductID)
		return ok && product.Category == category
	})
	for i := range points {
		points[i].Category = category
	}
	return points
}

func dailySeries(orders []models.Order, now time.Time, keep func(models.Order) bool) []RevenuePoint {
	days := trailingDays(now)
	points := make([]RevenuePoint, len(days))
	position := make(map[string]int, len(days))
	for i, day := range days {
		points[i] = RevenuePoint{Date: day}
		position[day] = i
	}

	for _, o := range orders {
		if !o.IsCompleted() {
			continue
		}
		i, ok := position[o.Day()]
		if !ok {
			continue
		}
		if keep != nil && !keep(o) {
			continue
		}
		points[i].RevenueCents += o.TotalCents
		points[i].Orders++
	}
	return points
}

// trailingDays returns TrailingDays day keys ending today, oldest first.
func trailingDays(now time.Time) []string {
	today := now.UTC()
	days := make([]string, 0, TrailingDays)
	for offset := TrailingDays - 1; offset >= 0; offset-- {
		days = append(days, today.AddDate(0, 0, -offset).Format(models.DayLayout))
	}
	return days
}
