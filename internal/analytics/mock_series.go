package analytics

import (
	"strconv"
	"time"

	"github.com/angelmondragon/salesboard/pkg/money"
)

// RandomSource draws uniform integers in [min, max].
type RandomSource interface {
	Between(min, max int) int
}

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

const (
	annualYears = 5

	monthlyRevenueMinDollars = 5_000
	monthlyRevenueMaxDollars = 50_000
	monthlyOrdersMin         = 50
	monthlyOrdersMax         = 500

	annualRevenueMinDollars = 100_000
	annualRevenueMaxDollars = 1_000_000
	annualOrdersMin         = 1_000
	annualOrdersMax         = 10_000
)

// MonthlyRevenue returns a mock Jan..Dec series. It stands in for a backend and is not derived
// from orders.
func MonthlyRevenue(rng RandomSource) []RevenuePoint {
	points := make([]RevenuePoint, 0, len(monthNames))
	for _, month := range monthNames {
		points = append(points, RevenuePoint{
			Date:         month,
			RevenueCents: money.Cents(int64(rng.Between(monthlyRevenueMinDollars, monthlyRevenueMaxDollars))),
			Orders:       rng.Between(monthlyOrdersMin, monthlyOrdersMax),
		})
	}
	return points
}

// AnnualRevenue returns a mock series for the five years ending with now's year, oldest first.
// Like MonthlyRevenue it is not derived from orders.
func AnnualRevenue(rng RandomSource, now time.Time) []RevenuePoint {
	current := now.Year()
	points := make([]RevenuePoint, 0, annualYears)
	for i := 0; i < annualYears; i++ {
		points = append(points, RevenuePoint{
			Date:         strconv.Itoa(current - (annualYears - 1) + i),
			RevenueCents: money.Cents(int64(rng.Between(annualRevenueMinDollars, annualRevenueMaxDollars))),
			Orders:       rng.Between(annualOrdersMin, annualOrdersMax),
		})
	}
	return points
}
