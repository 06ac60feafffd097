package analytics

import (
	"fmt"
	"slices"
)

const (
	weeksPerSeries = 4
	daysPerWeek    = 7
)

// WeeklyRevenue folds a daily series into four seven-day windows taken from the start of the
// input. Windows are labeled "Week 4" down to "Week 1" in slice order and the result is then
// reversed. Days past the fourth window are ignored and missing days count as zero.
func WeeklyRevenue(daily []RevenuePoint) []RevenuePoint {
	weeks := make([]RevenuePoint, 0, weeksPerSeries)
	for i := 0; i < weeksPerSeries; i++ {
		start := min(i*daysPerWeek, len(daily))
		end := min((i+1)*daysPerWeek, len(daily))

		week := RevenuePoint{Date: fmt.Sprintf("Week %d", weeksPerSeries-i)}
		for _, day := range daily[start:end] {
			week.RevenueCents += day.RevenueCents
			week.Orders += day.Orders
		}
		weeks = append(weeks, week)
	}
	slices.Reverse(weeks)
	return weeks
}
