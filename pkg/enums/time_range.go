package enums

import (
	"fmt"
	"strings"
)

// TimeRange selects the granularity of a revenue series.
type TimeRange string

const (
	TimeRangeDaily    TimeRange = "daily"
	TimeRangeWeekly   TimeRange = "weekly"
	TimeRangeMonthly  TimeRange = "monthly"
	TimeRangeAnnually TimeRange = "annually"
)

var validTimeRanges = []TimeRange{
	TimeRangeDaily,
	TimeRangeWeekly,
	TimeRangeMonthly,
	TimeRangeAnnually,
}

// String implements fmt.Stringer.
func (t TimeRange) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TimeRange.
func (t TimeRange) IsValid() bool {
	for _, candidate := range validTimeRanges {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTimeRange converts raw input into a TimeRange. Matching is case-insensitive.
func ParseTimeRange(value string) (TimeRange, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validTimeRanges {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid time range %q", value)
}
