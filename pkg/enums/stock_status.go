package enums

import (
	"fmt"
	"strings"
)

// StockStatus buckets a product's stock level against its low-stock threshold.
type StockStatus string

const (
	StockStatusIn  StockStatus = "in"
	StockStatusLow StockStatus = "low"
	StockStatusOut StockStatus = "out"
)

var validStockStatuses = []StockStatus{
	StockStatusIn,
	StockStatusLow,
	StockStatusOut,
}

// String implements fmt.Stringer.
func (s StockStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StockStatus.
func (s StockStatus) IsValid() bool {
	for _, candidate := range validStockStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockStatus converts raw input into a StockStatus.
func ParseStockStatus(value string) (StockStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validStockStatuses {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock status %q", value)
}
