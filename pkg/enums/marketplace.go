package enums

import "fmt"

// Marketplace is the sales channel a product is listed on or an order was placed through.
type Marketplace string

const (
	MarketplaceAmazon  Marketplace = "Amazon"
	MarketplaceWalmart Marketplace = "Walmart"
	MarketplaceBoth    Marketplace = "Both"
)

var validMarketplaces = []Marketplace{
	MarketplaceAmazon,
	MarketplaceWalmart,
	MarketplaceBoth,
}

var concreteMarketplaces = []Marketplace{
	MarketplaceAmazon,
	MarketplaceWalmart,
}

// ListingMarketplaces returns every value a product may be listed on.
func ListingMarketplaces() []Marketplace {
	return append([]Marketplace(nil), validMarketplaces...)
}

// ConcreteMarketplaces returns the channels an order can actually be placed through.
func ConcreteMarketplaces() []Marketplace {
	return append([]Marketplace(nil), concreteMarketplaces...)
}

// String implements fmt.Stringer.
func (m Marketplace) String() string {
	return string(m)
}

// IsValid reports whether the value is a known Marketplace.
func (m Marketplace) IsValid() bool {
	for _, candidate := range validMarketplaces {
		if candidate == m {
			return true
		}
	}
	return false
}

// IsConcrete reports whether orders can be attributed to this marketplace.
func (m Marketplace) IsConcrete() bool {
	for _, candidate := range concreteMarketplaces {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMarketplace converts raw input into a Marketplace.
func ParseMarketplace(value string) (Marketplace, error) {
	for _, candidate := range validMarketplaces {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid marketplace %q", value)
}
