package enums

import "fmt"

// ProductCategory represents the catalog categories shown on the dashboard.
type ProductCategory string

const (
	ProductCategoryElectronics ProductCategory = "Electronics"
	ProductCategoryClothing    ProductCategory = "Clothing"
	ProductCategoryHomeKitchen ProductCategory = "Home & Kitchen"
	ProductCategoryBeauty      ProductCategory = "Beauty"
	ProductCategorySports      ProductCategory = "Sports"
	ProductCategoryBooks       ProductCategory = "Books"
	ProductCategoryToys        ProductCategory = "Toys"
)

// Order matters: category breakdowns are emitted in this order.
var validProductCategories = []ProductCategory{
	ProductCategoryElectronics,
	ProductCategoryClothing,
	ProductCategoryHomeKitchen,
	ProductCategoryBeauty,
	ProductCategorySports,
	ProductCategoryBooks,
	ProductCategoryToys,
}

// ProductCategories returns a copy of the known categories in display order.
func ProductCategories() []ProductCategory {
	return append([]ProductCategory(nil), validProductCategories...)
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
