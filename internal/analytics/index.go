package analytics

import "github.com/angelmondragon/salesboard/pkg/models"

// ProductIndex resolves the weak order→product reference by id.
type ProductIndex map[string]models.Product

// NewProductIndex builds the lookup table. Later duplicates win.
func NewProductIndex(products []models.Product) ProductIndex {
	index := make(ProductIndex, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}

// Lookup returns the product for id, if present.
func (idx ProductIndex) Lookup(id string) (models.Product, bool) {
	p, ok := idx[id]
	return p, ok
}
