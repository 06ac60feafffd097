package generator

import (
	"time"

	"github.com/angelmondragon/salesboard/pkg/models"
)

// Dataset is the explicitly constructed mock data handed to the aggregator and presentation layer.
type Dataset struct {
	Products    []models.Product
	Orders      []models.Order
	GeneratedAt time.Time
}

// Build generates products first and then orders against them.
func (g *Generator) Build(productCount, orderCount int) Dataset {
	products := g.Products(productCount)
	return Dataset{
		Products:    products,
		Orders:      g.Orders(products, orderCount),
		GeneratedAt: g.now(),
	}
}
