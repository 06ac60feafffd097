package generator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/angelmondragon/salesboard/pkg/enums"
	"github.com/angelmondragon/salesboard/pkg/models"
	"github.com/angelmondragon/salesboard/pkg/money"
)

const (
	minPriceDollars  = 10
	maxPriceDollars  = 200
	maxStockLevel    = 100
	maxOrderQuantity = 5
	createdDaysBack  = 90
	updatedDaysBack  = 30
	orderDaysBack    = 30
	imageSeedOffset  = 100
)

// Generator produces synthetic catalog and order data from an explicit random source and clock.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New builds a generator. A zero seed seeds from the current time; a nil clock uses time.Now.
func New(seed uint64, now func() time.Time) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: now,
	}
}

// Between returns a uniform integer in [min, max].
func (g *Generator) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.rng.IntN(max-min+1)
}

func (g *Generator) daysAgo(maxDays int) time.Time {
	return g.now().AddDate(0, 0, -g.Between(0, maxDays))
}

func pick[T any](g *Generator, values []T) T {
	return values[g.Between(0, len(values)-1)]
}

// Products generates count products with ids prod-1..prod-count.
func (g *Generator) Products(count int) []models.Product {
	if count <= 0 {
		return []models.Product{}
	}

	categories := enums.ProductCategories()
	marketplaces := enums.ListingMarketplaces()

	products := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		n := i + 1
		category := pick(g, categories)
		image := fmt.Sprintf("https://picsum.photos/seed/%d/200/200", i+imageSeedOffset)
		products = append(products, models.Product{
			ID:                fmt.Sprintf("prod-%d", n),
			Name:              fmt.Sprintf("%s Product %d", category, n),
			Description:       fmt.Sprintf("This is a description for %s Product %d", category, n),
			PriceCents:        money.Cents(int64(g.Between(minPriceDollars, maxPriceDollars))),
			Category:          category,
			StockLevel:        g.Between(0, maxStockLevel),
			LowStockThreshold: models.DefaultLowStockThreshold,
			Marketplace:       pick(g, marketplaces),
			Image:             &image,
			CreatedAt:         g.daysAgo(createdDaysBack),
			UpdatedAt:         g.daysAgo(updatedDaysBack),
		})
	}
	return products
}

// Orders generates count orders against the given products. Products listed on both marketplaces
// resolve to exactly one concrete marketplace per order.
func (g *Generator) Orders(products []models.Product, count int) []models.Order {
	if count <= 0 || len(products) == 0 {
		return []models.Order{}
	}

	concrete := enums.ConcreteMarketplaces()
	statuses := enums.OrderStatuses()

	orders := make([]models.Order, 0, count)
	for i := 0; i < count; i++ {
		product := pick(g, products)
		quantity := g.Between(1, maxOrderQuantity)

		marketplace := product.Marketplace
		if !marketplace.IsConcrete() {
			marketplace = pick(g, concrete)
		}

		orders = append(orders, models.Order{
			ID:          fmt.Sprintf("order-%d", i+1),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			PriceCents:  product.PriceCents,
			TotalCents:  product.PriceCents * int64(quantity),
			Date:        g.daysAgo(orderDaysBack),
			Status:      pick(g, statuses),
			Marketplace: marketplace,
		})
	}
	return orders
}
