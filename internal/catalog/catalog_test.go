package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/angelmondragon/salesboard/pkg/enums"
	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/angelmondragon/salesboard/pkg/models"
	"github.com/angelmondragon/salesboard/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func seedProducts() []models.Product {
	return []models.Product{
		{ID: "prod-1", Name: "Wireless Earbuds", Description: "Noise cancelling", Category: enums.ProductCategoryElectronics, StockLevel: 40, LowStockThreshold: 15, Marketplace: enums.MarketplaceAmazon},
		{ID: "prod-2", Name: "Trail Shoes", Description: "Lightweight runners", Category: enums.ProductCategorySports, StockLevel: 5, LowStockThreshold: 15, Marketplace: enums.MarketplaceWalmart},
		{ID: "prod-3", Name: "Cookbook", Description: "Weeknight dinners", Category: enums.ProductCategoryBooks, StockLevel: 0, LowStockThreshold: 15, Marketplace: enums.MarketplaceBoth},
		{ID: "prod-7", Name: "Blender", Description: "For the kitchen counter", Category: enums.ProductCategoryHomeKitchen, StockLevel: 15, LowStockThreshold: 15, Marketplace: enums.MarketplaceBoth},
	}
}

func newTestService(t *testing.T) (Service, *Store) {
	t.Helper()
	store := NewStore(seedProducts())
	svc, err := NewService(store, nil, func() time.Time { return fixedNow })
	require.NoError(t, err)
	return svc, store
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestNewServiceRequiresStore(t *testing.T) {
	_, err := NewService(nil, nil, nil)
	require.Error(t, err)
}

func TestFilterMatches(t *testing.T) {
	products := seedProducts()
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "empty filter", filter: Filter{}, want: []string{"prod-1", "prod-2", "prod-3", "prod-7"}},
		{name: "query matches name case-insensitively", filter: Filter{Query: "EARBUDS"}, want: []string{"prod-1"}},
		{name: "query matches description", filter: Filter{Query: "kitchen counter"}, want: []string{"prod-7"}},
		{name: "query matches category", filter: Filter{Query: "book"}, want: []string{"prod-3"}},
		{name: "category is exact", filter: Filter{Category: enums.ProductCategorySports}, want: []string{"prod-2"}},
		{name: "marketplace includes Both listings", filter: Filter{Marketplace: enums.MarketplaceAmazon}, want: []string{"prod-1", "prod-3", "prod-7"}},
		{name: "low includes out of stock", filter: Filter{Stock: enums.StockStatusLow}, want: []string{"prod-2", "prod-3"}},
		{name: "out only", filter: Filter{Stock: enums.StockStatusOut}, want: []string{"prod-3"}},
		{name: "in stock at threshold", filter: Filter{Stock: enums.StockStatusIn}, want: []string{"prod-1", "prod-7"}},
		{name: "combined criteria", filter: Filter{Marketplace: enums.MarketplaceWalmart, Stock: enums.StockStatusLow}, want: []string{"prod-2", "prod-3"}},
		{name: "no matches", filter: Filter{Query: "telescope"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(products)))
		})
	}
}

func TestServiceListPagesFilteredRows(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.List(ctx, Filter{Marketplace: enums.MarketplaceAmazon}, pagination.Params{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-1", "prod-3"}, ids(first.Products))
	assert.Equal(t, 3, first.Total)
	require.NotEmpty(t, first.NextCursor)

	second, err := svc.List(ctx, Filter{Marketplace: enums.MarketplaceAmazon}, pagination.Params{Limit: 2, Cursor: first.NextCursor})
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-7"}, ids(second.Products))
	assert.Empty(t, second.NextCursor)

	_, err = svc.List(ctx, Filter{}, pagination.Params{Cursor: "not-a-cursor!"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestServiceGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	product, err := svc.Get(ctx, "prod-2")
	require.NoError(t, err)
	assert.Equal(t, "Trail Shoes", product.Name)

	_, err = svc.Get(ctx, "prod-99")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestServiceCategoriesAreDistinctAndOrdered(t *testing.T) {
	svc, _ := newTestService(t)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []enums.ProductCategory{
		enums.ProductCategoryElectronics,
		enums.ProductCategoryHomeKitchen,
		enums.ProductCategorySports,
		enums.ProductCategoryBooks,
	}, categories)
}

func TestServiceCreateAppliesDefaults(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateProductInput{
		Name:        "  Desk Lamp ",
		Description: "Warm light",
		PriceCents:  2999,
		Category:    enums.ProductCategoryHomeKitchen,
		StockLevel:  12,
	})
	require.NoError(t, err)

	assert.Equal(t, "prod-8", created.ID, "id continues after the highest existing suffix")
	assert.Equal(t, "Desk Lamp", created.Name)
	assert.Equal(t, enums.MarketplaceBoth, created.Marketplace)
	assert.Equal(t, models.DefaultLowStockThreshold, created.LowStockThreshold)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Equal(t, fixedNow, created.UpdatedAt)
	assert.Nil(t, created.Image)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, "prod-8", all[4].ID)
}

func TestServiceCreateValidation(t *testing.T) {
	valid := CreateProductInput{
		Name:        "Lamp",
		Description: "Light",
		PriceCents:  100,
		Category:    enums.ProductCategoryHomeKitchen,
	}
	tests := []struct {
		name   string
		mutate func(*CreateProductInput)
	}{
		{name: "missing name", mutate: func(in *CreateProductInput) { in.Name = "   " }},
		{name: "missing description", mutate: func(in *CreateProductInput) { in.Description = "" }},
		{name: "unknown category", mutate: func(in *CreateProductInput) { in.Category = "Garden" }},
		{name: "unknown marketplace", mutate: func(in *CreateProductInput) { in.Marketplace = "eBay" }},
		{name: "negative price", mutate: func(in *CreateProductInput) { in.PriceCents = -1 }},
		{name: "negative stock", mutate: func(in *CreateProductInput) { in.StockLevel = -3 }},
		{name: "negative threshold", mutate: func(in *CreateProductInput) { in.LowStockThreshold = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService(t)
			input := valid
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)
			require.Error(t, err)
			assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

			all, err := store.All(context.Background())
			require.NoError(t, err)
			assert.Len(t, all, 4, "rejected input must not be stored")
		})
	}
}

func TestServiceUpdateInventory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	stock := 3
	threshold := 10

	updated, err := svc.UpdateInventory(ctx, "prod-1", UpdateInventoryInput{StockLevel: &stock, LowStockThreshold: &threshold})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.StockLevel)
	assert.Equal(t, 10, updated.LowStockThreshold)
	assert.Equal(t, fixedNow, updated.UpdatedAt)
	assert.Equal(t, enums.StockStatusLow, updated.StockStatus())

	reloaded, err := svc.Get(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.StockLevel)
}

func TestServiceUpdateInventoryErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	negative := -1
	zero := 0
	ok := 4

	_, err := svc.UpdateInventory(ctx, "prod-1", UpdateInventoryInput{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = svc.UpdateInventory(ctx, "prod-1", UpdateInventoryInput{StockLevel: &negative})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = svc.UpdateInventory(ctx, "prod-1", UpdateInventoryInput{LowStockThreshold: &zero})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = svc.UpdateInventory(ctx, "prod-404", UpdateInventoryInput{StockLevel: &ok})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestStoreReturnsCopies(t *testing.T) {
	image := "https://example.com/a.png"
	seed := seedProducts()
	seed[0].Image = &image
	store := NewStore(seed)
	ctx := context.Background()

	seed[0].Name = "mutated after seeding"
	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Earbuds", all[0].Name)

	*all[0].Image = "changed"
	again, _, err := store.FindByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", *again.Image)
}

func TestStoreRejectsCancelledContext(t *testing.T) {
	store := NewStore(seedProducts())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.All(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStoreConcurrentInsertsAssignUniqueIDs(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Insert(ctx, models.Product{Name: "p"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := store.All(ctx)
	require.NoError(t, err)
	seen := make(map[string]struct{}, len(all))
	for _, p := range all {
		seen[p.ID] = struct{}{}
	}
	assert.Len(t, seen, 20)
}
