package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/salesboard/pkg/enums"
	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/angelmondragon/salesboard/pkg/models"
	"github.com/angelmondragon/salesboard/pkg/pagination"
)

// Service exposes the inventory table and product form operations.
type Service interface {
	List(ctx context.Context, filter Filter, page pagination.Params) (*ProductList, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Categories(ctx context.Context) ([]enums.ProductCategory, error)
	Create(ctx context.Context, input CreateProductInput) (*models.Product, error)
	UpdateInventory(ctx context.Context, id string, input UpdateInventoryInput) (*models.Product, error)
}

// ProductList is one page of the filtered inventory table. Total counts every match.
type ProductList struct {
	Products   []models.Product
	Total      int
	NextCursor string
}

// CreateProductInput holds the payload of the new-product form. Zero Marketplace defaults to
// Both and zero LowStockThreshold defaults to models.DefaultLowStockThreshold.
type CreateProductInput struct {
	Name              string
	Description       string
	PriceCents        int64
	Category          enums.ProductCategory
	StockLevel        int
	LowStockThreshold int
	Marketplace       enums.Marketplace
	Image             *string
}

// UpdateInventoryInput sets stock figures. Nil fields are left unchanged.
type UpdateInventoryInput struct {
	StockLevel        *int
	LowStockThreshold *int
}

type service struct {
	store *Store
	logg  *logger.Logger
	now   func() time.Time
}

// NewService constructs the catalog service. A nil clock uses time.Now.
func NewService(store *Store, logg *logger.Logger, now func() time.Time) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("catalog store required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: store, logg: logg, now: now}, nil
}

func (s *service) List(ctx context.Context, filter Filter, page pagination.Params) (*ProductList, error) {
	products, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	matched := filter.Apply(products)

	items, next, err := pagination.Slice(matched, page, func(p models.Product) string { return p.ID })
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor").
			WithDetails(map[string]string{"cursor": err.Error()})
	}
	return &ProductList{Products: items, Total: len(matched), NextCursor: next}, nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Product, error) {
	product, ok, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "product %s not found", id)
	}
	return &product, nil
}

// Categories returns the distinct categories present in the catalog, in catalog enum order.
func (s *service) Categories(ctx context.Context) ([]enums.ProductCategory, error) {
	products, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	present := make(map[enums.ProductCategory]struct{}, len(products))
	for _, p := range products {
		present[p.Category] = struct{}{}
	}
	categories := make([]enums.ProductCategory, 0, len(present))
	for _, category := range enums.ProductCategories() {
		if _, ok := present[category]; ok {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if input.Marketplace == "" {
		input.Marketplace = enums.MarketplaceBoth
	}
	if input.LowStockThreshold == 0 {
		input.LowStockThreshold = models.DefaultLowStockThreshold
	}
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	created, err := s.store.Insert(ctx, models.Product{
		Name:              input.Name,
		Description:       input.Description,
		PriceCents:        input.PriceCents,
		Category:          input.Category,
		StockLevel:        input.StockLevel,
		LowStockThreshold: input.LowStockThreshold,
		Marketplace:       input.Marketplace,
		Image:             normalizeImage(input.Image),
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithProductID(ctx, created.ID), "product created")
	return &created, nil
}

func (s *service) UpdateInventory(ctx context.Context, id string, input UpdateInventoryInput) (*models.Product, error) {
	if input.StockLevel == nil && input.LowStockThreshold == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock_level or low_stock_threshold is required")
	}
	if input.StockLevel != nil && *input.StockLevel < 0 {
		return nil, fieldError("stock_level", "must be >= 0")
	}
	if input.LowStockThreshold != nil && *input.LowStockThreshold < 1 {
		return nil, fieldError("low_stock_threshold", "must be >= 1")
	}

	now := s.now().UTC()
	updated, ok, err := s.store.Update(ctx, id, func(p *models.Product) {
		if input.StockLevel != nil {
			p.StockLevel = *input.StockLevel
		}
		if input.LowStockThreshold != nil {
			p.LowStockThreshold = *input.LowStockThreshold
		}
		p.UpdatedAt = now
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "product %s not found", id)
	}

	ctx = s.logg.WithProductID(ctx, id)
	if updated.NeedsRestock() {
		s.logg.Warn(s.logg.WithField(ctx, "stock_level", updated.StockLevel), "inventory below threshold")
	} else {
		s.logg.Info(ctx, "inventory updated")
	}
	return &updated, nil
}

func validateCreate(input CreateProductInput) error {
	switch {
	case input.Name == "":
		return fieldError("name", "is required")
	case input.Description == "":
		return fieldError("description", "is required")
	case !input.Category.IsValid():
		return fieldError("category", fmt.Sprintf("must be one of %v", enums.ProductCategories()))
	case !input.Marketplace.IsValid():
		return fieldError("marketplace", fmt.Sprintf("must be one of %v", enums.ListingMarketplaces()))
	case input.PriceCents < 0:
		return fieldError("price_cents", "must be >= 0")
	case input.StockLevel < 0:
		return fieldError("stock_level", "must be >= 0")
	case input.LowStockThreshold < 1:
		return fieldError("low_stock_threshold", "must be >= 1")
	}
	return nil
}

func normalizeImage(image *string) *string {
	if image == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*image)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func fieldError(field, msg string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, field+" "+msg).
		WithDetails(map[string]string{field: msg})
}
