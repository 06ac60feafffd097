package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/salesboard/pkg/enums"
	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/angelmondragon/salesboard/pkg/metrics"
	"github.com/angelmondragon/salesboard/pkg/models"
)

// AllCategories selects the unfiltered series on the revenue page.
const AllCategories = "all"

// Service provides the dashboard and revenue page reports.
type Service interface {
	Dashboard(ctx context.Context) (*DashboardResponse, error)
	Revenue(ctx context.Context, query RevenueQuery) (*RevenueReport, error)
	Daily(ctx context.Context) ([]RevenuePoint, error)
	Weekly(ctx context.Context) ([]RevenuePoint, error)
	Monthly(ctx context.Context) ([]RevenuePoint, error)
	Annual(ctx context.Context) ([]RevenuePoint, error)
	Categories(ctx context.Context) ([]CategorySales, error)
	Marketplaces(ctx context.Context) ([]MarketplaceSales, error)
	CategoryDaily(ctx context.Context, category enums.ProductCategory) ([]RevenuePoint, error)
}

// ProductSource yields the current catalog.
type ProductSource interface {
	All(ctx context.Context) ([]models.Product, error)
}

// ServiceParams wires the analytics service. Random seeds the mock monthly and annual series
// once at construction. A nil Clock uses time.Now and nil Metrics records nothing.
type ServiceParams struct {
	Products ProductSource
	Orders   []models.Order
	Random   RandomSource
	Clock    func() time.Time
	Metrics  *metrics.AggregationMetrics
}

type service struct {
	products ProductSource
	orders   []models.Order
	clock    func() time.Time
	metrics  *metrics.AggregationMetrics
	monthly  []RevenuePoint
	annual   []RevenuePoint
}

// NewService builds the analytics service over an order snapshot.
func NewService(params ServiceParams) (Service, error) {
	if params.Products == nil {
		return nil, fmt.Errorf("product source required")
	}
	if params.Random == nil {
		return nil, fmt.Errorf("random source required")
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	orders := append([]models.Order(nil), params.Orders...)
	return &service{
		products: params.Products,
		orders:   orders,
		clock:    clock,
		metrics:  params.Metrics,
		monthly:  MonthlyRevenue(params.Random),
		annual:   AnnualRevenue(params.Random, clock()),
	}, nil
}

func (s *service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	defer s.metrics.Track("dashboard")()

	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	index := NewProductIndex(products)
	return &DashboardResponse{
		Summary:          Summarize(s.orders, products),
		DailyRevenue:     DailyRevenue(s.orders, s.clock()),
		CategorySales:    SalesByCategory(s.orders, index),
		MarketplaceSales: SalesByMarketplace(s.orders),
	}, nil
}

// Revenue returns the range series, or the category's daily series when a category is
// selected. A category selection ignores the range.
func (s *service) Revenue(ctx context.Context, query RevenueQuery) (*RevenueReport, error) {
	defer s.metrics.Track("revenue")()

	timeRange := query.Range
	if timeRange == "" {
		timeRange = enums.TimeRangeDaily
	}
	if !timeRange.IsValid() {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid range %q", query.Range).
			WithDetails(map[string]string{"range": "must be one of daily, weekly, monthly, annually"})
	}

	selected := strings.TrimSpace(query.Category)
	var category enums.ProductCategory
	if selected != "" && !strings.EqualFold(selected, AllCategories) {
		parsed, err := enums.ParseProductCategory(selected)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category").
				WithDetails(map[string]string{"category": err.Error()})
		}
		category = parsed
	}

	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	index := NewProductIndex(products)
	now := s.clock()

	report := &RevenueReport{
		Range:            timeRange,
		Category:         AllCategories,
		CategorySales:    SalesByCategory(s.orders, index),
		MarketplaceSales: SalesByMarketplace(s.orders),
	}
	if category != "" {
		report.Category = category.String()
		report.Series = RevenueByCategory(s.orders, index, category, now)
	} else {
		report.Series = s.seriesFor(timeRange, now)
	}
	report.TotalRevenueCents, report.TotalOrders = Totals(report.Series)
	return report, nil
}

func (s *service) Daily(ctx context.Context) ([]RevenuePoint, error) {
	defer s.metrics.Track("daily")()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return DailyRevenue(s.orders, s.clock()), nil
}

func (s *service) Weekly(ctx context.Context) ([]RevenuePoint, error) {
	defer s.metrics.Track("weekly")()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return WeeklyRevenue(DailyRevenue(s.orders, s.clock())), nil
}

func (s *service) Monthly(ctx context.Context) ([]RevenuePoint, error) {
	defer s.metrics.Track("monthly")()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return clonePoints(s.monthly), nil
}

func (s *service) Annual(ctx context.Context) ([]RevenuePoint, error) {
	defer s.metrics.Track("annual")()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return clonePoints(s.annual), nil
}

func (s *service) Categories(ctx context.Context) ([]CategorySales, error) {
	defer s.metrics.Track("categories")()
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return SalesByCategory(s.orders, NewProductIndex(products)), nil
}

func (s *service) Marketplaces(ctx context.Context) ([]MarketplaceSales, error) {
	defer s.metrics.Track("marketplaces")()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SalesByMarketplace(s.orders), nil
}

func (s *service) CategoryDaily(ctx context.Context, category enums.ProductCategory) ([]RevenuePoint, error) {
	defer s.metrics.Track("category_daily")()
	if !category.IsValid() {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid category %q", category)
	}
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return RevenueByCategory(s.orders, NewProductIndex(products), category, s.clock()), nil
}

func (s *service) seriesFor(timeRange enums.TimeRange, now time.Time) []RevenuePoint {
	switch timeRange {
	case enums.TimeRangeWeekly:
		return WeeklyRevenue(DailyRevenue(s.orders, now))
	case enums.TimeRangeMonthly:
		return clonePoints(s.monthly)
	case enums.TimeRangeAnnually:
		return clonePoints(s.annual)
	default:
		return DailyRevenue(s.orders, now)
	}
}

func (s *service) loadProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return products, nil
}

func clonePoints(points []RevenuePoint) []RevenuePoint {
	return append([]RevenuePoint(nil), points...)
}
