package analytics

import (
	"context"

	"github.com/angelmondragon/salesboard/internal/analytics"
	"github.com/angelmondragon/salesboard/pkg/enums"
)

type testAnalyticsService struct {
	lastQuery    *analytics.RevenueQuery
	lastCategory enums.ProductCategory
	report       *analytics.RevenueReport
	points       []analytics.RevenuePoint
	err          error
}

func (s *testAnalyticsService) Dashboard(ctx context.Context) (*analytics.DashboardResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &analytics.DashboardResponse{Summary: analytics.Summary{TotalOrders: 3}}, nil
}

func (s *testAnalyticsService) Revenue(ctx context.Context, query analytics.RevenueQuery) (*analytics.RevenueReport, error) {
	s.lastQuery = &query
	if s.err != nil {
		return nil, s.err
	}
	if s.report == nil {
		s.report = &analytics.RevenueReport{Range: query.Range, Category: analytics.AllCategories}
	}
	return s.report, nil
}

func (s *testAnalyticsService) Daily(ctx context.Context) ([]analytics.RevenuePoint, error) {
	return s.series()
}

func (s *testAnalyticsService) Weekly(ctx context.Context) ([]analytics.RevenuePoint, error) {
	return s.series()
}

func (s *testAnalyticsService) Monthly(ctx context.Context) ([]analytics.RevenuePoint, error) {
	return s.series()
}

func (s *testAnalyticsService) Annual(ctx context.Context) ([]analytics.RevenuePoint, error) {
	return s.series()
}

func (s *testAnalyticsService) Categories(ctx context.Context) ([]analytics.CategorySales, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []analytics.CategorySales{{Category: enums.ProductCategoryBooks, RevenueCents: 4000, Orders: 1}}, nil
}

func (s *testAnalyticsService) Marketplaces(ctx context.Context) ([]analytics.MarketplaceSales, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []analytics.MarketplaceSales{{Marketplace: enums.MarketplaceAmazon}, {Marketplace: enums.MarketplaceWalmart}}, nil
}

func (s *testAnalyticsService) CategoryDaily(ctx context.Context, category enums.ProductCategory) ([]analytics.RevenuePoint, error) {
	s.lastCategory = category
	return s.series()
}

func (s *testAnalyticsService) series() ([]analytics.RevenuePoint, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.points, nil
}
