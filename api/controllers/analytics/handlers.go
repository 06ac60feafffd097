package analytics

import (
	"context"
	"net/http"

	"github.com/angelmondragon/salesboard/api/responses"
	"github.com/angelmondragon/salesboard/internal/analytics"
	"github.com/angelmondragon/salesboard/pkg/logger"
)

// Dashboard serves the landing page KPIs and charts.
func Dashboard(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		result, err := service.Dashboard(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// Revenue serves the revenue page for ?range= and ?category=.
func Revenue(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query, err := parseRevenueQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.Revenue(ctx, query)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func DailyRevenue(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return series(logg, service.Daily)
}

func WeeklyRevenue(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return series(logg, service.Weekly)
}

func MonthlyRevenue(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return series(logg, service.Monthly)
}

func AnnualRevenue(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return series(logg, service.Annual)
}

func CategorySales(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return series(logg, service.Categories)
}

func MarketplaceSales(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return series(logg, service.Marketplaces)
}

// CategoryDailyRevenue serves the daily series for the {category} path segment.
func CategoryDailyRevenue(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		category, err := categoryParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		points, err := service.CategoryDaily(ctx, category)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteList(w, points, len(points))
	}
}

func series[T any](logg *logger.Logger, load func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		items, err := load(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteList(w, items, len(items))
	}
}
