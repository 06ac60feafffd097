package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/salesboard/api/controllers"
	analyticscontrollers "github.com/angelmondragon/salesboard/api/controllers/analytics"
	productcontrollers "github.com/angelmondragon/salesboard/api/controllers/products"
	"github.com/angelmondragon/salesboard/api/middleware"
	"github.com/angelmondragon/salesboard/internal/analytics"
	"github.com/angelmondragon/salesboard/internal/catalog"
	"github.com/angelmondragon/salesboard/pkg/config"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/angelmondragon/salesboard/pkg/metrics"
	"github.com/angelmondragon/salesboard/pkg/redis"
)

// NewRouter wires the dashboard API. redisPinger and rateStore may be nil when redis is not
// configured; metricsHandler may be nil to skip the scrape endpoint.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisPinger redis.Pinger,
	rateStore middleware.RateLimiterStore,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	analyticsService analytics.Service,
	catalogService catalog.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Metrics(httpMetrics),
	)

	writePolicy := middleware.NewWriteRateLimitPolicy(cfg.RateLimit.WriteWindow, cfg.RateLimit.WriteLimit)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisPinger))
	})

	if cfg.Metrics.Enabled && metricsHandler != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.WriteRateLimit(writePolicy, rateStore, logg))

		r.Get("/dashboard", analyticscontrollers.Dashboard(analyticsService, logg))

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/revenue", analyticscontrollers.Revenue(analyticsService, logg))
			r.Get("/daily", analyticscontrollers.DailyRevenue(analyticsService, logg))
			r.Get("/weekly", analyticscontrollers.WeeklyRevenue(analyticsService, logg))
			r.Get("/monthly", analyticscontrollers.MonthlyRevenue(analyticsService, logg))
			r.Get("/annual", analyticscontrollers.AnnualRevenue(analyticsService, logg))
			r.Get("/categories", analyticscontrollers.CategorySales(analyticsService, logg))
			r.Get("/categories/{category}/daily", analyticscontrollers.CategoryDailyRevenue(analyticsService, logg))
			r.Get("/marketplaces", analyticscontrollers.MarketplaceSales(analyticsService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productcontrollers.List(catalogService, logg))
			r.Post("/", productcontrollers.Create(catalogService, logg))
			r.Get("/categories", productcontrollers.Categories(catalogService, logg))
			r.Get("/{productId}", productcontrollers.Get(catalogService, logg))
			r.Patch("/{productId}/inventory", productcontrollers.UpdateInventory(catalogService, logg))
		})
	})

	return r
}
