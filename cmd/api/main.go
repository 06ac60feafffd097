package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/angelmondragon/salesboard/api/middleware"
	"github.com/angelmondragon/salesboard/api/routes"
	"github.com/angelmondragon/salesboard/internal/analytics"
	"github.com/angelmondragon/salesboard/internal/catalog"
	"github.com/angelmondragon/salesboard/internal/generator"
	"github.com/angelmondragon/salesboard/pkg/config"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/angelmondragon/salesboard/pkg/metrics"
	"github.com/angelmondragon/salesboard/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: cfg.App.ServiceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := generator.New(cfg.Dataset.Seed, nil)
	dataset := gen.Build(cfg.Dataset.ProductCount, cfg.Dataset.OrderCount)
	logg.Info(logg.WithFields(ctx, map[string]any{
		"products": len(dataset.Products),
		"orders":   len(dataset.Orders),
		"seed":     cfg.Dataset.Seed,
	}), "mock dataset generated")

	store := catalog.NewStore(dataset.Products)
	catalogService, err := catalog.NewService(store, logg, nil)
	if err != nil {
		logg.Error(ctx, "failed to create catalog service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	analyticsService, err := analytics.NewService(analytics.ServiceParams{
		Products: store,
		Orders:   dataset.Orders,
		Random:   gen,
		Metrics:  metrics.NewAggregationMetrics(registry),
	})
	if err != nil {
		logg.Error(ctx, "failed to create analytics service", err)
		os.Exit(1)
	}

	var (
		redisClient *redis.Client
		redisPinger redis.Pinger
		rateStore   middleware.RateLimiterStore
	)
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			os.Exit(1)
		}
		redisPinger = redisClient
		rateStore = redisClient
	} else {
		logg.Warn(ctx, "redis not configured, write rate limiting disabled")
	}

	addr := ":" + cfg.App.Port
	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisPinger,
			rateStore,
			metrics.NewHTTPMetrics(registry),
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			analyticsService,
			catalogService,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(serverCtx, "starting api server")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(serverCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
		return
	case <-ctx.Done():
		logg.Info(serverCtx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if redisClient != nil {
		err = multierr.Append(err, redisClient.Close())
	}
	if err != nil {
		logg.Error(serverCtx, "api server shutdown incomplete", err)
		os.Exit(1)
	}
	logg.Info(serverCtx, "api server stopped")
}
