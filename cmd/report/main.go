package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/angelmondragon/salesboard/internal/analytics"
	"github.com/angelmondragon/salesboard/internal/generator"
	"github.com/angelmondragon/salesboard/pkg/config"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "report", Output: os.Stderr})

	_ = godotenv.Load()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	seed := flag.Uint64("seed", cfg.Dataset.Seed, "generator seed (0 seeds from the clock)")
	products := flag.Int("products", cfg.Dataset.ProductCount, "number of products to generate")
	orders := flag.Int("orders", cfg.Dataset.OrderCount, "number of orders to generate")
	format := flag.String("format", formatText, "output format: text|json")
	flag.Parse()

	logg = logger.New(logger.Options{
		ServiceName: "report",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
		Output:      os.Stderr,
	})

	ctx = logg.WithFields(ctx, map[string]any{
		"seed":     *seed,
		"products": *products,
		"orders":   *orders,
		"format":   *format,
	})

	if *products < 0 || *orders < 0 {
		fmt.Fprintln(os.Stderr, "-products and -orders must be >= 0")
		os.Exit(2)
	}

	gen := generator.New(*seed, nil)
	dataset := gen.Build(*products, *orders)
	index := analytics.NewProductIndex(dataset.Products)

	rep := report{
		GeneratedAt:      dataset.GeneratedAt,
		Summary:          analytics.Summarize(dataset.Orders, dataset.Products),
		CategorySales:    analytics.SalesByCategory(dataset.Orders, index),
		MarketplaceSales: analytics.SalesByMarketplace(dataset.Orders),
	}
	logg.Info(ctx, "report generated")

	if err := render(os.Stdout, *format, rep); err != nil {
		fmt.Fprintf(os.Stderr, "failed to render report: %v\n", err)
		os.Exit(1)
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err != nil {
		logg.Error(logg.WithField(ctx, "resource", resource), "failed to initialize resource", err)
		os.Exit(1)
	}
}
