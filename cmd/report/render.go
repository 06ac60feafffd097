package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/angelmondragon/salesboard/internal/analytics"
	"github.com/angelmondragon/salesboard/pkg/money"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type report struct {
	GeneratedAt      time.Time                    `json:"generated_at"`
	Summary          analytics.Summary            `json:"summary"`
	CategorySales    []analytics.CategorySales    `json:"category_sales"`
	MarketplaceSales []analytics.MarketplaceSales `json:"marketplace_sales"`
}

func render(w io.Writer, format string, rep report) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case formatText:
		return renderText(w, rep)
	}
	return fmt.Errorf("unsupported format %q", format)
}

func renderText(w io.Writer, rep report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Generated\t%s\n", rep.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(tw, "Total revenue\t%s\n", money.FormatGrouped(rep.Summary.TotalRevenueCents))
	fmt.Fprintf(tw, "Completed orders\t%d\n", rep.Summary.TotalOrders)
	fmt.Fprintf(tw, "Products\t%d\n", rep.Summary.TotalProducts)
	fmt.Fprintf(tw, "Low stock\t%d\n", rep.Summary.LowStockCount)

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "CATEGORY\tREVENUE\tORDERS")
	for _, row := range rep.CategorySales {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", row.Category, money.Format(row.RevenueCents), row.Orders)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "MARKETPLACE\tREVENUE\tORDERS")
	for _, row := range rep.MarketplaceSales {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", row.Marketplace, money.Format(row.RevenueCents), row.Orders)
	}

	if len(rep.Summary.StockAlerts) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "STOCK ALERT\tSTATUS\tLEVEL")
		for _, alert := range rep.Summary.StockAlerts {
			fmt.Fprintf(tw, "%s\t%s\t%d/%d\n", alert.Name, alert.Status, alert.StockLevel, alert.LowStockThreshold)
		}
	}

	return tw.Flush()
}
