// Command salesreport runs the full sales-analytics pipeline over one
// point-of-sale export and writes the dashboard tables as CSV reports
// and an Excel workbook.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"menupulse/internal/analytics"
	"menupulse/internal/config"
	"menupulse/internal/dataset"
	"menupulse/internal/errs"
	"menupulse/internal/exporter"
)

func main() {
	input := flag.String("input", "", "path to the sales CSV or XLSX file")
	outputDir := flag.String("out", "", "output directory for reports (defaults to reports)")
	sheet := flag.String("sheet", "", "sheet name for XLSX input (defaults to the first sheet)")
	whatIfItem := flag.String("whatif-item", "", "item name to run the what-if simulation for")
	whatIfCount := flag.Float64("whatif-count", 0, "what-if change in quantity sold, percent")
	whatIfPrice := flag.Float64("whatif-price", 0, "what-if change in price, percent")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.Logging)

	if *input == "" {
		*input = cfg.Paths.InputFile
	}
	if *input == "" {
		slog.Error("No input file given", "hint", "pass -input or set paths.input_file")
		os.Exit(1)
	}
	if *outputDir == "" {
		*outputDir = cfg.Paths.ReportsDir
	}

	slog.Info("Loading sales data", "path", *input)
	ds, err := loadDataset(*input, *sheet)
	if err != nil {
		slog.Error("Failed to load sales data", "error", err)
		os.Exit(1)
	}

	report := exporter.NewReport(*input)
	report.Monthly = analytics.MonthlyRevenue(ds)
	report.TopItems = analytics.TopItems(ds, cfg.Analysis.TopItems)
	report.Rollup = analytics.CategoryRollup(ds)

	topNames := make([]string, len(report.TopItems))
	for i, item := range report.TopItems {
		topNames[i] = item.ItemName
	}
	report.Trends = analytics.ItemMonthMatrix(ds, topNames)

	report.Growth = analytics.AnalyzeGrowth(ds, analytics.GrowthConfig{
		VolumeFloor: cfg.Analysis.GrowthVolumeFloor,
		TopK:        cfg.Analysis.GrowthTopK,
		Baseline:    analytics.BaselinePolicy(cfg.Analysis.GrowthBaseline),
	})
	report.Pareto = analytics.AnalyzePareto(ds, analytics.ParetoConfig{
		MaxRows:   cfg.Analysis.ParetoMaxRows,
		TargetPct: cfg.Analysis.ParetoTargetPct,
	})
	report.Summary = analytics.BuildExecutiveSummary(report.TopItems, report.Growth, report.Pareto)

	if *whatIfItem != "" {
		result, err := analytics.Simulate(analytics.Summarize(ds), analytics.WhatIfChange{
			ItemName:       *whatIfItem,
			CountChangePct: *whatIfCount,
			PriceChangePct: *whatIfPrice,
		})
		if err != nil {
			// A missing item aborts the simulation, not the other analyses.
			if errors.Is(err, errs.ErrItemNotFound) {
				slog.Error("What-if item not found, skipping simulation", "item", *whatIfItem)
			} else {
				slog.Error("What-if simulation failed", "error", err)
			}
		} else {
			report.WhatIf = &result
		}
	}

	writer := exporter.NewReportWriter(*outputDir)
	if err := writer.WriteAll(report); err != nil {
		slog.Error("Failed to write CSV reports", "error", err)
		os.Exit(1)
	}

	workbookPath := filepath.Join(*outputDir, "dashboard.xlsx")
	if err := exporter.WriteWorkbook(report, workbookPath); err != nil {
		slog.Error("Failed to write dashboard workbook", "error", err)
		os.Exit(1)
	}

	slog.Info("Reports generated",
		"run_id", report.RunID,
		"reports_dir", *outputDir,
		"workbook", workbookPath)

	printSummary(report)
}

func loadDataset(path, sheet string) (*dataset.Dataset, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return dataset.LoadExcel(path, sheet)
	}
	return dataset.LoadCSV(path)
}

func setupLogger(cfg config.LoggingConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func printSummary(report *exporter.Report) {
	fmt.Println("\n=== EXECUTIVE SUMMARY ===")
	fmt.Printf("Focus Your Efforts:  %s\n", report.Summary.Pareto)
	fmt.Printf("Protect Your Superstar: '%s' is your #1 item.\n", report.Summary.Superstar)
	fmt.Printf("Reorder Alert:       '%s' is your fastest-growing item.\n", report.Summary.RisingStar)
	fmt.Printf("Overstock Alert:     '%s' is declining fast.\n", report.Summary.FadingItem)

	fmt.Println("\n=== MONTHLY REVENUE ===")
	fmt.Println("Month     | Revenue")
	fmt.Println("----------|-----------")
	for _, row := range report.Monthly {
		fmt.Printf("%-9s | %10.2f\n", row.Label, row.Amount)
	}

	fmt.Println("\n=== TOP ITEMS BY REVENUE ===")
	fmt.Println("Rank | Item | Revenue")
	fmt.Println("-----|------|--------")
	for i, item := range report.TopItems {
		fmt.Printf("%4d | %-30s | %10.2f\n", i+1, item.ItemName, item.Amount)
	}

	if report.WhatIf != nil {
		fmt.Println("\n=== WHAT-IF SIMULATION ===")
		fmt.Printf("Median revenue: %.2f | Median units: %.2f\n",
			report.WhatIf.MedianAmount, report.WhatIf.MedianCount)
		for _, row := range report.WhatIf.Rows {
			if row.Target {
				fmt.Printf("WHAT-IF %s: units %.0f, avg price %.2f, revenue %.2f (%s)\n",
					row.ItemName, row.TotalCount, row.AvgPrice, row.TotalAmount, row.Quadrant)
			}
		}
	}
}
