package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"menupulse/internal/analytics"
)

// WriteWorkbook writes the full report as one Excel dashboard workbook,
// one sheet per analyzer table plus a summary sheet with run metadata.
func WriteWorkbook(report *Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, report); err != nil {
		return err
	}

	monthly := [][]interface{}{{"Month", "Revenue"}}
	for _, row := range report.Monthly {
		monthly = append(monthly, []interface{}{row.Label, row.Amount})
	}
	if err := writeSheet(f, "Monthly Revenue", monthly); err != nil {
		return err
	}

	top := [][]interface{}{{"Rank", "Item Name", "Revenue"}}
	for i, item := range report.TopItems {
		top = append(top, []interface{}{i + 1, item.ItemName, item.Amount})
	}
	if err := writeSheet(f, "Top Items", top); err != nil {
		return err
	}

	rollup := [][]interface{}{{"Category", "Item Name", "Revenue"}}
	for _, node := range report.Rollup {
		rollup = append(rollup, []interface{}{string(node.Category), "", node.Amount})
		for _, item := range node.Items {
			rollup = append(rollup, []interface{}{string(node.Category), item.ItemName, item.Amount})
		}
	}
	if err := writeSheet(f, "Category Rollup", rollup); err != nil {
		return err
	}

	trends := [][]interface{}{{"Month", "Item Name", "Revenue"}}
	for _, cell := range report.Trends {
		trends = append(trends, []interface{}{cell.Month.String(), cell.ItemName, cell.Amount})
	}
	if err := writeSheet(f, "Trends", trends); err != nil {
		return err
	}

	if err := writeSheet(f, "Rising Items", growthSheet(report.Growth.Rising)); err != nil {
		return err
	}
	if err := writeSheet(f, "Fading Items", growthSheet(report.Growth.Fading)); err != nil {
		return err
	}

	pareto := [][]interface{}{{"Item Name", "Revenue", "Cumulative Revenue", "Cumulative %"}}
	for _, row := range report.Pareto.Rows {
		pareto = append(pareto, []interface{}{row.ItemName, row.Amount, row.CumulativeAmount, row.CumulativePct})
	}
	if err := writeSheet(f, "Pareto", pareto); err != nil {
		return err
	}

	if report.WhatIf != nil {
		whatIf := [][]interface{}{
			{"Median Revenue", report.WhatIf.MedianAmount},
			{"Median Units", report.WhatIf.MedianCount},
			{},
			{"Item Name", "Units", "Avg Price", "Revenue", "Quadrant"},
		}
		for _, row := range report.WhatIf.Rows {
			name := row.ItemName
			if row.Target {
				name = fmt.Sprintf("WHAT-IF: %s", name)
			}
			whatIf = append(whatIf, []interface{}{name, row.TotalCount, row.AvgPrice, row.TotalAmount, string(row.Quadrant)})
		}
		if err := writeSheet(f, "What-If", whatIf); err != nil {
			return err
		}
	}

	// The default sheet is replaced by the summary sheet.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("Wrote dashboard workbook",
		slog.String("path", path),
		slog.String("run_id", report.RunID))
	return nil
}

func growthSheet(records []analytics.GrowthRecord) [][]interface{} {
	rows := [][]interface{}{{"Item Name", "First Half", "Second Half", "Growth %", "Total Revenue"}}
	for _, rec := range records {
		rows = append(rows, []interface{}{rec.ItemName, rec.FirstHalf, rec.SecondHalf, rec.GrowthPct, rec.TotalAmount})
	}
	return rows
}

// writeSummarySheet writes run metadata and the executive summary
func writeSummarySheet(f *excelize.File, report *Report) error {
	rows := [][]interface{}{
		{"Run ID", report.RunID},
		{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Source", report.Source},
		{},
		{"Pareto", report.Summary.Pareto},
		{"Superstar Item", report.Summary.Superstar},
		{"Rising Star", report.Summary.RisingStar},
		{"Fading Item", report.Summary.FadingItem},
	}
	return writeSheet(f, "Summary", rows)
}

// writeSheet creates a sheet and fills it row by row
func writeSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, value); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", name, cell, err)
			}
		}
	}
	return nil
}
