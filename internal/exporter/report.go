package exporter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"menupulse/internal/analytics"
)

// Report bundles every analyzer table produced by one pipeline pass,
// stamped with a run id for traceability across the emitted files.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Source      string

	Monthly  []analytics.MonthRevenue
	TopItems []analytics.ItemRevenue
	Rollup   []analytics.CategoryNode
	Trends   []analytics.MonthItemRevenue
	Growth   analytics.GrowthResult
	Pareto   analytics.ParetoResult
	Summary  analytics.ExecutiveSummary

	// WhatIf is present only when a simulation was requested.
	WhatIf *analytics.WhatIfResult
}

// NewReport creates a report shell for the given source file
func NewReport(source string) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		Source:      source,
	}
}

// ReportWriter writes a Report as a set of CSV files
type ReportWriter struct {
	csv *CSVWriter
}

// NewReportWriter creates a report writer rooted at the given directory
func NewReportWriter(reportsDir string) *ReportWriter {
	return &ReportWriter{csv: NewCSVWriter(reportsDir)}
}

// WriteAll writes every table of the report as its own CSV file
func (w *ReportWriter) WriteAll(report *Report) error {
	if err := w.writeMonthly(report); err != nil {
		return err
	}
	if err := w.writeTopItems(report); err != nil {
		return err
	}
	if err := w.writeRollup(report); err != nil {
		return err
	}
	if err := w.writeTrends(report); err != nil {
		return err
	}
	if err := w.writeGrowth(report); err != nil {
		return err
	}
	if err := w.writePareto(report); err != nil {
		return err
	}
	if err := w.writeExecutiveSummary(report); err != nil {
		return err
	}
	if report.WhatIf != nil {
		if err := w.writeWhatIf(report); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReportWriter) writeMonthly(report *Report) error {
	records := make([][]string, 0, len(report.Monthly))
	for _, row := range report.Monthly {
		records = append(records, []string{row.Label, money(row.Amount)})
	}
	return w.csv.WriteSimpleCSV("monthly_revenue.csv", []string{"Month", "Revenue"}, records)
}

func (w *ReportWriter) writeTopItems(report *Report) error {
	records := make([][]string, 0, len(report.TopItems))
	for i, item := range report.TopItems {
		records = append(records, []string{strconv.Itoa(i + 1), item.ItemName, money(item.Amount)})
	}
	return w.csv.WriteSimpleCSV("top_items.csv", []string{"Rank", "Item Name", "Revenue"}, records)
}

func (w *ReportWriter) writeRollup(report *Report) error {
	var records [][]string
	for _, node := range report.Rollup {
		// Branch total first, then its leaves.
		records = append(records, []string{string(node.Category), "", money(node.Amount)})
		for _, item := range node.Items {
			records = append(records, []string{string(node.Category), item.ItemName, money(item.Amount)})
		}
	}
	return w.csv.WriteSimpleCSV("category_rollup.csv", []string{"Category", "Item Name", "Revenue"}, records)
}

func (w *ReportWriter) writeTrends(report *Report) error {
	records := make([][]string, 0, len(report.Trends))
	for _, cell := range report.Trends {
		records = append(records, []string{cell.Month.String(), cell.ItemName, money(cell.Amount)})
	}
	return w.csv.WriteSimpleCSV("item_month_trends.csv", []string{"Month", "Item Name", "Revenue"}, records)
}

func (w *ReportWriter) writeGrowth(report *Report) error {
	headers := []string{"Item Name", "First Half", "Second Half", "Growth %", "Total Revenue"}
	if err := w.csv.WriteSimpleCSV("rising_items.csv", headers, growthRecords(report.Growth.Rising)); err != nil {
		return err
	}
	return w.csv.WriteSimpleCSV("fading_items.csv", headers, growthRecords(report.Growth.Fading))
}

func growthRecords(records []analytics.GrowthRecord) [][]string {
	out := make([][]string, 0, len(records))
	for _, rec := range records {
		out = append(out, []string{
			rec.ItemName,
			money(rec.FirstHalf),
			money(rec.SecondHalf),
			fmt.Sprintf("%.1f", rec.GrowthPct),
			money(rec.TotalAmount),
		})
	}
	return out
}

func (w *ReportWriter) writePareto(report *Report) error {
	records := make([][]string, 0, len(report.Pareto.Rows))
	for _, row := range report.Pareto.Rows {
		records = append(records, []string{
			row.ItemName,
			money(row.Amount),
			money(row.CumulativeAmount),
			fmt.Sprintf("%.2f", row.CumulativePct),
		})
	}
	return w.csv.WriteSimpleCSV("pareto.csv",
		[]string{"Item Name", "Revenue", "Cumulative Revenue", "Cumulative %"}, records)
}

// writeExecutiveSummary writes the headline report in the metadata-rows
// style: label/value pairs rather than a homogeneous table.
func (w *ReportWriter) writeExecutiveSummary(report *Report) error {
	records := [][]string{
		{"Run ID", report.RunID},
		{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Source", report.Source},
		{"Pareto", report.Summary.Pareto},
		{"Superstar Item", report.Summary.Superstar},
		{"Rising Star", report.Summary.RisingStar},
		{"Fading Item", report.Summary.FadingItem},
	}
	return w.csv.WriteCSV("executive_summary.csv", WriteOptions{Records: records, BOMPrefix: true})
}

// writeWhatIf writes the simulated summary with a metadata section for
// the recomputed quadrant boundaries, then the table itself.
func (w *ReportWriter) writeWhatIf(report *Report) error {
	records := [][]string{
		{"Median Revenue:", money(report.WhatIf.MedianAmount)},
		{"Median Units:", fmt.Sprintf("%.2f", report.WhatIf.MedianCount)},
		{""},
		{"Item Name", "Units", "Avg Price", "Revenue", "Quadrant", "Note"},
	}
	for _, row := range report.WhatIf.Rows {
		target := ""
		if row.Target {
			target = "what-if"
		}
		records = append(records, []string{
			row.ItemName,
			fmt.Sprintf("%.2f", row.TotalCount),
			money(row.AvgPrice),
			money(row.TotalAmount),
			string(row.Quadrant),
			target,
		})
	}
	return w.csv.WriteCSV("whatif_summary.csv", WriteOptions{Records: records, BOMPrefix: true})
}

// money formats a currency value with two decimals
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
