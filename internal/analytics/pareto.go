package analytics

import (
	"fmt"

	"menupulse/internal/dataset"
)

// TailBucketName labels the synthetic row holding the collapsed tail of
// the Pareto ranking.
const TailBucketName = "All Other Items"

// ParetoConfig controls the concentration analysis
type ParetoConfig struct {
	// MaxRows caps the displayed ranking; items beyond it collapse into
	// the tail bucket.
	MaxRows int
	// TargetPct is the cumulative-share threshold to report against.
	TargetPct float64
}

// DefaultParetoConfig returns the reference parameters (top 20 rows,
// 80% target).
func DefaultParetoConfig() ParetoConfig {
	return ParetoConfig{MaxRows: 20, TargetPct: 80}
}

// ParetoRow is one row of the ranked concentration table
type ParetoRow struct {
	ItemName         string  `json:"item_name"`
	Amount           float64 `json:"amount"`
	CumulativeAmount float64 `json:"cumulative_amount"`
	CumulativePct    float64 `json:"cumulative_pct"`
}

// ParetoResult is the concentration analysis output. ItemsForTarget is
// counted on the displayed ranking (tail bucket included), but
// CatalogPct divides by the full untruncated catalog size: the summary
// statistic and the chart data use different denominators on purpose.
type ParetoResult struct {
	Rows           []ParetoRow `json:"rows"`
	ItemsForTarget int         `json:"items_for_target"`
	CatalogSize    int         `json:"catalog_size"`
	CatalogPct     float64     `json:"catalog_pct"`
	Summary        string      `json:"summary"`
	// Complete is false when no row reaches the target share (empty or
	// pathological data); callers treat that as a valid outcome.
	Complete bool `json:"complete"`
}

// incompleteSummary is reported when the target share is never reached.
const incompleteSummary = "Pareto analysis incomplete (insufficient item diversity)."

// AnalyzePareto ranks items by revenue, collapses the tail beyond the
// row cap into one bucket, and finds the minimal number of top rows
// whose cumulative share reaches the target.
func AnalyzePareto(ds *dataset.Dataset, cfg ParetoConfig) ParetoResult {
	result := ParetoResult{Summary: incompleteSummary}
	if ds.Len() == 0 {
		return result
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = DefaultParetoConfig().MaxRows
	}
	if cfg.TargetPct <= 0 {
		cfg.TargetPct = DefaultParetoConfig().TargetPct
	}

	ranked := TopItems(ds, 0)
	result.CatalogSize = len(ranked)

	display := ranked
	if len(ranked) > cfg.MaxRows {
		display = make([]ItemRevenue, 0, cfg.MaxRows+1)
		display = append(display, ranked[:cfg.MaxRows]...)
		var tail float64
		for _, item := range ranked[cfg.MaxRows:] {
			tail += item.Amount
		}
		display = append(display, ItemRevenue{ItemName: TailBucketName, Amount: tail})
	}

	var total float64
	for _, item := range display {
		total += item.Amount
	}
	if total <= 0 {
		return result
	}

	var running float64
	result.Rows = make([]ParetoRow, len(display))
	for i, item := range display {
		running += item.Amount
		result.Rows[i] = ParetoRow{
			ItemName:         item.ItemName,
			Amount:           item.Amount,
			CumulativeAmount: running,
			CumulativePct:    100 * running / total,
		}
	}

	for i, row := range result.Rows {
		if row.CumulativePct >= cfg.TargetPct {
			result.ItemsForTarget = i + 1
			result.CatalogPct = 100 * float64(result.ItemsForTarget) / float64(result.CatalogSize)
			result.Summary = fmt.Sprintf(
				"Your Top %d items (just %.1f%% of your menu) drive %.0f%% of your revenue.",
				result.ItemsForTarget, result.CatalogPct, cfg.TargetPct)
			result.Complete = true
			break
		}
	}

	return result
}
