// Package analytics derives the dashboard tables from the canonical
// dataset: grouped revenue views, half-over-half growth, Pareto
// concentration, and the what-if simulation. Every function is a pure
// fold over its input; nothing here mutates the dataset.
package analytics

import (
	"sort"

	"menupulse/internal/dataset"
)

// priceEpsilon pads the count denominator so a zero-count item yields an
// average price of ~0 instead of a division by zero.
const priceEpsilon = 1e-6

// ItemSummary is the per-item rollup: total revenue, total units sold,
// and the derived average price.
type ItemSummary struct {
	ItemName    string  `json:"item_name"`
	TotalAmount float64 `json:"total_amount"`
	TotalCount  float64 `json:"total_count"`
	AvgPrice    float64 `json:"avg_price"`
}

// Summarize builds the item summary table, one row per distinct item in
// input encounter order. The table is recomputed fresh on every call so
// callers can hand it to the simulator without aliasing concerns.
func Summarize(ds *dataset.Dataset) []ItemSummary {
	if ds.Len() == 0 {
		return nil
	}

	index := make(map[string]int)
	var summaries []ItemSummary

	for _, r := range ds.Records {
		i, ok := index[r.ItemName]
		if !ok {
			i = len(summaries)
			index[r.ItemName] = i
			summaries = append(summaries, ItemSummary{ItemName: r.ItemName})
		}
		summaries[i].TotalAmount += r.Amount
		summaries[i].TotalCount += float64(r.Count)
	}

	for i := range summaries {
		summaries[i].AvgPrice = summaries[i].TotalAmount / (summaries[i].TotalCount + priceEpsilon)
	}

	return summaries
}

// median returns the middle value of the input, averaging the two middle
// values for even lengths. The input slice is not modified.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
