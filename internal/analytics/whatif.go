package analytics

import (
	"menupulse/internal/errs"
)

// Quadrant classifies an item against the median revenue and median
// volume of the (possibly simulated) summary table. The labels follow
// the dashboard's quadrant annotations.
type Quadrant string

// Quadrant values.
const (
	// QuadrantStar: high sales, high revenue.
	QuadrantStar Quadrant = "STARS"
	// QuadrantNichePremium: low sales, high revenue.
	QuadrantNichePremium Quadrant = "NICHE/PREMIUM"
	// QuadrantWorkhorse: high sales, low revenue.
	QuadrantWorkhorse Quadrant = "WORKHORSES"
	// QuadrantDog: low sales, low revenue.
	QuadrantDog Quadrant = "DOGS"
)

// WhatIfChange describes the hypothetical perturbation applied to one item
type WhatIfChange struct {
	ItemName       string  `json:"item_name"`
	CountChangePct float64 `json:"count_change_pct"`
	PriceChangePct float64 `json:"price_change_pct"`
}

// WhatIfRow is one row of the simulated summary with its quadrant
type WhatIfRow struct {
	ItemSummary
	Quadrant Quadrant `json:"quadrant"`
	// Target marks the perturbed item.
	Target bool `json:"target,omitempty"`
}

// WhatIfResult is the simulated summary table plus the recomputed
// quadrant boundaries. The medians are taken over the modified table, so
// perturbing one item can shift every item's quadrant.
type WhatIfResult struct {
	Rows         []WhatIfRow `json:"rows"`
	MedianAmount float64     `json:"median_amount"`
	MedianCount  float64     `json:"median_count"`
}

// Simulate applies a hypothetical count/price change to one item on an
// isolated copy of the summary table and reclassifies every item against
// the recomputed medians. The input table is never mutated. Returns
// errs.ErrItemNotFound when the target item is absent.
func Simulate(summary []ItemSummary, change WhatIfChange) (WhatIfResult, error) {
	var result WhatIfResult

	target := -1
	for i, row := range summary {
		if row.ItemName == change.ItemName {
			target = i
			break
		}
	}
	if target == -1 {
		return result, errs.ItemNotFound(change.ItemName)
	}

	modified := make([]ItemSummary, len(summary))
	copy(modified, summary)

	newCount := modified[target].TotalCount * (1 + change.CountChangePct/100)
	newPrice := modified[target].AvgPrice * (1 + change.PriceChangePct/100)
	modified[target].TotalCount = newCount
	modified[target].AvgPrice = newPrice
	modified[target].TotalAmount = newCount * newPrice

	amounts := make([]float64, len(modified))
	counts := make([]float64, len(modified))
	for i, row := range modified {
		amounts[i] = row.TotalAmount
		counts[i] = row.TotalCount
	}
	result.MedianAmount = median(amounts)
	result.MedianCount = median(counts)

	result.Rows = make([]WhatIfRow, len(modified))
	for i, row := range modified {
		result.Rows[i] = WhatIfRow{
			ItemSummary: row,
			Quadrant:    classifyQuadrant(row, result.MedianAmount, result.MedianCount),
			Target:      i == target,
		}
	}
	return result, nil
}

// classifyQuadrant buckets an item using the medians as split points.
// Values equal to a median count as high.
func classifyQuadrant(row ItemSummary, medianAmount, medianCount float64) Quadrant {
	highRevenue := row.TotalAmount >= medianAmount
	highVolume := row.TotalCount >= medianCount
	switch {
	case highVolume && highRevenue:
		return QuadrantStar
	case !highVolume && highRevenue:
		return QuadrantNichePremium
	case highVolume && !highRevenue:
		return QuadrantWorkhorse
	default:
		return QuadrantDog
	}
}
