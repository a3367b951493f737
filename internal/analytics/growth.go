package analytics

import (
	"math"
	"sort"

	"menupulse/internal/dataset"
)

// growthEpsilon pads the first-half denominator under the epsilon
// baseline policy. It avoids a hard division by zero; it is not a true
// zero-base guard, so a zero first half shows as a very large finite
// percentage rather than an undefined one.
const growthEpsilon = 1e-6

// BaselinePolicy selects how a zero first-half baseline is treated.
type BaselinePolicy string

const (
	// BaselineEpsilon divides by (first half + 1e-6), reproducing the
	// legacy behavior: zero-baseline items rank with huge finite growth.
	BaselineEpsilon BaselinePolicy = "epsilon"
	// BaselineSentinel marks zero-baseline items NoBaseline and keeps
	// them out of the ranked lists.
	BaselineSentinel BaselinePolicy = "sentinel"
)

// GrowthConfig controls the half-over-half growth analysis
type GrowthConfig struct {
	// VolumeFloor drops items whose combined two-half revenue does not
	// exceed it, filtering noise from near-zero-volume items.
	VolumeFloor float64
	// TopK bounds the rising and fading lists.
	TopK int
	// Baseline selects the zero-baseline policy.
	Baseline BaselinePolicy
}

// DefaultGrowthConfig returns the reference parameters
func DefaultGrowthConfig() GrowthConfig {
	return GrowthConfig{
		VolumeFloor: 500,
		TopK:        10,
		Baseline:    BaselineEpsilon,
	}
}

// GrowthRecord compares one item's revenue across the two fixed
// three-month halves of the window.
type GrowthRecord struct {
	ItemName    string  `json:"item_name"`
	FirstHalf   float64 `json:"first_half_amount"`
	SecondHalf  float64 `json:"second_half_amount"`
	GrowthPct   float64 `json:"growth_pct"`
	TotalAmount float64 `json:"total_amount"`
	// NoBaseline is set under the sentinel policy when the first half is
	// zero and no growth percentage is defined.
	NoBaseline bool `json:"no_baseline,omitempty"`
}

// GrowthResult holds the ranked movers. Empty lists are a valid outcome
// (nothing survived the volume filter), not an error.
type GrowthResult struct {
	Rising []GrowthRecord `json:"rising"`
	Fading []GrowthRecord `json:"fading"`
	// NoBaseline lists items excluded from ranking under the sentinel
	// policy; always empty under the epsilon policy.
	NoBaseline []GrowthRecord `json:"no_baseline,omitempty"`
	// Eligible counts items that survived the volume filter.
	Eligible int `json:"eligible"`
}

// AnalyzeGrowth partitions the window into May-July and August-October,
// computes per-item growth between the halves, filters by combined
// volume, and ranks the top movers in both directions. Rows with a month
// outside the window belong to neither half.
func AnalyzeGrowth(ds *dataset.Dataset, cfg GrowthConfig) GrowthResult {
	var result GrowthResult
	if ds.Len() == 0 {
		return result
	}

	firstHalf := make(map[string]float64)
	secondHalf := make(map[string]float64)
	var order []string
	seen := make(map[string]bool)

	for _, r := range ds.Records {
		if !r.Month.Known() {
			continue
		}
		if !seen[r.ItemName] {
			seen[r.ItemName] = true
			order = append(order, r.ItemName)
		}
		if r.Month <= dataset.July {
			firstHalf[r.ItemName] += r.Amount
		} else {
			secondHalf[r.ItemName] += r.Amount
		}
	}

	var eligible []GrowthRecord
	for _, name := range order {
		first := firstHalf[name]
		second := secondHalf[name]
		rec := GrowthRecord{
			ItemName:    name,
			FirstHalf:   first,
			SecondHalf:  second,
			TotalAmount: first + second,
		}
		if rec.TotalAmount <= cfg.VolumeFloor {
			continue
		}

		if first == 0 && cfg.Baseline == BaselineSentinel {
			rec.NoBaseline = true
			result.NoBaseline = append(result.NoBaseline, rec)
			continue
		}

		rec.GrowthPct = 100 * (second - first) / (first + growthEpsilon)
		if math.IsInf(rec.GrowthPct, 0) || math.IsNaN(rec.GrowthPct) {
			continue
		}
		eligible = append(eligible, rec)
	}

	result.Eligible = len(eligible)

	rising := make([]GrowthRecord, len(eligible))
	copy(rising, eligible)
	sort.SliceStable(rising, func(i, j int) bool {
		return rising[i].GrowthPct > rising[j].GrowthPct
	})

	fading := make([]GrowthRecord, len(eligible))
	copy(fading, eligible)
	sort.SliceStable(fading, func(i, j int) bool {
		return fading[i].GrowthPct < fading[j].GrowthPct
	})

	k := cfg.TopK
	if k <= 0 {
		k = DefaultGrowthConfig().TopK
	}
	if len(rising) > k {
		rising = rising[:k]
	}
	if len(fading) > k {
		fading = fading[:k]
	}
	result.Rising = rising
	result.Fading = fading
	return result
}
