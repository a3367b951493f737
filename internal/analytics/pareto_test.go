package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menupulse/internal/dataset"
)

func TestAnalyzeParetoCumulativeInvariants(t *testing.T) {
	ds := testDataset(
		sale("Beef Ramen", dataset.May, 500, 50),
		sale("House Fried Rice", dataset.May, 300, 30),
		sale("Thai Iced Tea", dataset.May, 150, 75),
		sale("Kung Pao Chicken", dataset.May, 50, 5),
	)

	result := AnalyzePareto(ds, DefaultParetoConfig())
	require.Len(t, result.Rows, 4)

	// Ranked descending, cumulative share non-decreasing, ending at 100.
	prevPct := 0.0
	for i, row := range result.Rows {
		assert.GreaterOrEqual(t, row.CumulativePct, prevPct, "row %d", i)
		prevPct = row.CumulativePct
		if i > 0 {
			assert.LessOrEqual(t, row.Amount, result.Rows[i-1].Amount)
		}
	}
	assert.InDelta(t, 100, result.Rows[len(result.Rows)-1].CumulativePct, 1e-6)

	// 500 -> 50%, +300 -> 80%: two items reach the threshold.
	assert.True(t, result.Complete)
	assert.Equal(t, 2, result.ItemsForTarget)
	assert.Equal(t, 4, result.CatalogSize)
	assert.InDelta(t, 50, result.CatalogPct, 1e-9)
}

func TestAnalyzeParetoSingleItem(t *testing.T) {
	ds := testDataset(sale("Beef Ramen", dataset.May, 500, 50))

	result := AnalyzePareto(ds, DefaultParetoConfig())
	require.Len(t, result.Rows, 1)
	assert.InDelta(t, 100, result.Rows[0].CumulativePct, 1e-9)
	assert.True(t, result.Complete)
	assert.Equal(t, 1, result.ItemsForTarget)
	assert.Equal(t, 1, result.CatalogSize)
	assert.InDelta(t, 100, result.CatalogPct, 1e-9)
	assert.Equal(t, "Your Top 1 items (just 100.0% of your menu) drive 80% of your revenue.", result.Summary)
}

func TestAnalyzeParetoTailCollapse(t *testing.T) {
	// 25 items: the ranking shows the cap plus one tail bucket, but the
	// catalog percentage still divides by all 25.
	var records []dataset.SaleRecord
	for i := 0; i < 25; i++ {
		records = append(records, sale(fmt.Sprintf("Item %02d", i), dataset.May, float64(1000-i*10), 10))
	}
	ds := testDataset(records...)

	cfg := DefaultParetoConfig()
	result := AnalyzePareto(ds, cfg)
	require.Len(t, result.Rows, cfg.MaxRows+1)

	last := result.Rows[len(result.Rows)-1]
	assert.Equal(t, TailBucketName, last.ItemName)
	assert.InDelta(t, 100, last.CumulativePct, 1e-6)

	var tailTotal float64
	for i := 20; i < 25; i++ {
		tailTotal += float64(1000 - i*10)
	}
	assert.InDelta(t, tailTotal, last.Amount, 1e-9)

	assert.Equal(t, 25, result.CatalogSize)
	assert.True(t, result.Complete)
	assert.InDelta(t, 100*float64(result.ItemsForTarget)/25, result.CatalogPct, 1e-9)
}

func TestAnalyzeParetoEmptyDataset(t *testing.T) {
	result := AnalyzePareto(testDataset(), DefaultParetoConfig())
	assert.False(t, result.Complete)
	assert.Empty(t, result.Rows)
	assert.Equal(t, "Pareto analysis incomplete (insufficient item diversity).", result.Summary)
}

func TestAnalyzeParetoZeroRevenue(t *testing.T) {
	ds := testDataset(sale("Comp Meal", dataset.May, 0, 3))

	result := AnalyzePareto(ds, DefaultParetoConfig())
	assert.False(t, result.Complete)
	assert.Zero(t, result.ItemsForTarget)
}
