package analytics

import (
	"sort"

	"menupulse/internal/classify"
	"menupulse/internal/dataset"
)

// MonthRevenue is one row of the monthly revenue view
type MonthRevenue struct {
	Month  dataset.Month `json:"month"`
	Label  string        `json:"label"`
	Amount float64       `json:"amount"`
}

// MonthlyRevenue sums revenue by month, output in the fixed May..October
// order regardless of input row order. Rows with a month outside the
// window are bucketed into a trailing "Unknown" row when present; an
// empty dataset yields an empty result.
func MonthlyRevenue(ds *dataset.Dataset) []MonthRevenue {
	if ds.Len() == 0 {
		return nil
	}

	totals := make(map[dataset.Month]float64)
	for _, r := range ds.Records {
		totals[r.Month] += r.Amount
	}

	out := make([]MonthRevenue, 0, len(dataset.Months())+1)
	for _, m := range dataset.Months() {
		out = append(out, MonthRevenue{Month: m, Label: m.String(), Amount: totals[m]})
	}
	if amount, ok := totals[dataset.MonthUnknown]; ok {
		out = append(out, MonthRevenue{Month: dataset.MonthUnknown, Label: dataset.MonthUnknown.String(), Amount: amount})
	}
	return out
}

// ItemRevenue is one row of the per-item revenue ranking
type ItemRevenue struct {
	ItemName string  `json:"item_name"`
	Amount   float64 `json:"amount"`
}

// RevenueByItem sums revenue by item name in input encounter order
func RevenueByItem(ds *dataset.Dataset) []ItemRevenue {
	if ds.Len() == 0 {
		return nil
	}

	index := make(map[string]int)
	var items []ItemRevenue
	for _, r := range ds.Records {
		i, ok := index[r.ItemName]
		if !ok {
			i = len(items)
			index[r.ItemName] = i
			items = append(items, ItemRevenue{ItemName: r.ItemName})
		}
		items[i].Amount += r.Amount
	}
	return items
}

// TopItems returns the n highest-revenue items, descending. The sort is
// stable so revenue ties keep input encounter order.
func TopItems(ds *dataset.Dataset, n int) []ItemRevenue {
	items := RevenueByItem(ds)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount > items[j].Amount
	})
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	return items
}

// CategoryNode is one branch of the category rollup: a category total
// with its per-item leaves. Leaves always sum exactly to the branch
// total; branches sum to the dataset total.
type CategoryNode struct {
	Category classify.Category `json:"category"`
	Amount   float64           `json:"amount"`
	Items    []ItemRevenue     `json:"items"`
}

// CategoryRollup produces the two-level (category, item) revenue
// hierarchy. Categories appear in the closed-set order; items within a
// category rank by revenue, ties stable.
func CategoryRollup(ds *dataset.Dataset) []CategoryNode {
	if ds.Len() == 0 {
		return nil
	}

	type leafKey struct {
		category classify.Category
		item     string
	}
	leafIndex := make(map[leafKey]int)
	leafOrder := make(map[classify.Category][]ItemRevenue)
	totals := make(map[classify.Category]float64)

	for _, r := range ds.Records {
		totals[r.Category] += r.Amount
		key := leafKey{r.Category, r.ItemName}
		if i, ok := leafIndex[key]; ok {
			leafOrder[r.Category][i].Amount += r.Amount
			continue
		}
		leafIndex[key] = len(leafOrder[r.Category])
		leafOrder[r.Category] = append(leafOrder[r.Category], ItemRevenue{ItemName: r.ItemName, Amount: r.Amount})
	}

	var nodes []CategoryNode
	for _, cat := range classify.Categories() {
		items, ok := leafOrder[cat]
		if !ok {
			continue
		}
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Amount > items[j].Amount
		})
		nodes = append(nodes, CategoryNode{Category: cat, Amount: totals[cat], Items: items})
	}
	return nodes
}

// MonthItemRevenue is one cell of the item-by-month matrix
type MonthItemRevenue struct {
	Month    dataset.Month `json:"month"`
	ItemName string        `json:"item_name"`
	Amount   float64       `json:"amount"`
}

// ItemMonthMatrix sums revenue by (month, item), restricted to the given
// item names. Output is ordered by month first, then by the order of the
// items argument, so chart consumers get series-ready rows. Months
// outside the window are excluded.
func ItemMonthMatrix(ds *dataset.Dataset, items []string) []MonthItemRevenue {
	if ds.Len() == 0 || len(items) == 0 {
		return nil
	}

	wanted := make(map[string]int, len(items))
	for i, name := range items {
		wanted[name] = i
	}

	type cell struct {
		month dataset.Month
		item  string
	}
	totals := make(map[cell]float64)
	for _, r := range ds.Records {
		if _, ok := wanted[r.ItemName]; !ok || !r.Month.Known() {
			continue
		}
		totals[cell{r.Month, r.ItemName}] += r.Amount
	}

	var out []MonthItemRevenue
	for _, m := range dataset.Months() {
		for _, name := range items {
			if amount, ok := totals[cell{m, name}]; ok {
				out = append(out, MonthItemRevenue{Month: m, ItemName: name, Amount: amount})
			}
		}
	}
	return out
}
