package analytics

// ExecutiveSummary condenses the analyses into the four headline facts
// the dashboard leads with.
type ExecutiveSummary struct {
	// Superstar is the #1 item by total revenue.
	Superstar string `json:"superstar"`
	// RisingStar is the fastest-growing item.
	RisingStar string `json:"rising_star"`
	// FadingItem is the fastest-declining item.
	FadingItem string `json:"fading_item"`
	// Pareto is the concentration summary sentence.
	Pareto string `json:"pareto"`
}

// BuildExecutiveSummary assembles the headline facts, substituting the
// usual N/A placeholders when a list came back empty.
func BuildExecutiveSummary(top []ItemRevenue, growth GrowthResult, pareto ParetoResult) ExecutiveSummary {
	summary := ExecutiveSummary{
		Superstar:  "N/A",
		RisingStar: "N/A (no significant rising stars)",
		FadingItem: "N/A (no significant fading items)",
		Pareto:     pareto.Summary,
	}
	if len(top) > 0 {
		summary.Superstar = top[0].ItemName
	}
	if len(growth.Rising) > 0 {
		summary.RisingStar = growth.Rising[0].ItemName
	}
	if len(growth.Fading) > 0 {
		summary.FadingItem = growth.Fading[0].ItemName
	}
	return summary
}
