package dataset

import "menupulse/internal/classify"

// SaleRecord is one row of the canonical dataset: a single point-of-sale
// line item after normalization and classification. Records are created
// once at load time and never mutated afterwards.
type SaleRecord struct {
	ItemName string            `json:"item_name"`
	Month    Month             `json:"month"`
	// MonthLabel preserves the raw month text for rows whose month falls
	// outside the May..October window.
	MonthLabel string            `json:"month_label"`
	Amount     float64           `json:"amount"`
	Count      int               `json:"count"`
	Category   classify.Category `json:"category"`
}

// Dataset is the canonical, read-only input to every analyzer.
type Dataset struct {
	Records []SaleRecord
	// Source is the path the dataset was loaded from.
	Source string
	// UnknownMonths counts rows whose month fell outside the window.
	UnknownMonths int
}

// Len returns the number of records
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// TotalAmount returns the revenue total across all records
func (d *Dataset) TotalAmount() float64 {
	var total float64
	for _, r := range d.Records {
		total += r.Amount
	}
	return total
}
