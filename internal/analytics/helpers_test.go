package analytics

import (
	"menupulse/internal/classify"
	"menupulse/internal/dataset"
)

// sale builds one canonical record for tests, classifying the name the
// way the loader would.
func sale(item string, month dataset.Month, amount float64, count int) dataset.SaleRecord {
	return dataset.SaleRecord{
		ItemName:   item,
		Month:      month,
		MonthLabel: month.String(),
		Amount:     amount,
		Count:      count,
		Category:   classify.Item(item),
	}
}

func testDataset(records ...dataset.SaleRecord) *dataset.Dataset {
	return &dataset.Dataset{Records: records, Source: "test"}
}
