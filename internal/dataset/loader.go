package dataset

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"menupulse/internal/classify"
	"menupulse/internal/errs"
)

// columnIndices holds the positions of the required input columns
type columnIndices struct {
	itemCol   int
	amountCol int
	countCol  int
	monthCol  int
}

// Load reads a sales file and builds the canonical dataset. The format
// is chosen by extension: .xlsx files go through the Excel reader,
// everything else is treated as CSV.
func Load(path string) (*Dataset, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadExcel(path, "")
	}
	return LoadCSV(path)
}

// LoadCSV loads the canonical dataset from a CSV file with the columns
// Item Name, Amount, Count, Month.
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errs.SourceUnreadable(path, err)
	}
	defer file.Close()

	// Read the whole file so a UTF-8 BOM can be stripped before the CSV
	// reader sees the header.
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, errs.SourceUnreadable(path, err)
	}
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errs.SourceUnreadable(path, err)
	}

	return buildDataset(path, rows)
}

// LoadExcel loads the canonical dataset from an Excel workbook. When
// sheet is empty the first sheet is used.
func LoadExcel(path, sheet string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errs.SourceUnreadable(path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errs.ErrNoData
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errs.SourceUnreadable(path, err)
	}

	return buildDataset(path, rows)
}

// buildDataset normalizes and classifies raw rows into the canonical dataset
func buildDataset(path string, rows [][]string) (*Dataset, error) {
	if len(rows) < 2 {
		return nil, errs.ErrNoData
	}

	cols, missing := findColumnIndices(rows[0])
	if len(missing) > 0 {
		return nil, errs.MissingColumn(missing)
	}

	ds := &Dataset{Source: path}

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header

		if len(row) <= cols.itemCol || len(row) <= cols.amountCol {
			continue
		}
		name := strings.TrimSpace(row[cols.itemCol])
		if name == "" {
			continue
		}

		amount, err := ParseAmount(row[cols.amountCol])
		if err != nil {
			return nil, errs.AmountUnparsable(rowNum, row[cols.amountCol])
		}

		count := 0
		if cols.countCol < len(row) {
			count = ParseCount(row[cols.countCol])
		}

		monthLabel := ""
		if cols.monthCol < len(row) {
			monthLabel = strings.TrimSpace(row[cols.monthCol])
		}
		month := ParseMonth(monthLabel)
		if !month.Known() {
			ds.UnknownMonths++
		}

		ds.Records = append(ds.Records, SaleRecord{
			ItemName:   name,
			Month:      month,
			MonthLabel: monthLabel,
			Amount:     amount,
			Count:      count,
			Category:   classify.Item(name),
		})
	}

	if len(ds.Records) == 0 {
		return nil, errs.ErrNoData
	}

	slog.Info("Loaded sales dataset",
		slog.String("source", path),
		slog.Int("records", len(ds.Records)),
		slog.Int("unknown_months", ds.UnknownMonths))

	return ds, nil
}

// findColumnIndices resolves the required column positions from the
// header row. Matching tolerates a leading BOM, case, and the common
// underscore variants.
func findColumnIndices(header []string) (columnIndices, []string) {
	cols := columnIndices{itemCol: -1, amountCol: -1, countCol: -1, monthCol: -1}

	for i, col := range header {
		clean := strings.TrimSpace(strings.TrimPrefix(col, "\uFEFF"))
		switch strings.ToLower(clean) {
		case "item name", "item_name", "item":
			cols.itemCol = i
		case "amount", "revenue", "sales":
			cols.amountCol = i
		case "count", "quantity", "qty":
			cols.countCol = i
		case "month":
			cols.monthCol = i
		}
	}

	var missing []string
	if cols.itemCol == -1 {
		missing = append(missing, "Item Name")
	}
	if cols.amountCol == -1 {
		missing = append(missing, "Amount")
	}
	if cols.countCol == -1 {
		missing = append(missing, "Count")
	}
	if cols.monthCol == -1 {
		missing = append(missing, "Month")
	}
	return cols, missing
}
