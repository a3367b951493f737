package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// amountCleaner strips currency formatting: dollar sign, thousands
// separators, and stray whitespace.
var amountCleaner = strings.NewReplacer("$", "", ",", "", " ", "")

// ParseAmount converts a currency-formatted string (e.g. "$1,234.50")
// to a float. Unlike counts, amounts never default: an unparsable
// amount is a data-quality error the caller must surface.
func ParseAmount(s string) (float64, error) {
	cleaned := amountCleaner.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount value")
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return v, nil
}

// ParseCount converts a count string with optional thousands separators
// to an integer. Missing or unparsable counts default to 0.
func ParseCount(s string) int {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return 0
	}
	v, err := strconv.Atoi(cleaned)
	if err != nil {
		// Count columns sometimes arrive as "12.0"; accept the float form.
		f, ferr := strconv.ParseFloat(cleaned, 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return v
}
