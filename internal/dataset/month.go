package dataset

import "strings"

// Month represents a month in the fixed May..October reporting window.
// The zero value is May; values compare in calendar order, and
// MonthUnknown sorts after every known month.
type Month int

// Months of the reporting window, in order.
const (
	May Month = iota
	June
	July
	August
	September
	October
	// MonthUnknown marks a month outside the fixed window. The raw
	// label is preserved on the record; callers decide how to surface it.
	MonthUnknown
)

var monthNames = [...]string{"May", "June", "July", "August", "September", "October"}

// Months returns the six known months in reporting order.
func Months() []Month {
	return []Month{May, June, July, August, September, October}
}

// String returns the month's display name
func (m Month) String() string {
	if m.Known() {
		return monthNames[m]
	}
	return "Unknown"
}

// Known reports whether the month is inside the fixed window
func (m Month) Known() bool {
	return m >= May && m <= October
}

// ParseMonth maps a month name to its Month value. Matching is
// case-insensitive and ignores surrounding whitespace; names outside
// the window map to MonthUnknown.
func ParseMonth(s string) Month {
	cleaned := strings.TrimSpace(s)
	for i, name := range monthNames {
		if strings.EqualFold(cleaned, name) {
			return Month(i)
		}
	}
	return MonthUnknown
}
