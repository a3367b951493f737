// Package errs defines the coded error taxonomy shared across the pipeline.
package errs

import "fmt"

// Error represents a structured pipeline error
type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Details)
	}
	return e.Message
}

// Is matches errors by code so wrapped and detailed variants compare equal
// to their predefined sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// New creates a new Error with the given code and message
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewWithDetails creates a new Error with additional details
func NewWithDetails(code, message string, details interface{}) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Predefined error values for common scenarios
var (
	// Load errors: fatal, the pipeline produces no partial results
	ErrSourceUnreadable = New("SOURCE_UNREADABLE", "input file missing or unreadable")
	ErrMissingColumn    = New("MISSING_COLUMN", "required column not found")
	ErrAmountUnparsable = New("AMOUNT_UNPARSABLE", "amount value cannot be parsed")
	ErrNoData           = New("NO_DATA", "input contains no data rows")

	// Lookup errors: recoverable by the caller
	ErrItemNotFound = New("ITEM_NOT_FOUND", "item not found in summary")
)

// SourceUnreadable creates a load error carrying the underlying open/read failure
func SourceUnreadable(path string, err error) *Error {
	return NewWithDetails("SOURCE_UNREADABLE", "input file missing or unreadable",
		fmt.Sprintf("%s: %v", path, err))
}

// MissingColumn creates a load error naming the absent columns
func MissingColumn(columns []string) *Error {
	return NewWithDetails("MISSING_COLUMN", "required column not found", columns)
}

// AmountUnparsable creates a load error naming the offending row and value.
// Amounts never default to zero the way counts do: a silent zero would
// hide revenue, so the load aborts instead.
func AmountUnparsable(row int, value string) *Error {
	return NewWithDetails("AMOUNT_UNPARSABLE", "amount value cannot be parsed",
		fmt.Sprintf("row %d: %q", row, value))
}

// ItemNotFound creates a lookup error naming the missing item
func ItemNotFound(name string) *Error {
	return NewWithDetails("ITEM_NOT_FOUND", "item not found in summary", name)
}
