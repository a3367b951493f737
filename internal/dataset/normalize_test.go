package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{name: "plain_number", input: "123.45", expected: 123.45},
		{name: "dollar_sign", input: "$99.50", expected: 99.50},
		{name: "thousands_separator", input: "$1,234.50", expected: 1234.50},
		{name: "large_amount", input: "$12,345,678.90", expected: 12345678.90},
		{name: "surrounding_whitespace", input: "  $42.00  ", expected: 42.00},
		{name: "zero", input: "$0.00", expected: 0},
		{name: "empty_is_error", input: "", wantErr: true},
		{name: "whitespace_only_is_error", input: "   ", wantErr: true},
		{name: "garbage_is_error", input: "n/a", wantErr: true},
		{name: "mixed_garbage_is_error", input: "$12.3abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "plain", input: "42", expected: 42},
		{name: "thousands_separator", input: "1,234", expected: 1234},
		{name: "whitespace", input: " 7 ", expected: 7},
		{name: "float_form", input: "12.0", expected: 12},
		{name: "empty_defaults_to_zero", input: "", expected: 0},
		{name: "garbage_defaults_to_zero", input: "many", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCount(tt.input))
		})
	}
}
