package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "input contains no data rows", ErrNoData.Error())

	detailed := AmountUnparsable(7, "abc")
	assert.Contains(t, detailed.Error(), "row 7")
	assert.Contains(t, detailed.Error(), `"abc"`)
}

func TestDetailedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"source unreadable", SourceUnreadable("sales.csv", errors.New("no such file")), ErrSourceUnreadable},
		{"missing column", MissingColumn([]string{"Amount"}), ErrMissingColumn},
		{"amount unparsable", AmountUnparsable(3, "n/a"), ErrAmountUnparsable},
		{"item not found", ItemNotFound("Beef Ramen"), ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestWrappedErrorMatchesSentinel(t *testing.T) {
	wrapped := fmt.Errorf("loading dataset: %w", ItemNotFound("Pad Thai"))
	assert.ErrorIs(t, wrapped, ErrItemNotFound)
	assert.NotErrorIs(t, wrapped, ErrNoData)
}
