package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteStatusCanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from QuoteStatus
		to   QuoteStatus
		want bool
	}{
		{QuoteStatusPending, QuoteStatusAccepted, true},
		{QuoteStatusPending, QuoteStatusDeclined, true},
		{QuoteStatusPending, QuoteStatusExpired, true},
		{QuoteStatusPending, QuoteStatusPaid, false},
		{QuoteStatusAccepted, QuoteStatusDepositPaid, true},
		{QuoteStatusAccepted, QuoteStatusPaid, true},
		{QuoteStatusAccepted, QuoteStatusPending, false},
		{QuoteStatusDepositPaid, QuoteStatusPaid, true},
		{QuoteStatusDepositPaid, QuoteStatusDeclined, false},
		{QuoteStatusPaid, QuoteStatusDeclined, false},
		{QuoteStatusDeclined, QuoteStatusAccepted, false},
		{QuoteStatusExpired, QuoteStatusAccepted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseQuoteStatus(t *testing.T) {
	t.Parallel()

	st, err := ParseQuoteStatus("deposit_paid")
	require.NoError(t, err)
	assert.Equal(t, QuoteStatusDepositPaid, st)

	_, err = ParseQuoteStatus("refunded")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
