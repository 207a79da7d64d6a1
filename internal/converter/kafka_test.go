package converter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/mobile-mechanic/internal/model"
)

func TestKafkaConverterQuoteCreatedToPayload(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)
	event := model.QuoteCreated{
		EventID:          uuid.New(),
		QuoteID:          uuid.New(),
		ServiceRequestID: "req-1",
		ServiceType:      model.ServiceTransmission,
		TotalCost:        412,
		ValidUntil:       createdAt.Add(model.QuoteValidity),
		CreatedAt:        createdAt,
	}

	payload, err := NewKafkaConverter().QuoteCreatedToPayload(event)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, event.QuoteID.String(), got["quote_id"])
	assert.Equal(t, "transmission", got["service_type"])
	assert.Equal(t, 412.0, got["total_cost"])
	assert.Equal(t, "2026-06-08T08:00:00Z", got["valid_until"])
}

func TestKafkaConverterQuotePaidToModel(t *testing.T) {
	t.Parallel()

	eventID := uuid.New()
	quoteID := uuid.New()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "valid record",
			payload: `{"event_id":"` + eventID.String() + `","quote_id":"` + quoteID.String() + `","paid_at":"2026-06-02T10:00:00Z"}`,
		},
		{
			name:    "malformed json",
			payload: `{"event_id":`,
			wantErr: true,
		},
		{
			name:    "invalid quote id",
			payload: `{"event_id":"` + eventID.String() + `","quote_id":"nope","paid_at":"2026-06-02T10:00:00Z"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewKafkaConverter().QuotePaidToModel([]byte(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, eventID, got.EventID)
			assert.Equal(t, quoteID, got.QuoteID)
			assert.True(t, got.PaidAt.Equal(time.Date(2026, time.June, 2, 10, 0, 0, 0, time.UTC)))
		})
	}
}
