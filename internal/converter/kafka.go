package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/mobile-mechanic/internal/model"
)

type quoteCreatedRecord struct {
	EventID          string    `json:"event_id"`
	QuoteID          string    `json:"quote_id"`
	ServiceRequestID string    `json:"service_request_id"`
	ServiceType      string    `json:"service_type"`
	TotalCost        float64   `json:"total_cost"`
	ValidUntil       time.Time `json:"valid_until"`
	CreatedAt        time.Time `json:"created_at"`
}

type quotePaidRecord struct {
	EventID string    `json:"event_id"`
	QuoteID string    `json:"quote_id"`
	PaidAt  time.Time `json:"paid_at"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) QuoteCreatedToPayload(m model.QuoteCreated) ([]byte, error) {
	payload, err := json.Marshal(quoteCreatedRecord{
		EventID:          m.EventID.String(),
		QuoteID:          m.QuoteID.String(),
		ServiceRequestID: m.ServiceRequestID,
		ServiceType:      string(m.ServiceType),
		TotalCost:        m.TotalCost,
		ValidUntil:       m.ValidUntil,
		CreatedAt:        m.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quote created record: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) QuotePaidToModel(data []byte) (model.QuotePaid, error) {
	var rec quotePaidRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.QuotePaid{}, fmt.Errorf("failed to unmarshal quote paid record: %w", err)
	}

	eventID, err := uuid.Parse(rec.EventID)
	if err != nil {
		return model.QuotePaid{}, fmt.Errorf("invalid event_id %q: %w", rec.EventID, err)
	}
	quoteID, err := uuid.Parse(rec.QuoteID)
	if err != nil {
		return model.QuotePaid{}, fmt.Errorf("invalid quote_id %q: %w", rec.QuoteID, err)
	}

	return model.QuotePaid{
		EventID: eventID,
		QuoteID: quoteID,
		PaidAt:  rec.PaidAt,
	}, nil
}
