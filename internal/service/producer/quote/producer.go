package quoteproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/mobile-mechanic/internal/model"
	"github.com/you-humble/mobile-mechanic/platform/kafka"
)

type Converter interface {
	QuoteCreatedToPayload(m model.QuoteCreated) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewQuoteProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

const quoteCreatedEventType = "quote.created"

// SendQuoteCreated keys records by quote ID so events for one quote stay ordered.
func (s *service) SendQuoteCreated(ctx context.Context, event model.QuoteCreated) error {
	payload, err := s.conv.QuoteCreatedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter quote_created_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, event.QuoteID[:], payload,
		kafka.StringHeader(kafka.HeaderEventID, event.EventID.String()),
		kafka.StringHeader(kafka.HeaderEventType, quoteCreatedEventType),
	); err != nil {
		return fmt.Errorf("produce to quote.created topic error: %w", err)
	}

	return nil
}
