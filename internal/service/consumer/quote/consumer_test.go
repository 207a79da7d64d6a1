package quoteconsumer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/mobile-mechanic/internal/converter"
	"github.com/you-humble/mobile-mechanic/internal/model"
	"github.com/you-humble/mobile-mechanic/platform/kafka"
)

type fakeConsumer struct {
	messages []kafka.Message
	err      error
}

func (c fakeConsumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	for _, msg := range c.messages {
		if err := handler(ctx, msg); err != nil {
			return err
		}
	}
	return c.err
}

type fakeService struct {
	err  error
	paid []model.QuotePaid
}

func (s *fakeService) MarkPaid(_ context.Context, event model.QuotePaid) error {
	s.paid = append(s.paid, event)
	return s.err
}

func paidMessage(eventID, quoteID uuid.UUID) kafka.Message {
	return kafka.Message{
		Topic:     "quote.paid",
		Partition: 0,
		Offset:    7,
		Value: []byte(`{"event_id":"` + eventID.String() + `","quote_id":"` + quoteID.String() +
			`","paid_at":"2026-06-02T10:00:00Z"}`),
	}
}

func TestRunQuotePaidConsume(t *testing.T) {
	t.Parallel()

	eventID := uuid.New()
	quoteID := uuid.New()
	markErr := errors.New("db down")
	consumeErr := errors.New("group closed")

	tests := []struct {
		name      string
		messages  []kafka.Message
		consumErr error
		svcErr    error
		wantErrIs error
		wantPaid  int
	}{
		{
			name:     "marks quote paid",
			messages: []kafka.Message{paidMessage(eventID, quoteID)},
			wantPaid: 1,
		},
		{
			name:      "service error is returned",
			messages:  []kafka.Message{paidMessage(eventID, quoteID)},
			svcErr:    markErr,
			wantErrIs: markErr,
			wantPaid:  1,
		},
		{
			name:      "unknown quote is skipped",
			messages:  []kafka.Message{paidMessage(eventID, quoteID)},
			svcErr:    fmt.Errorf("quote.service.MarkPaid: %w", model.ErrQuoteNotFound),
			wantErrIs: kafka.ErrSkip,
			wantPaid:  1,
		},
		{
			name:      "paid event for pending quote is skipped",
			messages:  []kafka.Message{paidMessage(eventID, quoteID)},
			svcErr:    fmt.Errorf("quote.service.MarkPaid: %w", model.ErrQuoteConflict),
			wantErrIs: kafka.ErrSkip,
			wantPaid:  1,
		},
		{
			name:      "undecodable message never reaches the service",
			messages:  []kafka.Message{{Topic: "quote.paid", Value: []byte("garbage")}},
			wantErrIs: kafka.ErrSkip,
			wantPaid:  0,
		},
		{
			name:      "consumer error is returned",
			consumErr: consumeErr,
			wantErrIs: consumeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeService{err: tt.svcErr}
			s := NewQuoteConsumer(
				fakeConsumer{messages: tt.messages, err: tt.consumErr},
				converter.NewKafkaConverter(),
				svc,
			)

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			err := s.RunQuotePaidConsume(ctx)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				if !errors.Is(tt.wantErrIs, kafka.ErrSkip) {
					assert.NotErrorIs(t, err, kafka.ErrSkip)
				}
			} else {
				assert.NoError(t, err)
			}

			require.Len(t, svc.paid, tt.wantPaid)
			if tt.wantPaid > 0 {
				assert.Equal(t, quoteID, svc.paid[0].QuoteID)
				assert.Equal(t, eventID, svc.paid[0].EventID)
			}
		})
	}
}
