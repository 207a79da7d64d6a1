package quoteconsumer

import (
	"context"
	"errors"
	"fmt"

	"github.com/you-humble/mobile-mechanic/internal/model"
	"github.com/you-humble/mobile-mechanic/platform/kafka"
	"github.com/you-humble/mobile-mechanic/platform/logger"
)

type Converter interface {
	QuotePaidToModel(data []byte) (model.QuotePaid, error)
}

type Service interface {
	MarkPaid(ctx context.Context, event model.QuotePaid) error
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	svc      Service
}

func NewQuoteConsumer(
	consumer kafka.Consumer,
	conv Converter,
	svc Service,
) *service {
	return &service{consumer: consumer, conv: conv, svc: svc}
}

func (s *service) RunQuotePaidConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting quote paid consumer")

	if err := s.consumer.Consume(ctx, s.quotePaidHandler); err != nil {
		logger.Error(ctx, "Consume from quote.paid topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) quotePaidHandler(ctx context.Context, msg kafka.Message) error {
	event, err := s.conv.QuotePaidToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode QuotePaid record", logger.ErrorF(err))
		return fmt.Errorf("converter quote_paid_to_model error: %w: %w", kafka.ErrSkip, err)
	}

	if err := s.svc.MarkPaid(ctx, event); err != nil {
		logger.Error(ctx, "consumer.MarkPaid",
			logger.String("quote_id", event.QuoteID.String()),
			logger.String("event_id", event.EventID.String()),
			logger.ErrorF(err),
		)
		if isPermanent(err) {
			return fmt.Errorf("%w: %w", kafka.ErrSkip, err)
		}
		return err
	}

	return nil
}

// isPermanent reports errors that redelivery cannot fix.
func isPermanent(err error) bool {
	return errors.Is(err, model.ErrQuoteNotFound) ||
		errors.Is(err, model.ErrQuoteConflict) ||
		errors.Is(err, model.ErrQuoteExpired)
}
