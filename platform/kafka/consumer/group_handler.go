package consumer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/you-humble/mobile-mechanic/platform/kafka"
)

const (
	defaultMaxAttempts  = 3
	defaultRetryBackoff = 200 * time.Millisecond
)

type groupHandler struct {
	handler     kafka.MessageHandler
	logger      Logger
	maxAttempts int
	backoff     time.Duration
}

// NewGroupHandler wraps handler with middlewares, first middleware outermost.
func NewGroupHandler(handler kafka.MessageHandler, logger Logger, middlewares ...kafka.Middleware) *groupHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return &groupHandler{
		handler:     handler,
		logger:      logger,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultRetryBackoff,
	}
}

func (g *groupHandler) Setup(session sarama.ConsumerGroupSession) error {
	for topic, partitions := range session.Claims() {
		g.logger.Info(session.Context(), "Kafka partitions claimed",
			zap.String("topic", topic),
			zap.Int32s("partitions", partitions),
			zap.String("member_id", session.MemberID()),
		)
	}
	return nil
}

func (g *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks a record only after the handler accepted it or skipped it with
// kafka.ErrSkip. Other errors are retried with backoff; when retries run out the claim
// returns the error without marking, so sarama ends the session and the partition
// resumes from the last committed offset. Later records are never marked past a failed one.
func (g *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case record, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			msg := toMessage(record)
			err := g.handle(session.Context(), msg)
			switch {
			case err == nil:
			case errors.Is(err, kafka.ErrSkip):
				g.logger.Warn(session.Context(), "Kafka record skipped",
					zap.String("topic", record.Topic),
					zap.Int64("offset", record.Offset),
					zap.String(kafka.HeaderEventID, msg.Header(kafka.HeaderEventID)),
					zap.Error(err),
				)
			default:
				g.logger.Error(session.Context(), "Kafka handler error, releasing claim",
					zap.String("topic", record.Topic),
					zap.Int32("partition", record.Partition),
					zap.Int64("offset", record.Offset),
					zap.Error(err),
				)
				return fmt.Errorf("handle %s/%d@%d: %w", record.Topic, record.Partition, record.Offset, err)
			}

			session.MarkMessage(record, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (g *groupHandler) handle(ctx context.Context, msg kafka.Message) error {
	backoff := g.backoff
	var err error
	for attempt := 1; ; attempt++ {
		err = g.handler(ctx, msg)
		if err == nil || errors.Is(err, kafka.ErrSkip) || attempt >= g.maxAttempts {
			return err
		}

		g.logger.Warn(ctx, "Kafka handler failed, retrying",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return err
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

func toMessage(record *sarama.ConsumerMessage) kafka.Message {
	headers := make(map[string][]byte, len(record.Headers))
	for _, h := range record.Headers {
		if h != nil && h.Key != nil {
			headers[string(h.Key)] = h.Value
		}
	}

	return kafka.Message{
		Key:            record.Key,
		Value:          record.Value,
		Topic:          record.Topic,
		Partition:      record.Partition,
		Offset:         record.Offset,
		Timestamp:      record.Timestamp,
		BlockTimestamp: record.BlockTimestamp,
		Headers:        headers,
	}
}
