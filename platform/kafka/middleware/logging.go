package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/you-humble/mobile-mechanic/platform/kafka"
)

type InfoLogger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
}

func Logging(logger InfoLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			start := time.Now()
			err := next(ctx, msg)

			logger.Info(ctx, "Kafka msg handled",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.String("event_type", msg.Header(kafka.HeaderEventType)),
				zap.Duration("took", time.Since(start)),
				zap.Bool("ok", err == nil),
			)
			return err
		}
	}
}

// ContextFields stores record coordinates in the handler context through attach,
// so every entry logged while handling the record carries them.
func ContextFields(attach func(ctx context.Context, fields ...zap.Field) context.Context) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			fields := []zap.Field{
				zap.String("topic", msg.Topic),
				zap.Int32("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			}
			if id := msg.Header(kafka.HeaderEventID); id != "" {
				fields = append(fields, zap.String(kafka.HeaderEventID, id))
			}
			return next(attach(ctx, fields...), msg)
		}
	}
}
