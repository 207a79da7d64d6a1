package producer

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/you-humble/mobile-mechanic/platform/kafka"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type producer struct {
	syncProducer sarama.SyncProducer
	topic        string
	static       []sarama.RecordHeader
	logger       Logger
	now          func() time.Time
}

type Option func(*producer)

// WithHeader adds a header to every record, e.g. the name of the emitting service.
func WithHeader(key, value string) Option {
	return func(p *producer) {
		p.static = append(p.static, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *producer) { p.now = now }
}

func NewProducer(syncProducer sarama.SyncProducer, topic string, logger Logger, opts ...Option) *producer {
	p := &producer{
		syncProducer: syncProducer,
		topic:        topic,
		logger:       logger,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *producer) Send(ctx context.Context, key, value []byte, headers ...kafka.Header) error {
	recHeaders := make([]sarama.RecordHeader, 0, len(p.static)+len(headers))
	recHeaders = append(recHeaders, p.static...)
	for _, h := range headers {
		recHeaders = append(recHeaders, sarama.RecordHeader{Key: []byte(h.Key), Value: h.Value})
	}

	partition, offset, err := p.syncProducer.SendMessage(&sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.ByteEncoder(key),
		Value:     sarama.ByteEncoder(value),
		Headers:   recHeaders,
		Timestamp: p.now(),
	})
	if err != nil {
		p.logger.Error(ctx, "Failed to send message", zap.String("topic", p.topic), zap.Error(err))
		return err
	}

	p.logger.Info(ctx, "Message sent",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.Int("value_bytes", len(value)),
	)

	return nil
}
