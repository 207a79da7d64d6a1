package kafka

import (
	"context"
	"errors"
)

type (
	Middleware     func(next MessageHandler) MessageHandler
	MessageHandler func(ctx context.Context, msg Message) error
)

// ErrSkip marks a record that can never be processed. The consumer commits it
// instead of leaving it for redelivery.
var ErrSkip = errors.New("kafka: skip message")

type Consumer interface {
	Consume(ctx context.Context, handler MessageHandler) error
}

type Producer interface {
	Send(ctx context.Context, key, value []byte, headers ...Header) error
}
