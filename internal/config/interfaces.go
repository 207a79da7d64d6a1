package config

import (
	"time"

	"github.com/IBM/sarama"

	"github.com/you-humble/mobile-mechanic/internal/model"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type Kafka interface {
	Brokers() []string
	QuoteCreatedTopic() string
	QuotePaidTopic() string
	QuotePaidConsumerGroupID() string
	QuotePaidConsumerConfig() *sarama.Config
	QuoteCreatedProducerConfig() *sarama.Config
}

type Pricing interface {
	Base() model.Location
	LenientParts() bool
}

type RateLimit interface {
	RPS() float64
	Burst() int
}
