package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers                  []string `env:"KAFKA_BROKERS,required,notEmpty"`
	QuoteCreatedTopicName    string   `env:"QUOTE_CREATED_TOPIC_NAME" envDefault:"quote.created"`
	QuotePaidTopicName       string   `env:"QUOTE_PAID_TOPIC_NAME" envDefault:"quote.paid"`
	QuotePaidConsumerGroupID string   `env:"QUOTE_PAID_CONSUMER_GROUP_ID" envDefault:"quote-service"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Brokers() []string                { return cfg.raw.Brokers }
func (cfg *kafka) QuoteCreatedTopic() string        { return cfg.raw.QuoteCreatedTopicName }
func (cfg *kafka) QuotePaidTopic() string           { return cfg.raw.QuotePaidTopicName }
func (cfg *kafka) QuotePaidConsumerGroupID() string { return cfg.raw.QuotePaidConsumerGroupID }

func (cfg *kafka) QuotePaidConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}

func (cfg *kafka) QuoteCreatedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
