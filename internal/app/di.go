package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/time/rate"

	"github.com/you-humble/mobile-mechanic/internal/config"
	"github.com/you-humble/mobile-mechanic/internal/converter"
	"github.com/you-humble/mobile-mechanic/internal/distance"
	"github.com/you-humble/mobile-mechanic/internal/model"
	repository "github.com/you-humble/mobile-mechanic/internal/repository/quote"
	quoteconsumer "github.com/you-humble/mobile-mechanic/internal/service/consumer/quote"
	"github.com/you-humble/mobile-mechanic/internal/service/maintenance"
	"github.com/you-humble/mobile-mechanic/internal/service/parts"
	"github.com/you-humble/mobile-mechanic/internal/service/pricing"
	quoteproducer "github.com/you-humble/mobile-mechanic/internal/service/producer/quote"
	service "github.com/you-humble/mobile-mechanic/internal/service/quote"
	thttp "github.com/you-humble/mobile-mechanic/internal/transport/http/quote/v1"
	"github.com/you-humble/mobile-mechanic/platform/closer"
	"github.com/you-humble/mobile-mechanic/platform/db/migrator"
	"github.com/you-humble/mobile-mechanic/platform/kafka"
	"github.com/you-humble/mobile-mechanic/platform/kafka/consumer"
	"github.com/you-humble/mobile-mechanic/platform/kafka/middleware"
	"github.com/you-humble/mobile-mechanic/platform/kafka/producer"
	"github.com/you-humble/mobile-mechanic/platform/logger"
)

type Converter interface {
	QuoteCreatedToPayload(m model.QuoteCreated) ([]byte, error)
	QuotePaidToModel(data []byte) (model.QuotePaid, error)
}

type QuoteConsumer interface {
	RunQuotePaidConsume(ctx context.Context) error
}

type QuoteService interface {
	thttp.QuoteService
	quoteconsumer.Service
}

type QuoteHandler interface {
	Register(r chi.Router, limiter *rate.Limiter)
}

type di struct {
	dbPool     *pgxpool.Pool
	migrator   *migrator.Migrator
	repository service.QuoteRepository

	engine      *pricing.Engine
	estimator   *parts.Estimator
	calculator  *maintenance.Calculator
	rateLimiter *rate.Limiter

	consumerGroup     sarama.ConsumerGroup
	quotePaidConsumer kafka.Consumer
	quoteConsumer     QuoteConsumer

	syncProducer         sarama.SyncProducer
	quoteCreatedProducer kafka.Producer
	quoteProducer        service.QuoteProducer

	conv Converter

	service QuoteService
	handler QuoteHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) QuoteRepository(ctx context.Context) service.QuoteRepository {
	if d.repository == nil {
		d.repository = repository.NewQuoteRepository(d.DBPool(ctx))
	}

	return d.repository
}

func (d *di) PricingEngine(_ context.Context) *pricing.Engine {
	if d.engine == nil {
		cfg := config.C().Pricing

		opts := []pricing.Option{
			pricing.WithDistance(distance.Haversine{}, cfg.Base()),
		}
		if cfg.LenientParts() {
			opts = append(opts, pricing.WithLenientParts())
		}

		d.engine = pricing.NewEngine(opts...)
	}

	return d.engine
}

func (d *di) PartsEstimator(_ context.Context) *parts.Estimator {
	if d.estimator == nil {
		d.estimator = parts.NewEstimator()
	}

	return d.estimator
}

func (d *di) MaintenanceCalculator(_ context.Context) *maintenance.Calculator {
	if d.calculator == nil {
		d.calculator = maintenance.NewCalculator()
	}

	return d.calculator
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.QuotePaidConsumerGroupID(),
			cfg.Kafka.QuotePaidConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) QuotePaidConsumer(ctx context.Context) kafka.Consumer {
	if d.quotePaidConsumer == nil {
		d.quotePaidConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.QuotePaidTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.ContextFields(logger.WithContext),
			middleware.Logging(logger.L()),
		)
	}

	return d.quotePaidConsumer
}

func (d *di) QuoteConsumer(ctx context.Context) QuoteConsumer {
	if d.quoteConsumer == nil {
		d.quoteConsumer = quoteconsumer.NewQuoteConsumer(
			d.QuotePaidConsumer(ctx),
			d.KafkaConverter(ctx),
			d.QuoteService(ctx),
		)
	}

	return d.quoteConsumer
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.QuoteCreatedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) QuoteCreatedProducer(ctx context.Context) kafka.Producer {
	if d.quoteCreatedProducer == nil {
		d.quoteCreatedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.QuoteCreatedTopic(),
			logger.L(),
			producer.WithHeader("source", "quote-service"),
		)
	}

	return d.quoteCreatedProducer
}

func (d *di) QuoteProducer(ctx context.Context) service.QuoteProducer {
	if d.quoteProducer == nil {
		d.quoteProducer = quoteproducer.NewQuoteProducer(
			d.QuoteCreatedProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.quoteProducer
}

func (d *di) QuoteService(ctx context.Context) QuoteService {
	if d.service == nil {
		d.service = service.NewQuoteService(
			d.QuoteRepository(ctx),
			d.PricingEngine(ctx),
			d.QuoteProducer(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.service
}

func (d *di) QuoteHandler(ctx context.Context) QuoteHandler {
	if d.handler == nil {
		d.handler = thttp.NewQuoteHandler(
			d.QuoteService(ctx),
			d.PricingEngine(ctx),
			d.PartsEstimator(ctx),
			d.MaintenanceCalculator(ctx),
		)
	}

	return d.handler
}

func (d *di) RateLimiter(_ context.Context) *rate.Limiter {
	if d.rateLimiter == nil {
		cfg := config.C().RateLimit
		d.rateLimiter = rate.NewLimiter(rate.Limit(cfg.RPS()), cfg.Burst())
	}

	return d.rateLimiter
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
