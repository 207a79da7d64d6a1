package postgres

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/you-humble/mobile-mechanic/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName      string
	Database       string
	Username       string
	Password       string
	StartupTimeout time.Duration
	Logger         Logger
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName:      "postgres:17.0-alpine3.20",
		Database:       "quote-db",
		Username:       "quote-service-user",
		Password:       "quote-service-password",
		StartupTimeout: time.Minute,
		Logger:         logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
