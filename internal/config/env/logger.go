package envconfig

import "github.com/caarlos0/env/v11"

type loggerEnv struct {
	Level  string `env:"LOGGER_LEVEL" envDefault:"info"`
	AsJSON bool   `env:"LOGGER_AS_JSON" envDefault:"true"`
}

type loggerConfig struct {
	raw loggerEnv
}

func NewLoggerConfig() (*loggerConfig, error) {
	var raw loggerEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &loggerConfig{raw: raw}, nil
}

func (cfg *loggerConfig) Level() string { return cfg.raw.Level }
func (cfg *loggerConfig) AsJSON() bool  { return cfg.raw.AsJSON }
