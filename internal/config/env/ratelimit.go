package envconfig

import "github.com/caarlos0/env/v11"

type rateLimitEnv struct {
	RPS   float64 `env:"QUOTE_RATE_LIMIT_RPS" envDefault:"10"`
	Burst int     `env:"QUOTE_RATE_LIMIT_BURST" envDefault:"20"`
}

type rateLimit struct {
	raw rateLimitEnv
}

func NewRateLimitConfig() (*rateLimit, error) {
	var raw rateLimitEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &rateLimit{raw: raw}, nil
}

func (cfg *rateLimit) RPS() float64 { return cfg.raw.RPS }
func (cfg *rateLimit) Burst() int   { return cfg.raw.Burst }
