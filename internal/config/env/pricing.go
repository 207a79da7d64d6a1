package envconfig

import (
	"github.com/caarlos0/env/v11"

	"github.com/you-humble/mobile-mechanic/internal/model"
)

type pricingEnv struct {
	BaseLatitude  float64 `env:"SERVICE_BASE_LATITUDE,required"`
	BaseLongitude float64 `env:"SERVICE_BASE_LONGITUDE,required"`
	BaseAddress   string  `env:"SERVICE_BASE_ADDRESS"`
	LenientParts  bool    `env:"PRICING_LENIENT_PARTS" envDefault:"false"`
}

type pricing struct {
	raw pricingEnv
}

func NewPricingConfig() (*pricing, error) {
	var raw pricingEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &pricing{raw: raw}, nil
}

func (cfg *pricing) Base() model.Location {
	return model.Location{
		Latitude:  cfg.raw.BaseLatitude,
		Longitude: cfg.raw.BaseLongitude,
		Address:   cfg.raw.BaseAddress,
	}
}

// LenientParts prices unknown selected parts at zero instead of rejecting the quote.
func (cfg *pricing) LenientParts() bool { return cfg.raw.LenientParts }
