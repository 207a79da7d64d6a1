package pricing

import (
	"math"

	"github.com/you-humble/mobile-mechanic/internal/catalog"
	"github.com/you-humble/mobile-mechanic/internal/model"
)

func urgencyRateFactor(u model.Urgency) float64 {
	switch u {
	case model.UrgencyEmergency:
		return 1.5
	case model.UrgencyHigh:
		return 1.25
	case model.UrgencyMedium:
		return 1.1
	case model.UrgencyLow:
		return 0.95
	default:
		return 1
	}
}

func urgencyTravelFactor(u model.Urgency) float64 {
	switch u {
	case model.UrgencyEmergency:
		return 1.5
	case model.UrgencyHigh:
		return 1.2
	default:
		return 1
	}
}

func ageLaborFactor(age int) float64 {
	switch {
	case age > 15:
		return 1.3
	case age > 10:
		return 1.15
	default:
		return 1
	}
}

func agePartsFactor(age int) float64 {
	switch {
	case age > 15:
		return 1.2
	case age > 10:
		return 1.1
	default:
		return 1
	}
}

func brandPartsMarkup(brand string) float64 {
	switch catalog.ClassifyBrand(brand) {
	case catalog.BrandLuxury:
		return 1.3
	case catalog.BrandImport:
		return 1.1
	default:
		return 1
	}
}

func averagePrice(parts []model.CommonPart) float64 {
	if len(parts) == 0 {
		return 0
	}
	var sum float64
	for _, p := range parts {
		sum += p.Price
	}
	return sum / float64(len(parts))
}

// round is half-up to the nearest integer, matching how customer-facing totals are shown.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}
