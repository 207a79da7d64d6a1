package distance

import (
	"math"

	"github.com/you-humble/mobile-mechanic/internal/model"
)

const earthRadiusMiles = 3958.8

// Haversine measures great-circle distance between two coordinates.
type Haversine struct{}

func (Haversine) Miles(from, to model.Location) float64 {
	lat1 := radians(from.Latitude)
	lat2 := radians(to.Latitude)
	dLat := lat2 - lat1
	dLng := radians(to.Longitude - from.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(a)))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Fixed always reports the same distance. Used by the CLI and tests.
type Fixed float64

func (f Fixed) Miles(_, _ model.Location) float64 { return float64(f) }
