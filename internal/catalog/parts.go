package catalog

import "github.com/you-humble/mobile-mechanic/internal/model"

const (
	sourceAutoZone = "AutoZone"
	sourceOReilly  = "O'Reilly"
	sourceEstimate = "Estimate"
)

// PartEntry is one row of a supplier price table. Key is the normalized lookup name.
type PartEntry struct {
	Key      string
	Estimate model.PartEstimate
}

// Order matters: fuzzy matching returns the first entry whose key overlaps the query.
var generalParts = []PartEntry{
	part("oil filter", "Oil Filter", 12.99, model.PartConfidenceHigh, sourceAutoZone, model.AvailabilityInStock),
	part("air filter", "Air Filter", 19.99, model.PartConfidenceHigh, sourceAutoZone, model.AvailabilityInStock),
	part("spark plugs", "Spark Plugs (Set of 4)", 32.99, model.PartConfidenceHigh, sourceOReilly, model.AvailabilityInStock),
	part("alternator", "Alternator", 189.99, model.PartConfidenceMedium, sourceAutoZone, model.AvailabilityOrderRequired),
	part("starter", "Starter Motor", 159.99, model.PartConfidenceMedium, sourceOReilly, model.AvailabilityOrderRequired),

	part("battery", "Car Battery", 129.99, model.PartConfidenceHigh, sourceAutoZone, model.AvailabilityInStock),
	part("battery cables", "Battery Cables", 24.99, model.PartConfidenceHigh, sourceOReilly, model.AvailabilityInStock),

	part("brake pads", "Brake Pads (Front)", 45.99, model.PartConfidenceHigh, sourceAutoZone, model.AvailabilityInStock),
	part("brake rotors", "Brake Rotors (Pair)", 89.99, model.PartConfidenceMedium, sourceOReilly, model.AvailabilityInStock),
	part("brake fluid", "Brake Fluid", 8.99, model.PartConfidenceHigh, sourceAutoZone, model.AvailabilityInStock),

	part("tire", "Tire (Each)", 85.00, model.PartConfidenceLow, sourceEstimate, model.AvailabilityOrderRequired),
	part("wheel bearing", "Wheel Bearing", 67.99, model.PartConfidenceMedium, sourceAutoZone, model.AvailabilityOrderRequired),

	part("motor oil", "Motor Oil (5 Quarts)", 24.99, model.PartConfidenceHigh, sourceOReilly, model.AvailabilityInStock),
	part("coolant", "Engine Coolant", 16.99, model.PartConfidenceHigh, sourceAutoZone, model.AvailabilityInStock),
	part("transmission fluid", "Transmission Fluid", 19.99, model.PartConfidenceHigh, sourceOReilly, model.AvailabilityInStock),

	part("serpentine belt", "Serpentine Belt", 29.99, model.PartConfidenceMedium, sourceAutoZone, model.AvailabilityInStock),
	part("timing belt", "Timing Belt", 89.99, model.PartConfidenceMedium, sourceOReilly, model.AvailabilityOrderRequired),
	part("radiator hose", "Radiator Hose", 34.99, model.PartConfidenceMedium, sourceAutoZone, model.AvailabilityInStock),
}

var motorcycleParts = []PartEntry{
	part("motorcycle oil", "Motorcycle Oil (1 Quart)", 18.99, model.PartConfidenceHigh, sourceAutoZone, model.AvailabilityInStock),
	part("motorcycle battery", "Motorcycle Battery", 89.99, model.PartConfidenceHigh, sourceOReilly, model.AvailabilityInStock),
	part("motorcycle tire", "Motorcycle Tire", 120.00, model.PartConfidenceMedium, sourceEstimate, model.AvailabilityOrderRequired),
	part("chain", "Motorcycle Chain", 45.99, model.PartConfidenceMedium, sourceAutoZone, model.AvailabilityOrderRequired),
	part("sprocket", "Motorcycle Sprocket", 35.99, model.PartConfidenceMedium, sourceOReilly, model.AvailabilityOrderRequired),
}

func part(
	key, name string,
	price float64,
	confidence model.PartConfidence,
	source string,
	availability model.PartAvailability,
) PartEntry {
	return PartEntry{
		Key: key,
		Estimate: model.PartEstimate{
			PartName:       name,
			EstimatedPrice: price,
			Confidence:     confidence,
			Source:         source,
			Availability:   availability,
		},
	}
}

func GeneralParts() []PartEntry { return generalParts }

func MotorcycleParts() []PartEntry { return motorcycleParts }
