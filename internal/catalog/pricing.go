// Package catalog holds the read-only reference tables the pricing core works from.
// Tables are built once at package init and never mutated, so concurrent reads are safe.
package catalog

import (
	"strings"

	"github.com/you-humble/mobile-mechanic/internal/model"
)

var servicePricing = map[model.ServiceType]model.ServicePricing{
	model.ServiceOilChange: {
		DisplayName:    "Oil Change Service",
		BasePrice:      45,
		LaborRate:      75,
		EstimatedHours: 0.5,
		CommonParts: []model.CommonPart{
			{Name: "Conventional Oil (5qt)", Price: 25},
			{Name: "Synthetic Oil (5qt)", Price: 45},
			{Name: "Oil Filter", Price: 15},
		},
		PriceRange: model.PriceRange{Min: 75, Max: 95},
	},
	model.ServiceBrakeService: {
		DisplayName:    "Brake System Service",
		BasePrice:      150,
		LaborRate:      85,
		EstimatedHours: 2,
		CommonParts: []model.CommonPart{
			{Name: "Brake Pads (Front)", Price: 80},
			{Name: "Brake Pads (Rear)", Price: 70},
			{Name: "Brake Rotors (Pair)", Price: 120},
			{Name: "Brake Fluid", Price: 15},
		},
		PriceRange: model.PriceRange{Min: 150, Max: 400},
	},
	model.ServiceTireService: {
		DisplayName:    "Tire Service",
		BasePrice:      80,
		LaborRate:      75,
		EstimatedHours: 1,
		CommonParts: []model.CommonPart{
			{Name: "Tire (Each)", Price: 100},
			{Name: "Valve Stem", Price: 5},
			{Name: "Wheel Weight", Price: 3},
		},
		PriceRange: model.PriceRange{Min: 80, Max: 500},
	},
	model.ServiceBatteryService: {
		DisplayName:    "Battery Service",
		BasePrice:      120,
		LaborRate:      75,
		EstimatedHours: 0.75,
		CommonParts: []model.CommonPart{
			{Name: "Car Battery", Price: 120},
			{Name: "Battery Terminal", Price: 15},
			{Name: "Battery Cable", Price: 25},
		},
		PriceRange: model.PriceRange{Min: 120, Max: 200},
	},
	model.ServiceEngineDiagnostic: {
		DisplayName:    "Engine Diagnostic",
		BasePrice:      100,
		LaborRate:      85,
		EstimatedHours: 1.5,
		CommonParts: []model.CommonPart{
			{Name: "Diagnostic Fee", Price: 100},
			{Name: "Computer Scan", Price: 50},
		},
		PriceRange: model.PriceRange{Min: 100, Max: 250},
	},
	model.ServiceTransmission: {
		DisplayName:    "Transmission Service",
		BasePrice:      200,
		LaborRate:      95,
		EstimatedHours: 3,
		CommonParts: []model.CommonPart{
			{Name: "Transmission Fluid", Price: 35},
			{Name: "Transmission Filter", Price: 45},
			{Name: "Gasket Set", Price: 60},
		},
		PriceRange: model.PriceRange{Min: 200, Max: 800},
	},
	model.ServiceACService: {
		DisplayName:    "A/C System Service",
		BasePrice:      90,
		LaborRate:      85,
		EstimatedHours: 1.5,
		CommonParts: []model.CommonPart{
			{Name: "Refrigerant (R134a)", Price: 40},
			{Name: "AC Filter", Price: 25},
			{Name: "AC Compressor Oil", Price: 20},
		},
		PriceRange: model.PriceRange{Min: 90, Max: 300},
	},
	model.ServiceGeneralRepair: {
		DisplayName:    "General Automotive Repair",
		BasePrice:      75,
		LaborRate:      85,
		EstimatedHours: 2,
		CommonParts: []model.CommonPart{
			{Name: "Miscellaneous Parts", Price: 50},
		},
		PriceRange: model.PriceRange{Min: 75, Max: 500},
	},
	model.ServiceEmergencyRoadside: {
		DisplayName:    "Emergency Roadside Assistance",
		BasePrice:      65,
		LaborRate:      95,
		EstimatedHours: 1,
		CommonParts: []model.CommonPart{
			{Name: "Emergency Service Fee", Price: 65},
			{Name: "Towing (per mile)", Price: 3},
		},
		PriceRange: model.PriceRange{Min: 65, Max: 200},
	},
}

// partPrices indexes every service's common parts by normalized name.
var partPrices = buildPartPrices()

func buildPartPrices() map[model.ServiceType]map[string]float64 {
	out := make(map[model.ServiceType]map[string]float64, len(servicePricing))
	for st, p := range servicePricing {
		idx := make(map[string]float64, len(p.CommonParts))
		for _, part := range p.CommonParts {
			idx[NormalizeName(part.Name)] = part.Price
		}
		out[st] = idx
	}
	return out
}

func Pricing(st model.ServiceType) (model.ServicePricing, bool) {
	p, ok := servicePricing[st]
	return p, ok
}

// CommonPartPrice looks up a part of the service's table by name, ignoring case and
// surrounding whitespace.
func CommonPartPrice(st model.ServiceType, name string) (float64, bool) {
	idx, ok := partPrices[st]
	if !ok {
		return 0, false
	}
	price, ok := idx[NormalizeName(name)]
	return price, ok
}

func ServiceTypes() []model.ServiceType {
	return []model.ServiceType{
		model.ServiceOilChange,
		model.ServiceBrakeService,
		model.ServiceTireService,
		model.ServiceBatteryService,
		model.ServiceEngineDiagnostic,
		model.ServiceTransmission,
		model.ServiceACService,
		model.ServiceGeneralRepair,
		model.ServiceEmergencyRoadside,
	}
}

func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
