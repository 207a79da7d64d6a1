package model

type (
	ServiceType string
	Urgency     string
	VehicleType string
)

const (
	ServiceOilChange         ServiceType = "oil_change"
	ServiceBrakeService      ServiceType = "brake_service"
	ServiceTireService       ServiceType = "tire_service"
	ServiceBatteryService    ServiceType = "battery_service"
	ServiceEngineDiagnostic  ServiceType = "engine_diagnostic"
	ServiceTransmission      ServiceType = "transmission"
	ServiceACService         ServiceType = "ac_service"
	ServiceGeneralRepair     ServiceType = "general_repair"
	ServiceEmergencyRoadside ServiceType = "emergency_roadside"
)

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency:
		return true
	default:
		return false
	}
}

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleScooter    VehicleType = "scooter"
)

type CommonPart struct {
	Name  string
	Price float64
}

type PriceRange struct {
	Min float64
	Max float64
}

// ServicePricing is immutable reference data, one entry per service type.
type ServicePricing struct {
	// Display name used in quote descriptions.
	DisplayName string
	// Flat price advertised for the service.
	BasePrice float64
	// Labor rate in currency units per hour.
	LaborRate float64
	// Typical labor time in hours.
	EstimatedHours float64
	// Parts commonly used by the service, in catalog order.
	CommonParts []CommonPart
	// Advertised price range.
	PriceRange PriceRange
}

type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// InRange reports whether the coordinates are valid WGS84 degrees.
func (l Location) InRange() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

type Vehicle struct {
	Make    string
	Model   string
	Year    int
	Mileage int
	Type    VehicleType
}
