package model

type (
	PartConfidence   string
	PartAvailability string
)

const (
	PartConfidenceHigh   PartConfidence = "high"
	PartConfidenceMedium PartConfidence = "medium"
	PartConfidenceLow    PartConfidence = "low"
)

const (
	AvailabilityInStock       PartAvailability = "in-stock"
	AvailabilityOrderRequired PartAvailability = "order-required"
	AvailabilityUnknown       PartAvailability = "unknown"
)

type PartEstimate struct {
	PartName       string
	EstimatedPrice float64
	Confidence     PartConfidence
	// Supplier or estimation method the price came from.
	Source       string
	Availability PartAvailability
}
