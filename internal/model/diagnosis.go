package model

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

type CostRange struct {
	Min float64
	Max float64
}

// AIDiagnosis is produced by an external diagnosis collaborator and is read-only here.
type AIDiagnosis struct {
	Confidence      Confidence
	DiagnosticSteps []string
	UrgencyLevel    Urgency
	EstimatedCost   *CostRange
	LikelyCauses    []string
}
