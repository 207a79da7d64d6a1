package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type QuoteStatus string

const (
	QuoteStatusPending     QuoteStatus = "pending"
	QuoteStatusAccepted    QuoteStatus = "accepted"
	QuoteStatusDeclined    QuoteStatus = "declined"
	QuoteStatusExpired     QuoteStatus = "expired"
	QuoteStatusDepositPaid QuoteStatus = "deposit_paid"
	QuoteStatusPaid        QuoteStatus = "paid"
)

func ParseQuoteStatus(s string) (QuoteStatus, error) {
	switch st := QuoteStatus(s); st {
	case QuoteStatusPending, QuoteStatusAccepted, QuoteStatusDeclined,
		QuoteStatusExpired, QuoteStatusDepositPaid, QuoteStatusPaid:
		return st, nil
	default:
		return "", ErrUnknownStatus
	}
}

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusPending:     {QuoteStatusAccepted, QuoteStatusDeclined, QuoteStatusExpired},
	QuoteStatusAccepted:    {QuoteStatusDepositPaid, QuoteStatusPaid, QuoteStatusDeclined},
	QuoteStatusDepositPaid: {QuoteStatusPaid},
}

// CanTransitionTo reports whether a quote in status s may move to next.
// Declined, expired and paid are terminal.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	return slices.Contains(quoteTransitions[s], next)
}

const QuoteValidity = 7 * 24 * time.Hour

type QuoteOptions struct {
	ServiceType ServiceType
	Urgency     Urgency
	Description string
	// Names of parts from the service's common parts table.
	SelectedParts []string
	// Overrides the table labor hours when set and positive.
	CustomLaborHours *float64
	// Discount applied to the subtotal, 0-100.
	DiscountPercent float64
	AIDiagnosis     *AIDiagnosis
	Vehicle         *Vehicle
	Location        *Location
}

type Quote struct {
	// Unique identifier of the quote.
	ID uuid.UUID
	// Identifier of the service request the quote prices.
	ServiceRequestID string
	ServiceType      ServiceType
	Urgency          Urgency
	// Human-readable summary shown to the customer.
	Description string
	LaborCost   float64
	PartsCost   float64
	TravelFee   float64
	TotalCost   float64
	// Adjusted labor time in hours.
	EstimatedDuration float64
	// CreatedAt + QuoteValidity.
	ValidUntil time.Time
	Status     QuoteStatus
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

type LiveEstimate struct {
	Min       float64
	Max       float64
	Breakdown LiveBreakdown
}

type LiveBreakdown struct {
	Labor             float64
	Parts             float64
	Travel            float64
	UrgencyMultiplier float64
}

type LiveEstimateParams struct {
	ServiceType   ServiceType
	Urgency       Urgency
	Vehicle       *Vehicle
	Location      *Location
	SelectedParts []string
}

type CreateQuoteParams struct {
	ServiceRequestID string
	Options          QuoteOptions
}

type UpdateQuoteStatusParams struct {
	ID     uuid.UUID
	Status QuoteStatus
}
