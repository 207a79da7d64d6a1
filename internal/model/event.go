package model

import (
	"time"

	"github.com/google/uuid"
)

type QuoteCreated struct {
	EventID          uuid.UUID
	QuoteID          uuid.UUID
	ServiceRequestID string
	ServiceType      ServiceType
	TotalCost        float64
	ValidUntil       time.Time
	CreatedAt        time.Time
}

type QuotePaid struct {
	EventID uuid.UUID
	QuoteID uuid.UUID
	PaidAt  time.Time
}
