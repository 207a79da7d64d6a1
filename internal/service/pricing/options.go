package pricing

import (
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/mobile-mechanic/internal/model"
)

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithDistance sets where travel distance is measured from and how.
func WithDistance(provider DistanceProvider, base model.Location) Option {
	return func(e *Engine) {
		e.distance = provider
		e.base = base
	}
}

// WithLenientParts makes unknown selected part names contribute zero instead of failing.
func WithLenientParts() Option {
	return func(e *Engine) { e.lenientParts = true }
}
