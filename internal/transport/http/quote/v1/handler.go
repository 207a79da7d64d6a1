package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/you-humble/mobile-mechanic/internal/model"
	httpmw "github.com/you-humble/mobile-mechanic/internal/transport/http/middleware"
)

type QuoteService interface {
	Create(ctx context.Context, params model.CreateQuoteParams) (*model.Quote, error)
	QuoteByID(ctx context.Context, id uuid.UUID) (*model.Quote, error)
	ListByServiceRequest(ctx context.Context, serviceRequestID string) ([]model.Quote, error)
	UpdateStatus(ctx context.Context, params model.UpdateQuoteStatusParams) (*model.Quote, error)
	Approve(ctx context.Context, id uuid.UUID) (*model.Quote, error)
}

type LiveEstimator interface {
	LiveEstimate(params model.LiveEstimateParams) (*model.LiveEstimate, error)
}

type PartsEstimator interface {
	EstimateFor(vt model.VehicleType, name string) (*model.PartEstimate, error)
	EstimateMany(ctx context.Context, vt model.VehicleType, names []string) ([]model.PartEstimate, error)
}

type MaintenanceCalculator interface {
	Due(lastService time.Time, lastMileage *int, st model.ServiceType) (*model.MaintenanceDue, bool)
	Intervals() []model.MaintenanceInterval
}

type handler struct {
	quotes      QuoteService
	live        LiveEstimator
	parts       PartsEstimator
	maintenance MaintenanceCalculator
}

func NewQuoteHandler(
	quotes QuoteService,
	live LiveEstimator,
	parts PartsEstimator,
	maintenance MaintenanceCalculator,
) *handler {
	return &handler{
		quotes:      quotes,
		live:        live,
		parts:       parts,
		maintenance: maintenance,
	}
}

// Register mounts the v1 routes. A non-nil limiter guards the endpoints that run the pricing engine.
func (h *handler) Register(r chi.Router, limiter *rate.Limiter) {
	limited := func(next http.Handler) http.Handler { return next }
	if limiter != nil {
		limited = httpmw.RateLimit(limiter, writeError)
	}

	r.Route("/quotes", func(r chi.Router) {
		r.With(limited).Post("/", h.CreateQuote)
		r.With(limited).Post("/estimate", h.LiveEstimate)
		r.Get("/{quoteID}", h.GetQuote)
		r.Patch("/{quoteID}/status", h.UpdateQuoteStatus)
		r.Post("/{quoteID}/approve", h.ApproveQuote)
	})
	r.Get("/service-requests/{requestID}/quotes", h.ListServiceRequestQuotes)
	r.Get("/parts/estimate", h.GetPartEstimate)
	r.Post("/parts/estimates", h.GetPartEstimates)
	r.Get("/maintenance/due", h.GetMaintenanceDue)
	r.Get("/maintenance/intervals", h.ListMaintenanceIntervals)
}
