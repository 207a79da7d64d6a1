package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	"golang.org/x/time/rate"

	quotev1 "github.com/you-humble/mobile-mechanic/internal/api/quote/v1"
	"github.com/you-humble/mobile-mechanic/internal/distance"
	"github.com/you-humble/mobile-mechanic/internal/model"
	"github.com/you-humble/mobile-mechanic/internal/service/maintenance"
	"github.com/you-humble/mobile-mechanic/internal/service/parts"
	"github.com/you-humble/mobile-mechanic/internal/service/pricing"
	"github.com/you-humble/mobile-mechanic/internal/transport/http/quote/v1/mocks"
)

var _ = Describe("Quote handlers", func() {
	var (
		quotes *mocks.MockQuoteService
		router chi.Router
		now    = time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC)
	)

	do := func(method, target string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, target, &buf)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	decode := func(rec *httptest.ResponseRecorder, dst any) {
		Expect(json.NewDecoder(rec.Body).Decode(dst)).To(Succeed())
	}

	storedQuote := func(status model.QuoteStatus) *model.Quote {
		return &model.Quote{
			ID:               uuid.New(),
			ServiceRequestID: "req-1",
			ServiceType:      model.ServiceOilChange,
			Urgency:          model.UrgencyMedium,
			LaborCost:        41,
			PartsCost:        28,
			TotalCost:        69,
			ValidUntil:       now.Add(model.QuoteValidity),
			Status:           status,
			CreatedAt:        now,
		}
	}

	BeforeEach(func() {
		quotes = mocks.NewMockQuoteService(GinkgoT())
		engine := pricing.NewEngine(
			pricing.WithClock(func() time.Time { return now }),
			pricing.WithDistance(distance.Fixed(0), model.Location{}),
		)
		calc := maintenance.NewCalculator(maintenance.WithClock(func() time.Time { return now }))

		router = chi.NewRouter()
		router.Route("/api/v1", func(r chi.Router) {
			NewQuoteHandler(quotes, engine, parts.NewEstimator(), calc).Register(r, nil)
		})
	})

	Describe("POST /api/v1/quotes", func() {
		It("creates a quote", func() {
			q := storedQuote(model.QuoteStatusPending)
			quotes.
				On("Create", mock.Anything, mock.MatchedBy(func(p model.CreateQuoteParams) bool {
					return p.ServiceRequestID == "req-1" &&
						p.Options.ServiceType == model.ServiceOilChange &&
						p.Options.Vehicle != nil && p.Options.Vehicle.Type == model.VehicleCar
				})).
				Return(q, nil).
				Once()

			rec := do(http.MethodPost, "/api/v1/quotes", quotev1.CreateQuoteRequest{
				ServiceRequestID: "req-1",
				ServiceType:      "oil_change",
				Urgency:          "medium",
				Description:      "noisy engine",
				Vehicle:          &quotev1.Vehicle{Make: "Ford", Model: "Focus", Year: 2019},
			})

			Expect(rec.Code).To(Equal(http.StatusCreated))
			var got quotev1.Quote
			decode(rec, &got)
			Expect(got.ID).To(Equal(q.ID.String()))
			Expect(got.TotalCost).To(Equal(69.0))
			Expect(got.Status).To(Equal("pending"))
		})

		It("maps unknown parts to 422", func() {
			quotes.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrUnknownPart).Once()

			rec := do(http.MethodPost, "/api/v1/quotes", quotev1.CreateQuoteRequest{
				ServiceRequestID: "req-1",
				ServiceType:      "oil_change",
				Urgency:          "medium",
				SelectedParts:    []string{"warp core"},
			})

			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
		})

		It("rejects unknown fields", func() {
			rec := do(http.MethodPost, "/api/v1/quotes", map[string]any{"surprise": true})

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			quotes.AssertNotCalled(GinkgoT(), "Create", mock.Anything, mock.Anything)
		})

		It("hides internal errors", func() {
			quotes.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: connection refused")).Once()

			rec := do(http.MethodPost, "/api/v1/quotes", quotev1.CreateQuoteRequest{ServiceRequestID: "req-1"})

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(rec.Body.String()).NotTo(ContainSubstring("connection refused"))
		})
	})

	Describe("POST /api/v1/quotes/estimate", func() {
		It("returns a live price band", func() {
			rec := do(http.MethodPost, "/api/v1/quotes/estimate", quotev1.LiveEstimateRequest{
				ServiceType: "oil_change",
				Urgency:     "medium",
			})

			Expect(rec.Code).To(Equal(http.StatusOK))
			var got quotev1.LiveEstimate
			decode(rec, &got)
			Expect(got.Min).To(Equal(78.0))
			Expect(got.Max).To(Equal(105.0))
			Expect(got.Breakdown.UrgencyMultiplier).To(Equal(1.1))
		})

		It("rejects unknown service types", func() {
			rec := do(http.MethodPost, "/api/v1/quotes/estimate", quotev1.LiveEstimateRequest{
				ServiceType: "paint",
				Urgency:     "low",
			})

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("answers 429 once the limiter is drained", func() {
			engine := pricing.NewEngine(pricing.WithDistance(distance.Fixed(0), model.Location{}))
			router = chi.NewRouter()
			router.Route("/api/v1", func(r chi.Router) {
				NewQuoteHandler(quotes, engine, parts.NewEstimator(), maintenance.NewCalculator()).
					Register(r, rate.NewLimiter(rate.Limit(0.001), 1))
			})

			body := quotev1.LiveEstimateRequest{ServiceType: "oil_change", Urgency: "medium"}
			Expect(do(http.MethodPost, "/api/v1/quotes/estimate", body).Code).To(Equal(http.StatusOK))

			rec := do(http.MethodPost, "/api/v1/quotes/estimate", body)
			Expect(rec.Code).To(Equal(http.StatusTooManyRequests))
			Expect(rec.Header().Get("Retry-After")).To(Equal("1"))
			var got quotev1.Error
			decode(rec, &got)
			Expect(got.Code).To(Equal(http.StatusTooManyRequests))
			Expect(got.Message).To(Equal(model.ErrRateLimited.Error()))

			Expect(do(http.MethodGet, "/api/v1/maintenance/intervals", nil).Code).To(Equal(http.StatusOK))
		})
	})

	Describe("quote by id", func() {
		It("rejects malformed ids", func() {
			rec := do(http.MethodGet, "/api/v1/quotes/not-a-uuid", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for missing quotes", func() {
			id := uuid.New()
			quotes.On("QuoteByID", mock.Anything, id).Return(nil, model.ErrQuoteNotFound).Once()

			rec := do(http.MethodGet, "/api/v1/quotes/"+id.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("returns the quote", func() {
			q := storedQuote(model.QuoteStatusAccepted)
			quotes.On("QuoteByID", mock.Anything, q.ID).Return(q, nil).Once()

			rec := do(http.MethodGet, "/api/v1/quotes/"+q.ID.String(), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var got quotev1.Quote
			decode(rec, &got)
			Expect(got.Status).To(Equal("accepted"))
		})
	})

	Describe("status changes", func() {
		It("updates the status", func() {
			q := storedQuote(model.QuoteStatusDeclined)
			quotes.
				On("UpdateStatus", mock.Anything, model.UpdateQuoteStatusParams{ID: q.ID, Status: model.QuoteStatusDeclined}).
				Return(q, nil).
				Once()

			rec := do(http.MethodPatch, "/api/v1/quotes/"+q.ID.String()+"/status",
				quotev1.UpdateQuoteStatusRequest{Status: "declined"})
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("rejects unknown statuses", func() {
			rec := do(http.MethodPatch, "/api/v1/quotes/"+uuid.NewString()+"/status",
				quotev1.UpdateQuoteStatusRequest{Status: "refunded"})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps conflicts to 409", func() {
			id := uuid.New()
			quotes.On("UpdateStatus", mock.Anything, mock.Anything).Return(nil, model.ErrQuoteConflict).Once()

			rec := do(http.MethodPatch, "/api/v1/quotes/"+id.String()+"/status",
				quotev1.UpdateQuoteStatusRequest{Status: "paid"})
			Expect(rec.Code).To(Equal(http.StatusConflict))
		})

		It("maps expired approvals to 410", func() {
			id := uuid.New()
			quotes.On("Approve", mock.Anything, id).Return(nil, model.ErrQuoteExpired).Once()

			rec := do(http.MethodPost, "/api/v1/quotes/"+id.String()+"/approve", nil)
			Expect(rec.Code).To(Equal(http.StatusGone))
		})
	})

	It("lists quotes of a service request", func() {
		quotes.
			On("ListByServiceRequest", mock.Anything, "req-7").
			Return([]model.Quote{*storedQuote(model.QuoteStatusPending)}, nil).
			Once()

		rec := do(http.MethodGet, "/api/v1/service-requests/req-7/quotes", nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
		var got quotev1.QuoteList
		decode(rec, &got)
		Expect(got.Quotes).To(HaveLen(1))
	})

	Describe("parts", func() {
		It("estimates a single part", func() {
			rec := do(http.MethodGet, "/api/v1/parts/estimate?name=oil%20filter", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var got quotev1.PartEstimate
			decode(rec, &got)
			Expect(got.EstimatedPrice).To(Equal(12.99))
			Expect(got.Confidence).To(Equal("high"))
		})

		It("uses the motorcycle table for motorcycles", func() {
			rec := do(http.MethodGet, "/api/v1/parts/estimate?name=chain&vehicle_type=motorcycle", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var got quotev1.PartEstimate
			decode(rec, &got)
			Expect(got.PartName).To(Equal("Motorcycle Chain"))
		})

		It("returns 404 for short unknown names", func() {
			rec := do(http.MethodGet, "/api/v1/parts/estimate?name=xy", nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("estimates a batch and totals it", func() {
			rec := do(http.MethodPost, "/api/v1/parts/estimates", quotev1.PartEstimatesRequest{
				PartNames: []string{"oil filter", "xy", "coolant"},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			var got quotev1.PartEstimates
			decode(rec, &got)
			Expect(got.Estimates).To(HaveLen(2))
			Expect(got.Total).To(BeNumerically("~", 29.98, 1e-9))
		})

		It("rejects an empty batch", func() {
			rec := do(http.MethodPost, "/api/v1/parts/estimates", quotev1.PartEstimatesRequest{})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("maintenance", func() {
		It("computes the next due date", func() {
			rec := do(http.MethodGet,
				"/api/v1/maintenance/due?service_type=oil_change&last_service_date=2024-01-01&last_mileage=30000", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var got quotev1.MaintenanceDue
			decode(rec, &got)
			Expect(got.DueDate.Equal(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC))).To(BeTrue())
			Expect(got.Overdue).To(BeTrue())
			Expect(got.DueMileage).NotTo(BeNil())
			Expect(*got.DueMileage).To(Equal(33000))
		})

		It("answers 204 when no schedule exists", func() {
			rec := do(http.MethodGet,
				"/api/v1/maintenance/due?service_type=general_repair&last_service_date=2024-01-01", nil)
			Expect(rec.Code).To(Equal(http.StatusNoContent))
		})

		It("rejects unknown service types", func() {
			rec := do(http.MethodGet, "/api/v1/maintenance/due?service_type=x&last_service_date=2024-01-01", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects malformed dates", func() {
			rec := do(http.MethodGet, "/api/v1/maintenance/due?service_type=oil_change&last_service_date=yesterday", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("lists intervals", func() {
			rec := do(http.MethodGet, "/api/v1/maintenance/intervals", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var got quotev1.MaintenanceIntervals
			decode(rec, &got)
			Expect(got.Intervals).To(HaveLen(7))
			Expect(got.Intervals[3].IntervalMiles).To(BeNil())
		})
	})
})
