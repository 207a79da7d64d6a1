//go:build integration

package repository

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/mobile-mechanic/internal/model"
)

func newQuote(serviceRequestID string, createdAt time.Time) *model.Quote {
	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	return &model.Quote{
		ID:                uuid.New(),
		ServiceRequestID:  serviceRequestID,
		ServiceType:       model.ServiceBatteryService,
		Urgency:           model.UrgencyHigh,
		Description:       gofakeit.Word(),
		LaborCost:         117,
		PartsCost:         53.3,
		TravelFee:         30,
		TotalCost:         200,
		EstimatedDuration: 0.75,
		ValidUntil:        createdAt.Add(model.QuoteValidity),
		Status:            model.QuoteStatusPending,
		CreatedAt:         createdAt,
	}
}

var _ = Describe("Quote repository", func() {
	It("stores and reads back a quote", func() {
		q := newQuote("req-1", time.Now())
		Expect(repo.Create(ctx, q)).To(Succeed())

		got, err := repo.QuoteByID(ctx, q.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.ID).To(Equal(q.ID))
		Expect(got.ServiceType).To(Equal(model.ServiceBatteryService))
		Expect(got.PartsCost).To(BeNumerically("~", 53.3, 1e-9))
		Expect(got.TotalCost).To(Equal(200.0))
		Expect(got.Status).To(Equal(model.QuoteStatusPending))
		Expect(got.ValidUntil.Equal(q.ValidUntil)).To(BeTrue())
		Expect(got.UpdatedAt).To(BeNil())
	})

	It("rejects duplicate ids", func() {
		q := newQuote("req-1", time.Now())
		Expect(repo.Create(ctx, q)).To(Succeed())
		Expect(repo.Create(ctx, q)).To(MatchError(model.ErrQuoteConflict))
	})

	It("returns not found for unknown ids", func() {
		_, err := repo.QuoteByID(ctx, uuid.New())
		Expect(err).To(MatchError(model.ErrQuoteNotFound))
	})

	It("lists quotes of a service request newest first", func() {
		base := time.Now()
		older := newQuote("req-2", base.Add(-time.Hour))
		newer := newQuote("req-2", base)
		other := newQuote("req-3", base)
		for _, q := range []*model.Quote{older, newer, other} {
			Expect(repo.Create(ctx, q)).To(Succeed())
		}

		got, err := repo.ListByServiceRequest(ctx, "req-2")
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(2))
		Expect(got[0].ID).To(Equal(newer.ID))
		Expect(got[1].ID).To(Equal(older.ID))

		none, err := repo.ListByServiceRequest(ctx, "req-404")
		Expect(err).NotTo(HaveOccurred())
		Expect(none).To(BeEmpty())
	})

	Describe("UpdateStatus", func() {
		It("moves status when the expected status matches", func() {
			q := newQuote("req-4", time.Now())
			Expect(repo.Create(ctx, q)).To(Succeed())

			at := time.Now().UTC().Truncate(time.Microsecond)
			Expect(repo.UpdateStatus(ctx, q.ID, model.QuoteStatusPending, model.QuoteStatusAccepted, at)).
				To(Succeed())

			got, err := repo.QuoteByID(ctx, q.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Status).To(Equal(model.QuoteStatusAccepted))
			Expect(got.UpdatedAt).NotTo(BeNil())
			Expect(got.UpdatedAt.Equal(at)).To(BeTrue())
		})

		It("reports a conflict when the status changed underneath", func() {
			q := newQuote("req-5", time.Now())
			Expect(repo.Create(ctx, q)).To(Succeed())

			err := repo.UpdateStatus(ctx, q.ID, model.QuoteStatusAccepted, model.QuoteStatusPaid, time.Now())
			Expect(err).To(MatchError(model.ErrQuoteConflict))
		})

		It("reports not found for unknown quotes", func() {
			err := repo.UpdateStatus(ctx, uuid.New(), model.QuoteStatusPending, model.QuoteStatusAccepted, time.Now())
			Expect(err).To(MatchError(model.ErrQuoteNotFound))
		})
	})
})
