package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/mobile-mechanic/internal/model"
	"github.com/you-humble/mobile-mechanic/platform/logger"
)

type QuoteRepository interface {
	Create(ctx context.Context, q *model.Quote) error
	QuoteByID(ctx context.Context, id uuid.UUID) (*model.Quote, error)
	ListByServiceRequest(ctx context.Context, serviceRequestID string) ([]model.Quote, error)
	// UpdateStatus moves a quote from one status to another and fails with
	// model.ErrQuoteConflict if the stored status is no longer from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.QuoteStatus, at time.Time) error
}

type Pricer interface {
	Quote(serviceRequestID string, opts model.QuoteOptions) (*model.Quote, error)
}

type QuoteProducer interface {
	SendQuoteCreated(ctx context.Context, event model.QuoteCreated) error
}

type service struct {
	repo           QuoteRepository
	pricer         Pricer
	producer       QuoteProducer
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
	now            func() time.Time
}

func NewQuoteService(
	repository QuoteRepository,
	pricer Pricer,
	producer QuoteProducer,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		pricer:         pricer,
		producer:       producer,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		now:            time.Now,
	}
}

func (svc *service) Create(ctx context.Context, params model.CreateQuoteParams) (*model.Quote, error) {
	const op string = "quote.service.Create"
	log := logger.With(
		logger.String("service_request_id", params.ServiceRequestID),
		logger.String("service_type", string(params.Options.ServiceType)),
		logger.String("urgency", string(params.Options.Urgency)),
	)

	q, err := svc.pricer.Quote(params.ServiceRequestID, params.Options)
	if err != nil {
		log.Warn(ctx, "price quote", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log = log.With(logger.String("quote_id", q.ID.String()))

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.Create(wdbCtx, q); err != nil {
		log.Error(ctx, "repository create quote", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// The quote is already stored; a lost event must not fail the request.
	if err := svc.producer.SendQuoteCreated(ctx, model.QuoteCreated{
		EventID:          uuid.New(),
		QuoteID:          q.ID,
		ServiceRequestID: q.ServiceRequestID,
		ServiceType:      q.ServiceType,
		TotalCost:        q.TotalCost,
		ValidUntil:       q.ValidUntil,
		CreatedAt:        q.CreatedAt,
	}); err != nil {
		log.Error(ctx, "send quote created", logger.ErrorF(err))
	}

	log.Info(ctx, "quote created",
		logger.Float64("total_cost", q.TotalCost),
		logger.Time("valid_until", q.ValidUntil),
	)

	return q, nil
}

func (svc *service) QuoteByID(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	const op string = "quote.service.QuoteByID"
	log := logger.With(logger.String("quote_id", id.String()))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	q, err := svc.repo.QuoteByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository quote by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return q, nil
}

func (svc *service) ListByServiceRequest(ctx context.Context, serviceRequestID string) ([]model.Quote, error) {
	const op string = "quote.service.ListByServiceRequest"
	log := logger.With(logger.String("service_request_id", serviceRequestID))

	if serviceRequestID == "" {
		log.Error(ctx, "empty service request id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	quotes, err := svc.repo.ListByServiceRequest(ctx, serviceRequestID)
	if err != nil {
		log.Error(ctx, "repository list quotes", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return quotes, nil
}

// UpdateStatus applies a status transition. Setting the current status again is a no-op.
// Accepting a quote past its validity window expires it instead.
func (svc *service) UpdateStatus(
	ctx context.Context,
	params model.UpdateQuoteStatusParams,
) (*model.Quote, error) {
	const op string = "quote.service.UpdateStatus"
	log := logger.With(
		logger.String("quote_id", params.ID.String()),
		logger.String("target_status", string(params.Status)),
	)

	if _, err := model.ParseQuoteStatus(string(params.Status)); err != nil {
		log.Error(ctx, "unknown target status")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	q, err := svc.repo.QuoteByID(rdbCtx, params.ID)
	if err != nil {
		log.Error(ctx, "repository quote by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log = log.With(logger.String("quote_status", string(q.Status)))

	if q.Status == params.Status {
		return q, nil
	}
	if !q.Status.CanTransitionTo(params.Status) {
		log.Warn(ctx, "quote conflict")
		return nil, fmt.Errorf("%s: %w: %s -> %s", op, model.ErrQuoteConflict, q.Status, params.Status)
	}

	now := svc.now()
	target := params.Status
	expired := target == model.QuoteStatusAccepted && now.After(q.ValidUntil)
	if expired {
		target = model.QuoteStatusExpired
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.UpdateStatus(wdbCtx, q.ID, q.Status, target, now); err != nil {
		log.Error(ctx, "repository update quote status", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if expired {
		log.Warn(ctx, "quote expired before acceptance", logger.Time("valid_until", q.ValidUntil))
		return nil, fmt.Errorf("%s: %w", op, model.ErrQuoteExpired)
	}

	q.Status = target
	q.UpdatedAt = &now

	return q, nil
}

func (svc *service) Approve(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	return svc.UpdateStatus(ctx, model.UpdateQuoteStatusParams{
		ID:     id,
		Status: model.QuoteStatusAccepted,
	})
}

// MarkPaid handles payment events. Redelivered events for an already paid quote are ignored.
func (svc *service) MarkPaid(ctx context.Context, event model.QuotePaid) error {
	const op string = "quote.service.MarkPaid"

	if _, err := svc.UpdateStatus(ctx, model.UpdateQuoteStatusParams{
		ID:     event.QuoteID,
		Status: model.QuoteStatusPaid,
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
