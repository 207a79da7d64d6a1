package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/mobile-mechanic/internal/model"
)

const (
	quotesTable = "quotes"

	uniqueViolation = "23505"
)

var quoteColumns = []string{
	"id",
	"service_request_id",
	"service_type",
	"urgency",
	"description",
	"labor_cost",
	"parts_cost",
	"travel_fee",
	"total_cost",
	"estimated_duration",
	"valid_until",
	"status",
	"created_at",
	"updated_at",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewQuoteRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, q *model.Quote) error {
	if q.ID == uuid.Nil {
		return errors.New("empty quote id")
	}

	query := r.sb.
		Insert(quotesTable).
		Columns(quoteColumns...).
		Values(
			q.ID,
			q.ServiceRequestID,
			q.ServiceType,
			q.Urgency,
			q.Description,
			q.LaborCost,
			q.PartsCost,
			q.TravelFee,
			q.TotalCost,
			q.EstimatedDuration,
			q.ValidUntil,
			q.Status,
			q.CreatedAt,
			q.UpdatedAt,
		)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: quote %s already exists", model.ErrQuoteConflict, q.ID)
		}
		return err
	}

	return nil
}

func (r *repository) QuoteByID(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	query := r.sb.
		Select(quoteColumns...).
		From(quotesTable).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	q, err := scanQuote(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrQuoteNotFound
		}
		return nil, err
	}

	return q, nil
}

func (r *repository) ListByServiceRequest(ctx context.Context, serviceRequestID string) ([]model.Quote, error) {
	query := r.sb.
		Select(quoteColumns...).
		From(quotesTable).
		Where(sq.Eq{"service_request_id": serviceRequestID}).
		OrderBy("created_at DESC", "id")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]model.Quote, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}

// UpdateStatus is a compare-and-set on the status column.
func (r *repository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to model.QuoteStatus,
	at time.Time,
) error {
	query := r.sb.
		Update(quotesTable).
		SetMap(sq.Eq{
			"status":     to,
			"updated_at": at,
		}).
		Where(sq.Eq{"id": id, "status": from})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() > 0 {
		return nil
	}

	exists, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrQuoteNotFound
	}

	return fmt.Errorf("%w: quote %s is no longer %s", model.ErrQuoteConflict, id, from)
}

func (r *repository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := r.sb.
		Select("1").
		Prefix("SELECT EXISTS (").
		From(quotesTable).
		Where(sq.Eq{"id": id}).
		Suffix(")")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func scanQuote(row pgx.Row) (*model.Quote, error) {
	var q model.Quote
	err := row.Scan(
		&q.ID,
		&q.ServiceRequestID,
		&q.ServiceType,
		&q.Urgency,
		&q.Description,
		&q.LaborCost,
		&q.PartsCost,
		&q.TravelFee,
		&q.TotalCost,
		&q.EstimatedDuration,
		&q.ValidUntil,
		&q.Status,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &q, nil
}
