package readstore

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reviewViewSelect = `SELECT r.id, r.customer_id, u.name, r.provider_id, p.name, r.booking_id,
	r.rating, r.comment, r.hidden, r.created_at
	FROM reviews r
	JOIN users u ON u.id = r.customer_id
	JOIN providers p ON p.id = r.provider_id`

const reviewFilter = `
	WHERE ($1::uuid IS NULL OR r.provider_id = $1)
	AND ($2::bool OR NOT r.hidden)
	AND ($3::text = '' OR r.comment ILIKE $3 OR u.name ILIKE $3 OR p.name ILIKE $3)
	AND ($4::timestamptz IS NULL OR r.created_at >= $4)
	AND ($5::timestamptz IS NULL OR r.created_at < $5)`

type ReviewReadStore struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewReviewReadStore(dbtx db.DBTX, logger *slog.Logger) *ReviewReadStore {
	return &ReviewReadStore{dbtx: dbtx, logger: logger}
}

func (r *ReviewReadStore) ListVisibleFirstPage(ctx context.Context, providerID uuid.UUID, limit int) ([]queries.ReviewView, error) {
	rows, err := r.dbtx.Query(ctx, reviewViewSelect+`
		WHERE r.provider_id = $1 AND NOT r.hidden
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`, providerID, limit)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get reviews first page", err)
	}
	return r.collect(rows)
}

func (r *ReviewReadStore) ListVisibleKeyset(ctx context.Context, providerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int) ([]queries.ReviewView, error) {
	rows, err := r.dbtx.Query(ctx, reviewViewSelect+`
		WHERE r.provider_id = $1 AND NOT r.hidden
		AND (r.created_at, r.id) < ($2, $3)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $4`, providerID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get reviews keyset page", err)
	}
	return r.collect(rows)
}

func (r *ReviewReadStore) List(ctx context.Context, f queries.ReviewFilter, p queries.ListParams) ([]queries.ReviewView, int, error) {
	args := []any{f.ProviderID, f.IncludeHidden, containsPattern(p.Query), p.From, p.ToExclusive()}

	total, err := count(ctx, r.dbtx, r.logger, `SELECT count(*) FROM reviews r
		JOIN users u ON u.id = r.customer_id
		JOIN providers p ON p.id = r.provider_id`+reviewFilter, args...)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.dbtx.Query(ctx, reviewViewSelect+reviewFilter+` ORDER BY r.created_at DESC, r.id DESC LIMIT $6 OFFSET $7`,
		append(args, p.PageSize, p.Offset())...)
	if err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to list reviews", err)
	}
	out, err := r.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *ReviewReadStore) collect(rows pgx.Rows) ([]queries.ReviewView, error) {
	defer rows.Close()

	var out []queries.ReviewView
	for rows.Next() {
		var v queries.ReviewView
		if err := rows.Scan(&v.ID, &v.CustomerID, &v.CustomerName, &v.ProviderID, &v.ProviderName, &v.BookingID,
			&v.Rating, &v.Comment, &v.Hidden, &v.CreatedAt); err != nil {
			return nil, infra.WrapPgErr(r.logger, "failed to scan review", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to iterate reviews", err)
	}
	return out, nil
}
