package readstore

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const providerViewColumns = `id, owner_id, name, kind, address, opening_min, closing_min, status, priority, created_at`

const providerFilter = `
	WHERE ($1::text = '' OR status = $1)
	AND ($2::text = '' OR name ILIKE $2 OR address ILIKE $2)
	AND ($3::timestamptz IS NULL OR created_at >= $3)
	AND ($4::timestamptz IS NULL OR created_at < $4)`

type ProviderReadStore struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewProviderReadStore(dbtx db.DBTX, logger *slog.Logger) *ProviderReadStore {
	return &ProviderReadStore{dbtx: dbtx, logger: logger}
}

func (r *ProviderReadStore) List(ctx context.Context, f queries.ProviderFilter, p queries.ListParams) ([]queries.ProviderView, int, error) {
	args := []any{f.Status, containsPattern(p.Query), p.From, p.ToExclusive()}

	total, err := count(ctx, r.dbtx, r.logger, `SELECT count(*) FROM providers`+providerFilter, args...)
	if err != nil {
		return nil, 0, err
	}

	order := ` ORDER BY created_at DESC, id`
	if f.ByPriority {
		order = ` ORDER BY priority DESC, name, id`
	}
	rows, err := r.dbtx.Query(ctx, `SELECT `+providerViewColumns+` FROM providers`+providerFilter+order+` LIMIT $5 OFFSET $6`,
		append(args, p.PageSize, p.Offset())...)
	if err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to list providers", err)
	}
	defer rows.Close()

	var out []queries.ProviderView
	for rows.Next() {
		v, err := scanProviderView(rows)
		if err != nil {
			return nil, 0, infra.WrapPgErr(r.logger, "failed to scan provider", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to iterate providers", err)
	}
	return out, total, nil
}

func (r *ProviderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProviderView, error) {
	v, err := scanProviderView(r.dbtx.QueryRow(ctx, `SELECT `+providerViewColumns+` FROM providers WHERE id = $1`, id))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get provider view", err)
	}
	return &v, nil
}

func (r *ProviderReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*queries.ProviderView, error) {
	v, err := scanProviderView(r.dbtx.QueryRow(ctx, `SELECT `+providerViewColumns+` FROM providers WHERE owner_id = $1`, ownerID))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get provider view by owner", err)
	}
	return &v, nil
}

func (r *ProviderReadStore) RatingSummary(ctx context.Context, providerID uuid.UUID) (queries.RatingSummary, error) {
	var s queries.RatingSummary
	err := r.dbtx.QueryRow(ctx, `SELECT count(*), COALESCE(avg(rating), 0)::float8
		FROM reviews WHERE provider_id = $1 AND NOT hidden`, providerID,
	).Scan(&s.Count, &s.Average)
	if err != nil {
		return queries.RatingSummary{}, infra.WrapPgErr(r.logger, "failed to get rating summary", err)
	}
	return s, nil
}

func scanProviderView(row pgx.Row) (queries.ProviderView, error) {
	var (
		v                 queries.ProviderView
		openMin, closeMin int
		createdAt         time.Time
	)
	if err := row.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Kind, &v.Address, &openMin, &closeMin,
		&v.Status, &v.Priority, &createdAt); err != nil {
		return queries.ProviderView{}, err
	}
	v.OpeningTime = availability.Minute(openMin).String()
	v.ClosingTime = availability.Minute(closeMin).String()
	v.CreatedAt = createdAt
	return v, nil
}
