package readstore

import (
	"context"
	"log/slog"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewCatalogReadStore(dbtx db.DBTX, logger *slog.Logger) *CatalogReadStore {
	return &CatalogReadStore{dbtx: dbtx, logger: logger}
}

func (r *CatalogReadStore) ListEmployees(ctx context.Context, providerID uuid.UUID, p queries.ListParams) ([]queries.EmployeeView, int, error) {
	const filter = ` FROM employees WHERE provider_id = $1 AND active AND ($2::text = '' OR name ILIKE $2)`
	args := []any{providerID, containsPattern(p.Query)}

	total, err := count(ctx, r.dbtx, r.logger, `SELECT count(*)`+filter, args...)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.dbtx.Query(ctx, `SELECT id, name, active, created_at`+filter+` ORDER BY name LIMIT $3 OFFSET $4`,
		append(args, p.PageSize, p.Offset())...)
	if err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to list employees", err)
	}
	defer rows.Close()

	var out []queries.EmployeeView
	for rows.Next() {
		var v queries.EmployeeView
		if err := rows.Scan(&v.ID, &v.Name, &v.Active, &v.CreatedAt); err != nil {
			return nil, 0, infra.WrapPgErr(r.logger, "failed to scan employee", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to iterate employees", err)
	}
	return out, total, nil
}

func (r *CatalogReadStore) ListServices(ctx context.Context, providerID uuid.UUID, p queries.ListParams) ([]queries.ServiceView, int, error) {
	const filter = ` FROM services WHERE provider_id = $1
		AND ($2::text = '' OR name ILIKE $2 OR style ILIKE $2)`
	args := []any{providerID, containsPattern(p.Query)}

	total, err := count(ctx, r.dbtx, r.logger, `SELECT count(*)`+filter, args...)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.dbtx.Query(ctx,
		`SELECT id, provider_id, name, style, price_amount, currency, duration_minutes`+filter+` ORDER BY name, id LIMIT $3 OFFSET $4`,
		append(args, p.PageSize, p.Offset())...)
	if err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to list services", err)
	}
	defer rows.Close()

	var out []queries.ServiceView
	for rows.Next() {
		var v queries.ServiceView
		if err := rows.Scan(&v.ID, &v.ProviderID, &v.Name, &v.Style, &v.Amount, &v.Currency, &v.DurationMinutes); err != nil {
			return nil, 0, infra.WrapPgErr(r.logger, "failed to scan service", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to iterate services", err)
	}
	return out, total, nil
}
