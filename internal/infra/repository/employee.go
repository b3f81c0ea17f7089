package repository

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/provider"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
)

type EmployeeRepository struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewEmployeeRepository(dbtx db.DBTX, logger *slog.Logger) *EmployeeRepository {
	return &EmployeeRepository{dbtx: dbtx, logger: logger}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *provider.Employee) error {
	_, err := r.dbtx.Exec(ctx,
		`INSERT INTO employees (id, provider_id, name, active, created_at) VALUES ($1, $2, $3, $4, $5)`,
		e.ID(), e.ProviderID(), e.Name(), e.Active(), e.CreatedAt(),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to create employee", err)
	}
	return nil
}

func (r *EmployeeRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*provider.Employee, error) {
	rows, err := r.dbtx.Query(ctx, `SELECT id, provider_id, name, active, created_at
		FROM employees WHERE provider_id = $1 AND active
		ORDER BY name`, providerID)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to list employees", err)
	}
	defer rows.Close()

	var out []*provider.Employee
	for rows.Next() {
		var (
			id, pid   uuid.UUID
			name      string
			active    bool
			createdAt time.Time
		)
		if err := rows.Scan(&id, &pid, &name, &active, &createdAt); err != nil {
			return nil, infra.WrapPgErr(r.logger, "failed to scan employee", err)
		}
		out = append(out, provider.ReconstructEmployee(id, pid, name, active, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to iterate employees", err)
	}
	return out, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, providerID, id uuid.UUID) error {
	tag, err := r.dbtx.Exec(ctx, `DELETE FROM employees WHERE id = $1 AND provider_id = $2`, id, providerID)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to delete employee", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "employee not found", nil)
	}
	return nil
}
