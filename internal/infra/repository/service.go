package repository

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/money"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
)

type ServiceRepository struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewServiceRepository(dbtx db.DBTX, logger *slog.Logger) *ServiceRepository {
	return &ServiceRepository{dbtx: dbtx, logger: logger}
}

func (r *ServiceRepository) Create(ctx context.Context, s *catalog.Service) error {
	_, err := r.dbtx.Exec(ctx, `INSERT INTO services
		(id, provider_id, name, style, price_amount, currency, duration_minutes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID(), s.ProviderID(), s.Name(), s.Style(), s.Price().Amount(), s.Price().Currency(),
		s.DurationMinutes(), s.CreatedAt(),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	var (
		sid, providerID uuid.UUID
		name, style     string
		amount          int64
		currency        string
		duration        int
		createdAt       time.Time
	)
	err := r.dbtx.QueryRow(ctx, `SELECT id, provider_id, name, style, price_amount, currency, duration_minutes, created_at
		FROM services WHERE id = $1`, id,
	).Scan(&sid, &providerID, &name, &style, &amount, &currency, &duration, &createdAt)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find service", err)
	}

	price, err := money.New(amount, currency)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored service price is invalid", err)
	}
	return catalog.ReconstructService(sid, providerID, name, style, price, duration, createdAt), nil
}

func (r *ServiceRepository) Delete(ctx context.Context, providerID, id uuid.UUID) error {
	tag, err := r.dbtx.Exec(ctx, `DELETE FROM services WHERE id = $1 AND provider_id = $2`, id, providerID)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "service not found", nil)
	}
	return nil
}
