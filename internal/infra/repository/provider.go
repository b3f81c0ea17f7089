package repository

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/provider"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const providerColumns = `id, owner_id, name, kind, address, opening_min, closing_min, status, priority, created_at, updated_at`

type ProviderRepository struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewProviderRepository(dbtx db.DBTX, logger *slog.Logger) *ProviderRepository {
	return &ProviderRepository{dbtx: dbtx, logger: logger}
}

func (r *ProviderRepository) Create(ctx context.Context, p *provider.Provider) error {
	_, err := r.dbtx.Exec(ctx, `INSERT INTO providers (`+providerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID(), p.OwnerID(), p.Name(), string(p.Kind()), p.Address(),
		int(p.Hours().Open), int(p.Hours().Close), string(p.Status()), p.Priority(),
		p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to create provider", err)
	}
	return nil
}

func (r *ProviderRepository) FindByID(ctx context.Context, id uuid.UUID) (*provider.Provider, error) {
	row := r.dbtx.QueryRow(ctx, `SELECT `+providerColumns+` FROM providers WHERE id = $1`, id)
	p, err := scanProvider(row)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find provider", err)
	}
	return p, nil
}

func (r *ProviderRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*provider.Provider, error) {
	row := r.dbtx.QueryRow(ctx, `SELECT `+providerColumns+` FROM providers WHERE owner_id = $1`, ownerID)
	p, err := scanProvider(row)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find provider by owner", err)
	}
	return p, nil
}

func (r *ProviderRepository) Save(ctx context.Context, p *provider.Provider) error {
	tag, err := r.dbtx.Exec(ctx, `UPDATE providers
		SET name = $2, address = $3, opening_min = $4, closing_min = $5, status = $6, priority = $7, updated_at = $8
		WHERE id = $1`,
		p.ID(), p.Name(), p.Address(), int(p.Hours().Open), int(p.Hours().Close),
		string(p.Status()), p.Priority(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update provider", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "provider not found", nil)
	}
	return nil
}

func (r *ProviderRepository) UpdatePriority(ctx context.Context, id uuid.UUID, priority int, at time.Time) error {
	tag, err := r.dbtx.Exec(ctx,
		`UPDATE providers SET priority = $2, updated_at = $3 WHERE id = $1`,
		id, priority, at,
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update provider priority", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "provider not found", nil)
	}
	return nil
}

func (r *ProviderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.dbtx.Exec(ctx, `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to delete provider", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "provider not found", nil)
	}
	return nil
}

func scanProvider(row pgx.Row) (*provider.Provider, error) {
	var (
		id, ownerID                 uuid.UUID
		name, kind, address, status string
		openMin, closeMin, priority int
		createdAt, updatedAt        time.Time
	)
	if err := row.Scan(&id, &ownerID, &name, &kind, &address, &openMin, &closeMin,
		&status, &priority, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	hours := provider.Hours{Open: availability.Minute(openMin), Close: availability.Minute(closeMin)}
	return provider.Reconstruct(id, ownerID, name, provider.Kind(kind), address, hours,
		provider.Status(status), priority, createdAt, updatedAt), nil
}
