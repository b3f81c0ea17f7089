package readstore

import (
	"context"
	"log/slog"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewUserReadStore(dbtx db.DBTX, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{dbtx: dbtx, logger: logger}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var v queries.UserView
	err := r.dbtx.QueryRow(ctx, `SELECT id, email, name, role, is_active, last_login, created_at
		FROM users WHERE id = $1`, id,
	).Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.IsActive, &v.LastLogin, &v.CreatedAt)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get user view", err)
	}
	return &v, nil
}
