package repository

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, name, password_hash, role, last_login, is_active, created_at, updated_at`

type UserRepository struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewUserRepository(dbtx db.DBTX, logger *slog.Logger) *UserRepository {
	return &UserRepository{dbtx: dbtx, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.dbtx.Exec(ctx, `INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID(), u.Email().Value(), u.Name(), u.PasswordHash(), u.Role().String(),
		u.LastLogin(), u.IsActive(), u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.dbtx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find user by id", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.dbtx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.dbtx.Exec(ctx, `UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update last login", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                      uuid.UUID
		email, name, hash, role string
		lastLogin               *time.Time
		isActive                bool
		createdAt, updatedAt    time.Time
	)
	if err := row.Scan(&id, &email, &name, &hash, &role, &lastLogin, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return user.Reconstruct(id, e, name, hash, user.Role(role), lastLogin, isActive, createdAt, updatedAt), nil
}
