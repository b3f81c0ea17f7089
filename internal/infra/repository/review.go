package repository

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/review"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewReviewRepository(dbtx db.DBTX, logger *slog.Logger) *ReviewRepository {
	return &ReviewRepository{dbtx: dbtx, logger: logger}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	_, err := r.dbtx.Exec(ctx, `INSERT INTO reviews
		(id, customer_id, provider_id, booking_id, rating, comment, hidden, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rv.ID(), rv.CustomerID(), rv.ProviderID(), rv.BookingID(),
		rv.Rating().Value(), rv.Comment().String(), rv.Hidden(),
		rv.CreatedAt(), rv.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	var (
		rid, customerID, providerID, bookingID uuid.UUID
		rating                                 int
		comment                                string
		hidden                                 bool
		createdAt, updatedAt                   time.Time
	)
	err := r.dbtx.QueryRow(ctx, `SELECT id, customer_id, provider_id, booking_id, rating, comment, hidden, created_at, updated_at
		FROM reviews WHERE id = $1`, id,
	).Scan(&rid, &customerID, &providerID, &bookingID, &rating, &comment, &hidden, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find review", err)
	}

	rt, err := review.NewRating(rating)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored rating is invalid", err)
	}
	cm, err := review.NewComment(comment)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "stored comment is invalid", err)
	}
	return review.Reconstruct(rid, customerID, providerID, bookingID, rt, cm, hidden, createdAt, updatedAt), nil
}

func (r *ReviewRepository) Save(ctx context.Context, rv *review.Review) error {
	tag, err := r.dbtx.Exec(ctx,
		`UPDATE reviews SET rating = $2, comment = $3, hidden = $4, updated_at = $5 WHERE id = $1`,
		rv.ID(), rv.Rating().Value(), rv.Comment().String(), rv.Hidden(), rv.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "review not found", nil)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.dbtx.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "review not found", nil)
	}
	return nil
}
