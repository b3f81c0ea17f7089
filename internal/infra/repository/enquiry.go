package repository

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/enquiry"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
)

type EnquiryRepository struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewEnquiryRepository(dbtx db.DBTX, logger *slog.Logger) *EnquiryRepository {
	return &EnquiryRepository{dbtx: dbtx, logger: logger}
}

func (r *EnquiryRepository) Create(ctx context.Context, e *enquiry.Enquiry) error {
	_, err := r.dbtx.Exec(ctx, `INSERT INTO enquiries
		(id, customer_id, provider_id, subject, message, reply, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID(), e.CustomerID(), e.ProviderID(), e.Subject(), e.Message(), e.Reply(),
		string(e.Status()), e.CreatedAt(), e.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to create enquiry", err)
	}
	return nil
}

func (r *EnquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*enquiry.Enquiry, error) {
	var (
		eid, customerID, providerID uuid.UUID
		subject, message, status    string
		reply                       *string
		createdAt, updatedAt        time.Time
	)
	err := r.dbtx.QueryRow(ctx, `SELECT id, customer_id, provider_id, subject, message, reply, status, created_at, updated_at
		FROM enquiries WHERE id = $1`, id,
	).Scan(&eid, &customerID, &providerID, &subject, &message, &reply, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find enquiry", err)
	}
	return enquiry.Reconstruct(eid, customerID, providerID, subject, message, reply,
		enquiry.Status(status), createdAt, updatedAt), nil
}

func (r *EnquiryRepository) Save(ctx context.Context, e *enquiry.Enquiry) error {
	tag, err := r.dbtx.Exec(ctx,
		`UPDATE enquiries SET reply = $2, status = $3, updated_at = $4 WHERE id = $1`,
		e.ID(), e.Reply(), string(e.Status()), e.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update enquiry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "enquiry not found", nil)
	}
	return nil
}
