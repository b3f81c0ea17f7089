package readstore

import (
	"context"
	"log/slog"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"
)

const enquiryFrom = ` FROM enquiries e
	JOIN users u ON u.id = e.customer_id
	JOIN providers p ON p.id = e.provider_id`

const enquiryFilter = `
	WHERE ($1::uuid IS NULL OR e.customer_id = $1)
	AND ($2::uuid IS NULL OR e.provider_id = $2)
	AND ($3::text = '' OR e.status = $3)
	AND ($4::text = '' OR e.subject ILIKE $4 OR e.message ILIKE $4
		OR u.name ILIKE $4 OR p.name ILIKE $4)
	AND ($5::timestamptz IS NULL OR e.created_at >= $5)
	AND ($6::timestamptz IS NULL OR e.created_at < $6)`

type EnquiryReadStore struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewEnquiryReadStore(dbtx db.DBTX, logger *slog.Logger) *EnquiryReadStore {
	return &EnquiryReadStore{dbtx: dbtx, logger: logger}
}

func (r *EnquiryReadStore) List(ctx context.Context, f queries.EnquiryFilter, p queries.ListParams) ([]queries.EnquiryView, int, error) {
	args := []any{f.CustomerID, f.ProviderID, f.Status, containsPattern(p.Query), p.From, p.ToExclusive()}

	total, err := count(ctx, r.dbtx, r.logger, `SELECT count(*)`+enquiryFrom+enquiryFilter, args...)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.dbtx.Query(ctx, `SELECT e.id, e.customer_id, u.name, e.provider_id, p.name, e.subject, e.message,
		e.reply, e.status, e.created_at, e.updated_at`+enquiryFrom+enquiryFilter+`
		ORDER BY e.updated_at DESC, e.id LIMIT $7 OFFSET $8`,
		append(args, p.PageSize, p.Offset())...)
	if err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to list enquiries", err)
	}
	defer rows.Close()

	var out []queries.EnquiryView
	for rows.Next() {
		var v queries.EnquiryView
		if err := rows.Scan(&v.ID, &v.CustomerID, &v.CustomerName, &v.ProviderID, &v.ProviderName, &v.Subject,
			&v.Message, &v.Reply, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, 0, infra.WrapPgErr(r.logger, "failed to scan enquiry", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to iterate enquiries", err)
	}
	return out, total, nil
}
