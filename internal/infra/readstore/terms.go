package readstore

import (
	"context"
	"log/slog"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"
)

type TermsReadStore struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewTermsReadStore(dbtx db.DBTX, logger *slog.Logger) *TermsReadStore {
	return &TermsReadStore{dbtx: dbtx, logger: logger}
}

func (r *TermsReadStore) Current(ctx context.Context) (*queries.TermsView, error) {
	var v queries.TermsView
	err := r.dbtx.QueryRow(ctx, `SELECT version, body, published_at FROM terms_documents
		ORDER BY published_at DESC LIMIT 1`,
	).Scan(&v.Version, &v.Body, &v.PublishedAt)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get current terms", err)
	}
	return &v, nil
}
