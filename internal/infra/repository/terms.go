package repository

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/terms"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
)

type TermsRepository struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewTermsRepository(dbtx db.DBTX, logger *slog.Logger) *TermsRepository {
	return &TermsRepository{dbtx: dbtx, logger: logger}
}

// Current returns the most recently published document.
func (r *TermsRepository) Current(ctx context.Context) (terms.Document, error) {
	var doc terms.Document
	err := r.dbtx.QueryRow(ctx, `SELECT version, body, published_at FROM terms_documents
		ORDER BY published_at DESC LIMIT 1`,
	).Scan(&doc.Version, &doc.Body, &doc.PublishedAt)
	if err != nil {
		return terms.Document{}, infra.WrapPgErr(r.logger, "failed to load current terms", err)
	}
	return doc, nil
}

func (r *TermsRepository) Publish(ctx context.Context, doc terms.Document) error {
	_, err := r.dbtx.Exec(ctx,
		`INSERT INTO terms_documents (version, body, published_at) VALUES ($1, $2, $3)`,
		doc.Version, doc.Body, doc.PublishedAt,
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to publish terms", err)
	}
	return nil
}
