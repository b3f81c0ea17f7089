package queries

import (
	"context"

	"salon-booking/internal/infra"
)

type TermsReadStore interface {
	Current(ctx context.Context) (*TermsView, error)
}

type TermsQueries interface {
	Current(ctx context.Context) (*TermsView, error)
}

type termsQueriesImpl struct {
	store TermsReadStore
}

func NewTermsQueries(store TermsReadStore) TermsQueries {
	return &termsQueriesImpl{store: store}
}

func (q *termsQueriesImpl) Current(ctx context.Context) (*TermsView, error) {
	tv, err := q.store.Current(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTermsNotFound
		}
		return nil, err
	}
	return tv, nil
}
