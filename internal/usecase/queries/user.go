package queries

import (
	"context"

	"salon-booking/internal/infra"

	"github.com/google/uuid"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type UserQueries interface {
	Me(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) Me(ctx context.Context, id uuid.UUID) (*UserView, error) {
	u, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
