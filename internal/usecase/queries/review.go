package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReviewFilter struct {
	ProviderID    *uuid.UUID
	IncludeHidden bool
}

type ReviewReadStore interface {
	ListVisibleFirstPage(ctx context.Context, providerID uuid.UUID, limit int) ([]ReviewView, error)
	ListVisibleKeyset(ctx context.Context, providerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int) ([]ReviewView, error)
	List(ctx context.Context, f ReviewFilter, p ListParams) ([]ReviewView, int, error)
}

type ReviewQueries interface {
	ListForProvider(ctx context.Context, providerID uuid.UUID, cursor *Cursor, limit int) ([]ReviewView, *Cursor, error)
	ListAdmin(ctx context.Context, p ListParams) (Page[ReviewView], error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

// ListForProvider pages visible reviews newest first. The returned cursor is nil on the last page.
func (q *reviewQueriesImpl) ListForProvider(ctx context.Context, providerID uuid.UUID, cursor *Cursor, limit int) ([]ReviewView, *Cursor, error) {
	limit = reviewPageSize(limit)
	var rows []ReviewView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListVisibleFirstPage(ctx, providerID, limit+1)
	} else {
		lastCreatedAt, lastID, derr := DecodeReviewCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.ListVisibleKeyset(ctx, providerID, lastCreatedAt, lastID, limit+1)
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeReviewCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return nonNil(rows), next, nil
}

func (q *reviewQueriesImpl) ListAdmin(ctx context.Context, p ListParams) (Page[ReviewView], error) {
	return paginate(ctx, p, func(ctx context.Context, p ListParams) ([]ReviewView, int, error) {
		return q.store.List(ctx, ReviewFilter{IncludeHidden: true}, p)
	})
}
