package queries

import (
	"context"

	"salon-booking/internal/domain/provider"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidStatusFilter = errs.New("unknown status filter")

type ProviderFilter struct {
	Status string
	// ByPriority orders by priority (highest first) instead of newest first.
	ByPriority bool
}

type ProviderReadStore interface {
	List(ctx context.Context, f ProviderFilter, p ListParams) ([]ProviderView, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProviderView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*ProviderView, error)
	RatingSummary(ctx context.Context, providerID uuid.UUID) (RatingSummary, error)
}

// PriorityOverlay exposes priorities accepted from admins but not yet flushed to the database.
type PriorityOverlay interface {
	Priorities(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error)
}

type ProviderQueries interface {
	ListPublic(ctx context.Context, p ListParams) (Page[ProviderView], error)
	ListAdmin(ctx context.Context, status string, p ListParams) (Page[ProviderView], error)
	Detail(ctx context.Context, id uuid.UUID) (*ProviderDetailView, error)
	Mine(ctx context.Context, ownerID uuid.UUID) (*ProviderView, error)
}

type providerQueriesImpl struct {
	store   ProviderReadStore
	catalog CatalogReadStore
	overlay PriorityOverlay
}

// NewProviderQueries accepts a nil overlay.
func NewProviderQueries(store ProviderReadStore, catalog CatalogReadStore, overlay PriorityOverlay) ProviderQueries {
	return &providerQueriesImpl{store: store, catalog: catalog, overlay: overlay}
}

func (q *providerQueriesImpl) ListPublic(ctx context.Context, p ListParams) (Page[ProviderView], error) {
	f := ProviderFilter{Status: string(provider.StatusApproved), ByPriority: true}
	return q.list(ctx, f, p)
}

func (q *providerQueriesImpl) ListAdmin(ctx context.Context, status string, p ListParams) (Page[ProviderView], error) {
	if status != "" {
		if _, err := provider.NewStatus(status); err != nil {
			return Page[ProviderView]{}, ErrInvalidStatusFilter
		}
	}
	return q.list(ctx, ProviderFilter{Status: status}, p)
}

func (q *providerQueriesImpl) list(ctx context.Context, f ProviderFilter, p ListParams) (Page[ProviderView], error) {
	page, err := paginate(ctx, p, func(ctx context.Context, p ListParams) ([]ProviderView, int, error) {
		return q.store.List(ctx, f, p)
	})
	if err != nil {
		return Page[ProviderView]{}, err
	}
	q.applyOverlay(ctx, page.Items)
	return page, nil
}

// applyOverlay is best effort: on a cache failure the committed priorities are shown.
func (q *providerQueriesImpl) applyOverlay(ctx context.Context, items []ProviderView) {
	if q.overlay == nil || len(items) == 0 {
		return
	}
	ids := make([]uuid.UUID, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	pending, err := q.overlay.Priorities(ctx, ids)
	if err != nil {
		return
	}
	for i := range items {
		if v, ok := pending[items[i].ID]; ok {
			items[i].Priority = v
		}
	}
}

func (q *providerQueriesImpl) Detail(ctx context.Context, id uuid.UUID) (*ProviderDetailView, error) {
	pv, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	if pv.Status != string(provider.StatusApproved) {
		return nil, ErrProviderNotFound
	}

	all := ListParams{PageSize: MaxPageSize}.Normalize()
	employees, _, err := q.catalog.ListEmployees(ctx, id, all)
	if err != nil {
		return nil, err
	}
	services, _, err := q.catalog.ListServices(ctx, id, all)
	if err != nil {
		return nil, err
	}
	rating, err := q.store.RatingSummary(ctx, id)
	if err != nil {
		return nil, err
	}

	items := []ProviderView{*pv}
	q.applyOverlay(ctx, items)

	return &ProviderDetailView{
		ProviderView: items[0],
		Rating:       rating,
		Employees:    nonNil(employees),
		Services:     nonNil(services),
	}, nil
}

func (q *providerQueriesImpl) Mine(ctx context.Context, ownerID uuid.UUID) (*ProviderView, error) {
	pv, err := q.store.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoProviderProfile
		}
		return nil, err
	}
	return pv, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func mapProviderErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrProviderNotFound
	}
	return err
}
