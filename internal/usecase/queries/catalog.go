package queries

import (
	"context"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	ListEmployees(ctx context.Context, providerID uuid.UUID, p ListParams) ([]EmployeeView, int, error)
	ListServices(ctx context.Context, providerID uuid.UUID, p ListParams) ([]ServiceView, int, error)
}

type CatalogQueries interface {
	Employees(ctx context.Context, providerID uuid.UUID, p ListParams) (Page[EmployeeView], error)
	Services(ctx context.Context, providerID uuid.UUID, p ListParams) (Page[ServiceView], error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) Employees(ctx context.Context, providerID uuid.UUID, p ListParams) (Page[EmployeeView], error) {
	return paginate(ctx, p, func(ctx context.Context, p ListParams) ([]EmployeeView, int, error) {
		return q.store.ListEmployees(ctx, providerID, p)
	})
}

func (q *catalogQueriesImpl) Services(ctx context.Context, providerID uuid.UUID, p ListParams) (Page[ServiceView], error) {
	return paginate(ctx, p, func(ctx context.Context, p ListParams) ([]ServiceView, int, error) {
		return q.store.ListServices(ctx, providerID, p)
	})
}
