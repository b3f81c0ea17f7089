package queries

import (
	"context"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/infra"

	"github.com/google/uuid"
)

type BookingFilter struct {
	ProviderID *uuid.UUID
	CustomerID *uuid.UUID
	Status     string
}

type BookingReadStore interface {
	List(ctx context.Context, f BookingFilter, p ListParams) ([]BookingView, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByOrderID(ctx context.Context, orderID string) (*BookingView, error)
	// Revenue sums confirmed bookings per provider; Query matches the provider name.
	Revenue(ctx context.Context, p ListParams) ([]RevenueRow, int, error)
}

type BookingQueries interface {
	ListAll(ctx context.Context, status string, p ListParams) (Page[BookingView], error)
	ListForProvider(ctx context.Context, providerID uuid.UUID, status string, p ListParams) (Page[BookingView], error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID, p ListParams) (Page[BookingView], error)
	GetForCustomer(ctx context.Context, customerID, id uuid.UUID) (*BookingView, error)
	Revenue(ctx context.Context, p ListParams) (Page[RevenueRow], error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, status string, p ListParams) (Page[BookingView], error) {
	return q.list(ctx, BookingFilter{Status: status}, p)
}

func (q *bookingQueriesImpl) ListForProvider(ctx context.Context, providerID uuid.UUID, status string, p ListParams) (Page[BookingView], error) {
	return q.list(ctx, BookingFilter{ProviderID: &providerID, Status: status}, p)
}

func (q *bookingQueriesImpl) ListForCustomer(ctx context.Context, customerID uuid.UUID, p ListParams) (Page[BookingView], error) {
	return q.list(ctx, BookingFilter{CustomerID: &customerID}, p)
}

func (q *bookingQueriesImpl) list(ctx context.Context, f BookingFilter, p ListParams) (Page[BookingView], error) {
	if f.Status != "" {
		if _, err := booking.NewStatus(f.Status); err != nil {
			return Page[BookingView]{}, ErrInvalidStatusFilter
		}
	}
	return paginate(ctx, p, func(ctx context.Context, p ListParams) ([]BookingView, int, error) {
		return q.store.List(ctx, f, p)
	})
}

func (q *bookingQueriesImpl) GetForCustomer(ctx context.Context, customerID, id uuid.UUID) (*BookingView, error) {
	bv, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if bv.CustomerID != customerID {
		return nil, ErrBookingAccess
	}
	return bv, nil
}

func (q *bookingQueriesImpl) Revenue(ctx context.Context, p ListParams) (Page[RevenueRow], error) {
	return paginate(ctx, p, q.store.Revenue)
}
