package queries

import (
	"context"

	"salon-booking/internal/domain/enquiry"

	"github.com/google/uuid"
)

type EnquiryFilter struct {
	CustomerID *uuid.UUID
	ProviderID *uuid.UUID
	Status     string
}

type EnquiryReadStore interface {
	List(ctx context.Context, f EnquiryFilter, p ListParams) ([]EnquiryView, int, error)
}

type EnquiryQueries interface {
	ListForCustomer(ctx context.Context, customerID uuid.UUID, p ListParams) (Page[EnquiryView], error)
	ListForProvider(ctx context.Context, providerID uuid.UUID, status string, p ListParams) (Page[EnquiryView], error)
}

type enquiryQueriesImpl struct {
	store EnquiryReadStore
}

func NewEnquiryQueries(store EnquiryReadStore) EnquiryQueries {
	return &enquiryQueriesImpl{store: store}
}

func (q *enquiryQueriesImpl) ListForCustomer(ctx context.Context, customerID uuid.UUID, p ListParams) (Page[EnquiryView], error) {
	return q.list(ctx, EnquiryFilter{CustomerID: &customerID}, p)
}

func (q *enquiryQueriesImpl) ListForProvider(ctx context.Context, providerID uuid.UUID, status string, p ListParams) (Page[EnquiryView], error) {
	if status != "" {
		if _, err := enquiry.NewStatus(status); err != nil {
			return Page[EnquiryView]{}, ErrInvalidStatusFilter
		}
	}
	return q.list(ctx, EnquiryFilter{ProviderID: &providerID, Status: status}, p)
}

func (q *enquiryQueriesImpl) list(ctx context.Context, f EnquiryFilter, p ListParams) (Page[EnquiryView], error) {
	return paginate(ctx, p, func(ctx context.Context, p ListParams) ([]EnquiryView, int, error) {
		return q.store.List(ctx, f, p)
	})
}
