//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/queries"
	"salon-booking/tests/common/builder"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("provider list filters by provider and status", func(t *testing.T) {
		store := queriesmock.NewMockBookingReadStore(gomock.NewController(t))
		providerID := uuid.New()
		bv := *builder.NewBookingBuilder().BuildView()
		store.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f queries.BookingFilter, p queries.ListParams) ([]queries.BookingView, int, error) {
				require.NotNil(t, f.ProviderID)
				assert.Equal(t, providerID, *f.ProviderID)
				assert.Nil(t, f.CustomerID)
				assert.Equal(t, "confirmed", f.Status)
				assert.Equal(t, queries.DefaultPageSize, p.PageSize)
				return []queries.BookingView{bv}, 1, nil
			})

		page, err := queries.NewBookingQueries(store).ListForProvider(ctx, providerID, "confirmed", queries.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Total)
	})

	t.Run("unknown status", func(t *testing.T) {
		store := queriesmock.NewMockBookingReadStore(gomock.NewController(t))
		_, err := queries.NewBookingQueries(store).ListAll(ctx, "refunded", queries.ListParams{})
		assert.ErrorIs(t, err, queries.ErrInvalidStatusFilter)
	})

	t.Run("customer reads own booking only", func(t *testing.T) {
		store := queriesmock.NewMockBookingReadStore(gomock.NewController(t))
		bv := builder.NewBookingBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), bv.ID).Return(bv, nil).Times(2)

		got, err := queries.NewBookingQueries(store).GetForCustomer(ctx, bv.CustomerID, bv.ID)
		require.NoError(t, err)
		assert.Equal(t, bv.ID, got.ID)

		_, err = queries.NewBookingQueries(store).GetForCustomer(ctx, uuid.New(), bv.ID)
		assert.ErrorIs(t, err, queries.ErrBookingAccess)
	})

	t.Run("missing booking", func(t *testing.T) {
		store := queriesmock.NewMockBookingReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := queries.NewBookingQueries(store).GetForCustomer(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("revenue keeps the date range", func(t *testing.T) {
		store := queriesmock.NewMockBookingReadStore(gomock.NewController(t))
		from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
		store.EXPECT().Revenue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p queries.ListParams) ([]queries.RevenueRow, int, error) {
				assert.Equal(t, &from, p.From)
				assert.Equal(t, &to, p.To)
				return []queries.RevenueRow{{ProviderName: "Glow Studio", Bookings: 3, Amount: 150000, Currency: "INR"}}, 1, nil
			})

		page, err := queries.NewBookingQueries(store).Revenue(ctx, queries.ListParams{From: &from, To: &to})
		require.NoError(t, err)
		assert.Equal(t, int64(150000), page.Items[0].Amount)
	})
}
