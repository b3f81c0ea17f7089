//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-booking/internal/usecase/queries"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListParamsNormalize(t *testing.T) {
	cases := []struct {
		name     string
		in       queries.ListParams
		page     int
		pageSize int
	}{
		{name: "defaults", in: queries.ListParams{}, page: 1, pageSize: queries.DefaultPageSize},
		{name: "negative page", in: queries.ListParams{Page: -3, PageSize: 10}, page: 1, pageSize: 10},
		{name: "oversized page", in: queries.ListParams{Page: 2, PageSize: 500}, page: 2, pageSize: queries.MaxPageSize},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := c.in.Normalize()
			assert.Equal(t, c.page, p.Page)
			assert.Equal(t, c.pageSize, p.PageSize)
		})
	}

	p := queries.ListParams{Query: "  glow  ", Page: 3, PageSize: 5}.Normalize()
	assert.Equal(t, "glow", p.Query)
	assert.Equal(t, 10, p.Offset())
}

func TestLastPage(t *testing.T) {
	assert.Equal(t, 1, queries.LastPage(0, 5))
	assert.Equal(t, 1, queries.LastPage(5, 5))
	assert.Equal(t, 2, queries.LastPage(6, 5))
	assert.Equal(t, 3, queries.LastPage(11, 5))
}

func TestToExclusive(t *testing.T) {
	to := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	p := queries.ListParams{To: &to}
	assert.Equal(t, time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC), *p.ToExclusive())
	assert.Nil(t, queries.ListParams{}.ToExclusive())
}

func TestPagination(t *testing.T) {
	ctx := context.Background()
	providerID := uuid.New()

	t.Run("page past the end is clamped to the last page", func(t *testing.T) {
		store := queriesmock.NewMockCatalogReadStore(gomock.NewController(t))
		last := []queries.EmployeeView{{Name: "Ravi"}}
		gomock.InOrder(
			store.EXPECT().ListEmployees(gomock.Any(), providerID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, p queries.ListParams) ([]queries.EmployeeView, int, error) {
					assert.Equal(t, 9, p.Page)
					return nil, 11, nil
				}),
			store.EXPECT().ListEmployees(gomock.Any(), providerID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, p queries.ListParams) ([]queries.EmployeeView, int, error) {
					assert.Equal(t, 3, p.Page)
					assert.Equal(t, 10, p.Offset())
					return last, 11, nil
				}),
		)

		page, err := queries.NewCatalogQueries(store).Employees(ctx, providerID, queries.ListParams{Page: 9})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Page)
		assert.Equal(t, 3, page.TotalPages())
		assert.Equal(t, last, page.Items)
	})

	t.Run("empty result is page one with no items", func(t *testing.T) {
		store := queriesmock.NewMockCatalogReadStore(gomock.NewController(t))
		store.EXPECT().ListServices(gomock.Any(), providerID, gomock.Any()).Return(nil, 0, nil)

		page, err := queries.NewCatalogQueries(store).Services(ctx, providerID, queries.ListParams{Page: 4})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
	})

	t.Run("reversed date range", func(t *testing.T) {
		store := queriesmock.NewMockCatalogReadStore(gomock.NewController(t))
		from := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, -1)

		_, err := queries.NewCatalogQueries(store).Services(ctx, providerID, queries.ListParams{From: &from, To: &to})
		assert.ErrorIs(t, err, queries.ErrInvalidDateRange)
	})

	t.Run("store failure", func(t *testing.T) {
		store := queriesmock.NewMockCatalogReadStore(gomock.NewController(t))
		boom := errors.New("boom")
		store.EXPECT().ListServices(gomock.Any(), providerID, gomock.Any()).Return(nil, 0, boom)

		_, err := queries.NewCatalogQueries(store).Services(ctx, providerID, queries.ListParams{})
		assert.ErrorIs(t, err, boom)
	})
}
