//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/queries"
	"salon-booking/tests/common/builder"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type providerEnv struct {
	store   *queriesmock.MockProviderReadStore
	catalog *queriesmock.MockCatalogReadStore
	overlay *queriesmock.MockPriorityOverlay
}

func newProviderEnv(t *testing.T) *providerEnv {
	ctrl := gomock.NewController(t)
	return &providerEnv{
		store:   queriesmock.NewMockProviderReadStore(ctrl),
		catalog: queriesmock.NewMockCatalogReadStore(ctrl),
		overlay: queriesmock.NewMockPriorityOverlay(ctrl),
	}
}

func (e *providerEnv) newQueries() queries.ProviderQueries {
	return queries.NewProviderQueries(e.store, e.catalog, e.overlay)
}

func TestProviderListPublic(t *testing.T) {
	ctx := context.Background()
	a := *builder.NewProviderBuilder().BuildView()
	b := *builder.NewProviderBuilder().With(func(p *builder.ProviderBuilder) { p.Name = "Cut Above" }).BuildView()

	t.Run("approved providers by priority with pending edits applied", func(t *testing.T) {
		e := newProviderEnv(t)
		e.store.EXPECT().List(gomock.Any(), queries.ProviderFilter{Status: "approved", ByPriority: true}, gomock.Any()).
			Return([]queries.ProviderView{a, b}, 2, nil)
		e.overlay.EXPECT().Priorities(gomock.Any(), []uuid.UUID{a.ID, b.ID}).
			Return(map[uuid.UUID]int{b.ID: 900}, nil)

		page, err := e.newQueries().ListPublic(ctx, queries.ListParams{})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, a.Priority, page.Items[0].Priority)
		assert.Equal(t, 900, page.Items[1].Priority)
	})

	t.Run("overlay outage shows committed priorities", func(t *testing.T) {
		e := newProviderEnv(t)
		e.store.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]queries.ProviderView{a}, 1, nil)
		e.overlay.EXPECT().Priorities(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

		page, err := e.newQueries().ListPublic(ctx, queries.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, a.Priority, page.Items[0].Priority)
	})

	t.Run("nil overlay", func(t *testing.T) {
		e := newProviderEnv(t)
		e.store.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]queries.ProviderView{a}, 1, nil)

		page, err := queries.NewProviderQueries(e.store, e.catalog, nil).ListPublic(ctx, queries.ListParams{})
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
	})
}

func TestProviderListAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown status filter", func(t *testing.T) {
		e := newProviderEnv(t)
		_, err := e.newQueries().ListAdmin(ctx, "archived", queries.ListParams{})
		assert.ErrorIs(t, err, queries.ErrInvalidStatusFilter)
	})

	t.Run("pending filter", func(t *testing.T) {
		e := newProviderEnv(t)
		e.store.EXPECT().List(gomock.Any(), queries.ProviderFilter{Status: "pending"}, gomock.Any()).Return(nil, 0, nil)

		page, err := e.newQueries().ListAdmin(ctx, "pending", queries.ListParams{})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})
}

func TestProviderDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("approved provider with staff, services and rating", func(t *testing.T) {
		e := newProviderEnv(t)
		pv := builder.NewProviderBuilder().BuildView()
		svc := builder.NewServiceBuilder(pv.ID).BuildView()
		e.store.EXPECT().FindByID(gomock.Any(), pv.ID).Return(pv, nil)
		e.catalog.EXPECT().ListEmployees(gomock.Any(), pv.ID, gomock.Any()).Return(nil, 0, nil)
		e.catalog.EXPECT().ListServices(gomock.Any(), pv.ID, gomock.Any()).Return([]queries.ServiceView{svc}, 1, nil)
		e.store.EXPECT().RatingSummary(gomock.Any(), pv.ID).Return(queries.RatingSummary{Count: 2, Average: 4.5}, nil)
		e.overlay.EXPECT().Priorities(gomock.Any(), []uuid.UUID{pv.ID}).Return(map[uuid.UUID]int{}, nil)

		detail, err := e.newQueries().Detail(ctx, pv.ID)
		require.NoError(t, err)
		assert.Equal(t, pv.Name, detail.Name)
		assert.NotNil(t, detail.Employees)
		assert.Equal(t, []queries.ServiceView{svc}, detail.Services)
		assert.InDelta(t, 4.5, detail.Rating.Average, 0.001)
	})

	t.Run("pending provider is hidden", func(t *testing.T) {
		e := newProviderEnv(t)
		pv := builder.NewProviderBuilder().Pending().BuildView()
		e.store.EXPECT().FindByID(gomock.Any(), pv.ID).Return(pv, nil)

		_, err := e.newQueries().Detail(ctx, pv.ID)
		assert.ErrorIs(t, err, queries.ErrProviderNotFound)
	})

	t.Run("own profile missing", func(t *testing.T) {
		e := newProviderEnv(t)
		e.store.EXPECT().FindByOwner(gomock.Any(), gomock.Any()).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := e.newQueries().Mine(ctx, uuid.New())
		assert.ErrorIs(t, err, queries.ErrNoProviderProfile)
	})
}
