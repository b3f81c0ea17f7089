//go:build unit

package readstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/readstore"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestProviderReadStore_List(t *testing.T) {
	mock := newMockPool(t)
	store := readstore.NewProviderReadStore(mock, discardLogger())
	id, owner := uuid.New(), uuid.New()
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM providers").
		WithArgs("approved", "%glow%", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(6))
	mock.ExpectQuery("ORDER BY priority DESC").
		WithArgs("approved", "%glow%", pgxmock.AnyArg(), pgxmock.AnyArg(), 5, 5).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "owner_id", "name", "kind", "address", "opening_min", "closing_min", "status", "priority", "created_at",
		}).AddRow(id, owner, "Glow Studio", "salon", "MG Road", 570, 1230, "approved", 3, created))

	p := queries.ListParams{Query: "glow", Page: 2}.Normalize()
	got, total, err := store.List(context.Background(), queries.ProviderFilter{Status: "approved", ByPriority: true}, p)

	require.NoError(t, err)
	assert.Equal(t, 6, total)
	require.Len(t, got, 1)
	assert.Equal(t, "09:30", got[0].OpeningTime)
	assert.Equal(t, "20:30", got[0].ClosingTime)
	assert.Equal(t, 3, got[0].Priority)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFilters_MatchTextLiterally(t *testing.T) {
	cases := []struct {
		query string
		arg   string
	}{
		{query: "", arg: ""},
		{query: "50%", arg: `%50\%%`},
		{query: "hair_cut", arg: `%hair\_cut%`},
		{query: `back\slash`, arg: `%back\\slash%`},
	}
	for _, c := range cases {
		t.Run(c.query, func(t *testing.T) {
			mock := newMockPool(t)
			store := readstore.NewCatalogReadStore(mock, discardLogger())
			providerID := uuid.New()

			mock.ExpectQuery("SELECT count\\(\\*\\) FROM services").
				WithArgs(providerID, c.arg).
				WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
			mock.ExpectQuery("FROM services").
				WithArgs(providerID, c.arg, pgxmock.AnyArg(), pgxmock.AnyArg()).
				WillReturnRows(pgxmock.NewRows([]string{"id"}))

			_, total, err := store.ListServices(context.Background(), providerID, queries.ListParams{Query: c.query}.Normalize())
			require.NoError(t, err)
			assert.Zero(t, total)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProviderReadStore_FindByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	store := readstore.NewProviderReadStore(mock, discardLogger())
	id := uuid.New()

	mock.ExpectQuery("FROM providers WHERE id").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := store.FindByID(context.Background(), id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestBookingReadStore_FindByOrderID(t *testing.T) {
	mock := newMockPool(t)
	store := readstore.NewBookingReadStore(mock, discardLogger())
	id, customer, provider := uuid.New(), uuid.New(), uuid.New()
	orderID := "pi_42"
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	services := []byte(`[{"name":"Haircut","price_amount":50000,"duration_minutes":60},{"name":"Beard trim","price_amount":20000,"duration_minutes":30}]`)

	mock.ExpectQuery("WHERE b.order_id").
		WithArgs(orderID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "customer_id", "customer_name", "provider_id", "provider_name", "employee_name",
			"booking_date", "start_min", "duration_minutes", "services", "price_amount", "currency", "status",
			"order_id", "created_at",
		}).AddRow(id, customer, "Asha", provider, "Glow Studio", "Meera",
			date, 660, 90, services, int64(70000), "INR", "confirmed", &orderID, date))

	got, err := store.FindByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, "11:00-12:30", got.TimeSlot)
	assert.Equal(t, "Haircut", got.ServiceName)
	assert.Equal(t, []string{"Beard trim"}, got.RelatedServices)
	assert.Equal(t, 90, got.DurationMinutes)
	require.NotNil(t, got.OrderID)
	assert.Equal(t, orderID, *got.OrderID)
}

func TestBookingReadStore_Revenue(t *testing.T) {
	mock := newMockPool(t)
	store := readstore.NewBookingReadStore(mock, discardLogger())
	provider := uuid.New()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM \\(SELECT 1 FROM bookings").
		WithArgs(anyArgs(3)...).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("sum\\(b.price_amount\\)").
		WithArgs(anyArgs(5)...).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "count", "sum", "currency"}).
			AddRow(provider, "Glow Studio", 4, int64(280000), "INR"))

	got, total, err := store.Revenue(context.Background(), queries.ListParams{}.Normalize())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, []queries.RevenueRow{
		{ProviderID: provider, ProviderName: "Glow Studio", Bookings: 4, Amount: 280000, Currency: "INR"},
	}, got)
}

func TestReviewReadStore_ListVisibleKeyset(t *testing.T) {
	mock := newMockPool(t)
	store := readstore.NewReviewReadStore(mock, discardLogger())
	provider, lastID := uuid.New(), uuid.New()
	last := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("\\(r.created_at, r.id\\) <").
		WithArgs(provider, last, lastID, 11).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "customer_id", "name", "provider_id", "pname", "booking_id", "rating", "comment", "hidden", "created_at",
		}).AddRow(uuid.New(), uuid.New(), "Asha", provider, "Glow Studio", uuid.New(), 5, "Lovely", false, last.Add(-time.Hour)))

	got, err := store.ListVisibleKeyset(context.Background(), provider, last, lastID, 11)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Rating)
	assert.Equal(t, "Asha", got[0].CustomerName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
