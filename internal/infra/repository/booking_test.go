//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/money"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingCols = []string{
	"id", "customer_id", "provider_id", "customer_name", "employee_name", "booking_date", "start_min",
	"duration_minutes", "services", "price_amount", "currency", "status", "order_id", "created_at", "updated_at",
}

func newBooking(t *testing.T) *booking.Booking {
	t.Helper()
	price, err := money.New(120000, "INR")
	require.NoError(t, err)
	b, err := booking.New(booking.NewParams{
		CustomerID:   uuid.New(),
		ProviderID:   uuid.New(),
		CustomerName: "Asha",
		EmployeeName: "Meera",
		Date:         time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Start:        10 * 60,
		Services: []catalog.Line{
			{ServiceID: uuid.New(), Name: "Haircut", Price: price, DurationMinutes: 60},
		},
		Now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return b
}

func TestBookingRepository_Create(t *testing.T) {
	t.Run("inserts row", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewBookingRepository(mock, discardLogger())
		b := newBooking(t)

		mock.ExpectExec("INSERT INTO bookings").
			WithArgs(b.ID(), b.CustomerID(), b.ProviderID(), "Asha", "Meera",
				pgxmock.AnyArg(), 600, 60, pgxmock.AnyArg(),
				int64(120000), "INR", "awaiting_payment", pgxmock.AnyArg(),
				b.CreatedAt(), b.UpdatedAt()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.Create(context.Background(), b))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exclusion violation maps to conflict", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewBookingRepository(mock, discardLogger())

		mock.ExpectExec("INSERT INTO bookings").
			WithArgs(anyArgs(15)...).
			WillReturnError(&pgconn.PgError{Code: "23P01"})

		err := repo.Create(context.Background(), newBooking(t))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

func TestBookingRepository_FindByID(t *testing.T) {
	id, customerID, providerID, serviceID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	orderID := "pi_123"
	services := []byte(`[{"service_id":"` + serviceID.String() + `","name":"Facial","style":"Hydra","price_amount":90000,"duration_minutes":90}]`)

	t.Run("scans row with services", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewBookingRepository(mock, discardLogger())

		mock.ExpectQuery("SELECT .* FROM bookings WHERE id").
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(bookingCols).AddRow(
				id, customerID, providerID, "Asha", "Meera", date, 600,
				90, services, int64(90000), "INR", "confirmed", &orderID, created, created,
			))

		got, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID())
		assert.Equal(t, booking.StatusConfirmed, got.Status())
		assert.Equal(t, "pi_123", got.OrderID())
		assert.Equal(t, availability.Interval{Start: 600, Duration: 90}, got.Slot())
		require.Len(t, got.Services(), 1)
		assert.Equal(t, "Facial", got.Services()[0].Name)
		assert.Equal(t, serviceID, got.Services()[0].ServiceID)
		assert.Equal(t, int64(90000), got.Price().Amount())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		mock := newMockPool(t)
		repo := repository.NewBookingRepository(mock, discardLogger())

		mock.ExpectQuery("SELECT .* FROM bookings WHERE id").
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByID(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingRepository_Save(t *testing.T) {
	mock := newMockPool(t)
	repo := repository.NewBookingRepository(mock, discardLogger())
	b := newBooking(t)

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(b.ID(), "awaiting_payment", pgxmock.AnyArg(), b.UpdatedAt()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Save(context.Background(), b)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestBookingRepository_BookedIntervals(t *testing.T) {
	mock := newMockPool(t)
	repo := repository.NewBookingRepository(mock, discardLogger())
	providerID := uuid.New()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT start_min, duration_minutes FROM bookings").
		WithArgs(providerID, "Meera", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"start_min", "duration_minutes"}).
			AddRow(600, 60).
			AddRow(780, 90))

	got, err := repo.BookedIntervals(context.Background(), providerID, "Meera", date)
	require.NoError(t, err)
	assert.Equal(t, []availability.Interval{
		{Start: 600, Duration: 60},
		{Start: 780, Duration: 90},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_LockEmployeeDay(t *testing.T) {
	mock := newMockPool(t)
	repo := repository.NewBookingRepository(mock, discardLogger())
	providerID := uuid.New()
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs(providerID.String() + "|Meera|2026-03-14").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))

	require.NoError(t, repo.LockEmployeeDay(context.Background(), providerID, "Meera", date))
	assert.NoError(t, mock.ExpectationsWereMet())
}
