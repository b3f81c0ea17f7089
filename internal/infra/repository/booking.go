package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/money"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, customer_id, provider_id, customer_name, employee_name, booking_date, start_min,
	duration_minutes, services, price_amount, currency, status, order_id, created_at, updated_at`

type BookingRepository struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewBookingRepository(dbtx db.DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{dbtx: dbtx, logger: logger}
}

// serviceLine is the JSONB element stored in bookings.services.
type serviceLine struct {
	ServiceID       uuid.UUID `json:"service_id"`
	Name            string    `json:"name"`
	Style           string    `json:"style,omitempty"`
	PriceAmount     int64     `json:"price_amount"`
	DurationMinutes int       `json:"duration_minutes"`
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	services, err := encodeLines(b.Services())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode booking services", err)
	}

	_, err = r.dbtx.Exec(ctx, `INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		b.ID(), b.CustomerID(), b.ProviderID(), b.CustomerName(), b.EmployeeName(),
		pgconv.DateToPgtype(b.Date()), int(b.Slot().Start), b.Slot().Duration, services,
		b.Price().Amount(), b.Price().Currency(), string(b.Status()), nullableString(b.OrderID()),
		b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.dbtx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) FindByOrderID(ctx context.Context, orderID string) (*booking.Booking, error) {
	row := r.dbtx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE order_id = $1`, orderID)
	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find booking by order id", err)
	}
	return b, nil
}

func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	tag, err := r.dbtx.Exec(ctx,
		`UPDATE bookings SET status = $2, order_id = $3, updated_at = $4 WHERE id = $1`,
		b.ID(), string(b.Status()), nullableString(b.OrderID()), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) BookedIntervals(ctx context.Context, providerID uuid.UUID, employee string, date time.Time) ([]availability.Interval, error) {
	rows, err := r.dbtx.Query(ctx, `SELECT start_min, duration_minutes FROM bookings
		WHERE provider_id = $1 AND employee_name = $2 AND booking_date = $3
		AND status IN ('awaiting_payment', 'confirmed')
		ORDER BY start_min`,
		providerID, employee, pgconv.DateToPgtype(date),
	)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to load booked intervals", err)
	}
	defer rows.Close()

	var out []availability.Interval
	for rows.Next() {
		var start, duration int
		if err := rows.Scan(&start, &duration); err != nil {
			return nil, infra.WrapPgErr(r.logger, "failed to scan booked interval", err)
		}
		out = append(out, availability.Interval{Start: availability.Minute(start), Duration: duration})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to iterate booked intervals", err)
	}
	return out, nil
}

func (r *BookingRepository) LockEmployeeDay(ctx context.Context, providerID uuid.UUID, employee string, date time.Time) error {
	key := fmt.Sprintf("%s|%s|%s", providerID, employee, date.Format(time.DateOnly))
	if _, err := r.dbtx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		return infra.WrapPgErr(r.logger, "failed to lock employee day", err)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, customerID, providerID uuid.UUID
		customerName, employeeName string
		date                       time.Time
		start, duration            int
		servicesJSON               []byte
		amount                     int64
		currency, status           string
		orderID                    *string
		createdAt, updatedAt       time.Time
	)
	if err := row.Scan(&id, &customerID, &providerID, &customerName, &employeeName, &date, &start,
		&duration, &servicesJSON, &amount, &currency, &status, &orderID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	price, err := money.New(amount, currency)
	if err != nil {
		return nil, err
	}
	lines, err := decodeLines(servicesJSON, currency)
	if err != nil {
		return nil, err
	}

	var order string
	if orderID != nil {
		order = *orderID
	}

	return booking.Reconstruct(
		id, customerID, providerID,
		customerName, employeeName,
		date,
		availability.Interval{Start: availability.Minute(start), Duration: duration},
		lines, price, booking.Status(status), order,
		createdAt, updatedAt,
	), nil
}

func encodeLines(lines []catalog.Line) ([]byte, error) {
	out := make([]serviceLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, serviceLine{
			ServiceID:       l.ServiceID,
			Name:            l.Name,
			Style:           l.Style,
			PriceAmount:     l.Price.Amount(),
			DurationMinutes: l.DurationMinutes,
		})
	}
	return json.Marshal(out)
}

func decodeLines(raw []byte, currency string) ([]catalog.Line, error) {
	var stored []serviceLine
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	lines := make([]catalog.Line, 0, len(stored))
	for _, s := range stored {
		price, err := money.New(s.PriceAmount, currency)
		if err != nil {
			return nil, err
		}
		lines = append(lines, catalog.Line{
			ServiceID:       s.ServiceID,
			Name:            s.Name,
			Style:           s.Style,
			Price:           price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return lines, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
