package readstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingViewSelect = `SELECT b.id, b.customer_id, b.customer_name, b.provider_id, p.name, b.employee_name,
	b.booking_date, b.start_min, b.duration_minutes, b.services, b.price_amount, b.currency, b.status,
	b.order_id, b.created_at
	FROM bookings b JOIN providers p ON p.id = b.provider_id`

const bookingFilter = `
	WHERE ($1::uuid IS NULL OR b.provider_id = $1)
	AND ($2::uuid IS NULL OR b.customer_id = $2)
	AND ($3::text = '' OR b.status = $3)
	AND ($4::text = '' OR b.customer_name ILIKE $4 OR b.employee_name ILIKE $4
		OR p.name ILIKE $4 OR b.services::text ILIKE $4)
	AND ($5::date IS NULL OR b.booking_date >= $5)
	AND ($6::date IS NULL OR b.booking_date <= $6)`

const revenueFilter = `
	WHERE b.status = 'confirmed'
	AND ($1::text = '' OR p.name ILIKE $1)
	AND ($2::date IS NULL OR b.booking_date >= $2)
	AND ($3::date IS NULL OR b.booking_date <= $3)
	GROUP BY p.id, p.name, b.currency`

type BookingReadStore struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewBookingReadStore(dbtx db.DBTX, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx, logger: logger}
}

func (r *BookingReadStore) List(ctx context.Context, f queries.BookingFilter, p queries.ListParams) ([]queries.BookingView, int, error) {
	args := []any{f.ProviderID, f.CustomerID, f.Status, containsPattern(p.Query), p.From, p.To}

	total, err := count(ctx, r.dbtx, r.logger,
		`SELECT count(*) FROM bookings b JOIN providers p ON p.id = b.provider_id`+bookingFilter, args...)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.dbtx.Query(ctx,
		bookingViewSelect+bookingFilter+` ORDER BY b.booking_date DESC, b.start_min DESC, b.id LIMIT $7 OFFSET $8`,
		append(args, p.PageSize, p.Offset())...)
	if err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to list bookings", err)
	}
	defer rows.Close()

	var out []queries.BookingView
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, 0, infra.WrapPgErr(r.logger, "failed to scan booking", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to iterate bookings", err)
	}
	return out, total, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v, err := scanBookingView(r.dbtx.QueryRow(ctx, bookingViewSelect+` WHERE b.id = $1`, id))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get booking view", err)
	}
	return &v, nil
}

func (r *BookingReadStore) FindByOrderID(ctx context.Context, orderID string) (*queries.BookingView, error) {
	v, err := scanBookingView(r.dbtx.QueryRow(ctx, bookingViewSelect+` WHERE b.order_id = $1`, orderID))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to get booking view by order id", err)
	}
	return &v, nil
}

func (r *BookingReadStore) Revenue(ctx context.Context, p queries.ListParams) ([]queries.RevenueRow, int, error) {
	args := []any{containsPattern(p.Query), p.From, p.To}

	total, err := count(ctx, r.dbtx, r.logger,
		`SELECT count(*) FROM (SELECT 1 FROM bookings b JOIN providers p ON p.id = b.provider_id`+revenueFilter+`) g`, args...)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.dbtx.Query(ctx, `SELECT p.id, p.name, count(*), sum(b.price_amount)::bigint, b.currency
		FROM bookings b JOIN providers p ON p.id = b.provider_id`+revenueFilter+`
		ORDER BY sum(b.price_amount) DESC, p.name LIMIT $4 OFFSET $5`,
		append(args, p.PageSize, p.Offset())...)
	if err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to aggregate revenue", err)
	}
	defer rows.Close()

	var out []queries.RevenueRow
	for rows.Next() {
		var v queries.RevenueRow
		if err := rows.Scan(&v.ProviderID, &v.ProviderName, &v.Bookings, &v.Amount, &v.Currency); err != nil {
			return nil, 0, infra.WrapPgErr(r.logger, "failed to scan revenue row", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapPgErr(r.logger, "failed to iterate revenue rows", err)
	}
	return out, total, nil
}

func scanBookingView(row pgx.Row) (queries.BookingView, error) {
	var (
		v               queries.BookingView
		start, duration int
		services        []byte
	)
	if err := row.Scan(&v.ID, &v.CustomerID, &v.CustomerName, &v.ProviderID, &v.ProviderName, &v.EmployeeName,
		&v.Date, &start, &duration, &services, &v.Amount, &v.Currency, &v.Status,
		&v.OrderID, &v.CreatedAt); err != nil {
		return queries.BookingView{}, err
	}

	var lines []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(services, &lines); err != nil {
		return queries.BookingView{}, err
	}
	v.RelatedServices = []string{}
	for i, l := range lines {
		if i == 0 {
			v.ServiceName = l.Name
			continue
		}
		v.RelatedServices = append(v.RelatedServices, l.Name)
	}

	v.DurationMinutes = duration
	v.TimeSlot = availability.Slot{
		Start: availability.Minute(start),
		End:   availability.Minute(start + duration),
	}.Label()
	return v, nil
}
