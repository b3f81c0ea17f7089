//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/money"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	ProviderID   uuid.UUID
	CustomerName string
	ProviderName string
	EmployeeName string
	Date         time.Time
	Start        availability.Minute
	Lines        []catalog.Line
	Status       booking.Status
	OrderID      string
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	price, _ := money.New(50000, "INR")
	return &BookingBuilder{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		ProviderID:   uuid.New(),
		CustomerName: "Asha Rao",
		ProviderName: "Glow Studio",
		EmployeeName: "Meera",
		Date:         time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC),
		Start:        600,
		Lines: []catalog.Line{
			{ServiceID: uuid.New(), Name: "Haircut", Style: "Layered", Price: price, DurationMinutes: 60},
		},
		Status:    booking.StatusAwaitingPayment,
		OrderID:   "pi_test_1",
		CreatedAt: time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithAddOn(name string, amount int64, minutes int) *BookingBuilder {
	price, _ := money.New(amount, "INR")
	b.Lines = append(b.Lines, catalog.Line{ServiceID: uuid.New(), Name: name, Price: price, DurationMinutes: minutes})
	return b
}

func (b *BookingBuilder) duration() int {
	total := 0
	for _, l := range b.Lines {
		total += l.DurationMinutes
	}
	return total
}

func (b *BookingBuilder) total() money.Money {
	sum := money.Zero("INR")
	for _, l := range b.Lines {
		sum, _ = sum.Add(l.Price)
	}
	return sum
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.Reconstruct(
		b.ID, b.CustomerID, b.ProviderID,
		b.CustomerName, b.EmployeeName,
		b.Date,
		availability.Interval{Start: b.Start, Duration: b.duration()},
		b.Lines,
		b.total(),
		b.Status,
		b.OrderID,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	slot := availability.Interval{Start: b.Start, Duration: b.duration()}
	v := &queries.BookingView{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		CustomerName:    b.CustomerName,
		ProviderID:      b.ProviderID,
		ProviderName:    b.ProviderName,
		EmployeeName:    b.EmployeeName,
		Date:            b.Date,
		TimeSlot:        slot.Start.String() + "-" + slot.End().String(),
		ServiceName:     b.Lines[0].Name,
		RelatedServices: []string{},
		DurationMinutes: slot.Duration,
		Amount:          b.total().Amount(),
		Currency:        "INR",
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
	for _, l := range b.Lines[1:] {
		v.RelatedServices = append(v.RelatedServices, l.Name)
	}
	if b.OrderID != "" {
		orderID := b.OrderID
		v.OrderID = &orderID
	}
	return v
}
