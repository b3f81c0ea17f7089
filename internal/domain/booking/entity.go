package booking

import (
	"errors"
	"strings"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrZeroDuration   = errors.New("booking duration must be greater than zero")
	ErrNoServices     = errors.New("booking must contain at least one service")
	ErrSlotOverlap    = errors.New("time slot overlaps an existing booking")
	ErrMissingOrderID = errors.New("order id is required")
)

type Booking struct {
	id           uuid.UUID
	customerID   uuid.UUID
	providerID   uuid.UUID
	customerName string
	employeeName string
	date         time.Time
	slot         availability.Interval
	services     []catalog.Line
	price        money.Money
	status       Status
	orderID      string
	createdAt    time.Time
	updatedAt    time.Time
}

type NewParams struct {
	CustomerID   uuid.UUID
	ProviderID   uuid.UUID
	CustomerName string
	EmployeeName string
	Date         time.Time
	Start        availability.Minute
	Services     []catalog.Line
	Booked       []availability.Interval
	Now          time.Time
}

// New creates a booking awaiting payment. Booked holds the employee's other intervals for Date.
func New(p NewParams) (*Booking, error) {
	if len(p.Services) == 0 {
		return nil, ErrNoServices
	}

	duration := 0
	total := money.Zero(p.Services[0].Price.Currency())
	for _, line := range p.Services {
		duration += line.DurationMinutes
		var err error
		if total, err = total.Add(line.Price); err != nil {
			return nil, err
		}
	}
	if duration <= 0 {
		return nil, ErrZeroDuration
	}

	slot := availability.Interval{Start: p.Start, Duration: duration}
	if !availability.IsAvailable(slot, p.Booked) {
		return nil, ErrSlotOverlap
	}

	y, m, d := p.Date.Date()
	return &Booking{
		id:           uuid.New(),
		customerID:   p.CustomerID,
		providerID:   p.ProviderID,
		customerName: strings.TrimSpace(p.CustomerName),
		employeeName: strings.TrimSpace(p.EmployeeName),
		date:         time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		slot:         slot,
		services:     append([]catalog.Line(nil), p.Services...),
		price:        total,
		status:       StatusAwaitingPayment,
		createdAt:    p.Now,
		updatedAt:    p.Now,
	}, nil
}

func Reconstruct(
	id, customerID, providerID uuid.UUID,
	customerName, employeeName string,
	date time.Time,
	slot availability.Interval,
	services []catalog.Line,
	price money.Money,
	status Status,
	orderID string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		customerID:   customerID,
		providerID:   providerID,
		customerName: customerName,
		employeeName: employeeName,
		date:         date,
		slot:         slot,
		services:     services,
		price:        price,
		status:       status,
		orderID:      orderID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) CustomerID() uuid.UUID       { return b.customerID }
func (b *Booking) ProviderID() uuid.UUID       { return b.providerID }
func (b *Booking) CustomerName() string        { return b.customerName }
func (b *Booking) EmployeeName() string        { return b.employeeName }
func (b *Booking) Date() time.Time             { return b.date }
func (b *Booking) Slot() availability.Interval { return b.slot }
func (b *Booking) Services() []catalog.Line    { return b.services }
func (b *Booking) Price() money.Money          { return b.price }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) OrderID() string             { return b.orderID }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
func (b *Booking) DurationMinutes() int        { return b.slot.Duration }

func (b *Booking) ServiceName() string {
	if len(b.services) == 0 {
		return ""
	}
	return b.services[0].Name
}

// RelatedServices are the add-ons booked together with the primary service.
func (b *Booking) RelatedServices() []string {
	if len(b.services) < 2 {
		return nil
	}
	names := make([]string, 0, len(b.services)-1)
	for _, l := range b.services[1:] {
		names = append(names, l.Name)
	}
	return names
}

// AttachOrder records the gateway order created for this booking.
func (b *Booking) AttachOrder(orderID string, now time.Time) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrMissingOrderID
	}
	if b.status == StatusCancelled {
		return ErrInvalidStatusTransition
	}
	if b.status == StatusPaymentFailed {
		if err := b.transition(StatusAwaitingPayment, now); err != nil {
			return err
		}
	}
	b.orderID = orderID
	b.updatedAt = now
	return nil
}

func (b *Booking) Confirm(now time.Time) error {
	if b.status == StatusConfirmed {
		return nil
	}
	return b.transition(StatusConfirmed, now)
}

// ConfirmLate confirms a booking whose payment succeeded after the booking had already
// released its slot. Booked holds the employee's other intervals for the booking's date;
// the booking is only confirmed if its slot is still free.
func (b *Booking) ConfirmLate(booked []availability.Interval, now time.Time) error {
	if b.status.HoldsSlot() {
		return ErrInvalidStatusTransition
	}
	if !availability.IsAvailable(b.slot, booked) {
		return ErrSlotOverlap
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

func (b *Booking) MarkPaymentFailed(now time.Time) error {
	if b.status == StatusPaymentFailed {
		return nil
	}
	return b.transition(StatusPaymentFailed, now)
}

func (b *Booking) Cancel(now time.Time) error {
	return b.transition(StatusCancelled, now)
}

func (b *Booking) transition(next Status, now time.Time) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	b.status = next
	b.updatedAt = now
	return nil
}
