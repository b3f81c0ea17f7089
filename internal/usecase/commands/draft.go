package commands

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/payment"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type DraftLineView struct {
	ServiceID       uuid.UUID `json:"service_id"`
	Name            string    `json:"name"`
	Style           string    `json:"style,omitempty"`
	Amount          int64     `json:"amount"`
	DurationMinutes int       `json:"duration_minutes"`
}

type DraftView struct {
	ID              uuid.UUID       `json:"id"`
	ProviderID      uuid.UUID       `json:"provider_id"`
	State           string          `json:"state"`
	CustomerName    string          `json:"customer_name"`
	Service         *DraftLineView  `json:"service"`
	AddOns          []DraftLineView `json:"add_ons"`
	Date            *string         `json:"date"`
	Employee        string          `json:"employee"`
	TimeSlot        string          `json:"time_slot"`
	TermsVersion    string          `json:"terms_version"`
	DurationMinutes int             `json:"duration_minutes"`
	Amount          int64           `json:"amount"`
	Currency        string          `json:"currency"`
}

type CheckoutResult struct {
	BookingID    uuid.UUID
	OrderID      string
	ClientSecret string
	Amount       int64
	Currency     string
}

// DraftCommands drives the booking form. Every call is scoped to the customer who created the draft.
type DraftCommands interface {
	Create(ctx context.Context, customerID, providerID uuid.UUID) (*DraftView, error)
	Get(ctx context.Context, customerID, draftID uuid.UUID) (*DraftView, error)
	SetCustomer(ctx context.Context, customerID, draftID uuid.UUID, name string) (*DraftView, error)
	SelectService(ctx context.Context, customerID, draftID, serviceID uuid.UUID) (*DraftView, error)
	SelectDate(ctx context.Context, customerID, draftID uuid.UUID, date time.Time) (*DraftView, error)
	SelectEmployee(ctx context.Context, customerID, draftID uuid.UUID, name string) (*DraftView, error)
	SelectTime(ctx context.Context, customerID, draftID uuid.UUID, label string) (*DraftView, error)
	ToggleAddOn(ctx context.Context, customerID, draftID, serviceID uuid.UUID) (*DraftView, error)
	AcceptTerms(ctx context.Context, customerID, draftID uuid.UUID, version string) (*DraftView, error)
	Checkout(ctx context.Context, customerID, draftID uuid.UUID) (*CheckoutResult, error)
}

type draftCommandsImpl struct {
	uow      shared.UnitOfWork
	drafts   DraftStore
	gateway  PaymentGateway
	queue    TaskQueue
	clock    clock.Clock
	loc      *time.Location
	currency string
	holdTTL  time.Duration
}

// NewDraftCommands uses cfg for the draft currency and for how long an unpaid checkout
// holds its slot.
func NewDraftCommands(uow shared.UnitOfWork, drafts DraftStore, gateway PaymentGateway, queue TaskQueue, clk clock.Clock, loc *time.Location, cfg config.PaymentConfig) DraftCommands {
	return &draftCommandsImpl{
		uow:      uow,
		drafts:   drafts,
		gateway:  gateway,
		queue:    queue,
		clock:    clk,
		loc:      loc,
		currency: cfg.Currency,
		holdTTL:  cfg.HoldTTL,
	}
}

func (c *draftCommandsImpl) Create(ctx context.Context, customerID, providerID uuid.UUID) (*DraftView, error) {
	p, err := c.uow.Reads().Providers().FindByID(ctx, providerID)
	if err != nil {
		return nil, mapNotFound(err, ErrProviderNotFound)
	}
	if !p.IsBookable() {
		return nil, ErrProviderNotBookable
	}

	d := booking.NewDraft(providerID, customerID, c.currency, c.clock.Now())
	if err := c.drafts.Save(ctx, d.Snapshot()); err != nil {
		return nil, err
	}
	return newDraftView(d), nil
}

func (c *draftCommandsImpl) Get(ctx context.Context, customerID, draftID uuid.UUID) (*DraftView, error) {
	d, err := c.load(ctx, customerID, draftID)
	if err != nil {
		return nil, err
	}
	return newDraftView(d), nil
}

func (c *draftCommandsImpl) SetCustomer(ctx context.Context, customerID, draftID uuid.UUID, name string) (*DraftView, error) {
	return c.update(ctx, customerID, draftID, func(d *booking.Draft) error {
		return d.SetCustomerName(name)
	})
}

func (c *draftCommandsImpl) SelectService(ctx context.Context, customerID, draftID, serviceID uuid.UUID) (*DraftView, error) {
	return c.update(ctx, customerID, draftID, func(d *booking.Draft) error {
		line, err := c.serviceLine(ctx, d, serviceID)
		if err != nil {
			return err
		}
		booked, err := c.booked(ctx, d)
		if err != nil {
			return err
		}
		return d.SelectService(line, booked)
	})
}

func (c *draftCommandsImpl) SelectDate(ctx context.Context, customerID, draftID uuid.UUID, date time.Time) (*DraftView, error) {
	y, m, day := date.Date()
	local := time.Date(y, m, day, 0, 0, 0, 0, c.loc)
	if local.Before(c.today()) {
		return nil, ErrDateInPast
	}
	return c.update(ctx, customerID, draftID, func(d *booking.Draft) error {
		d.SelectDate(local)
		return nil
	})
}

func (c *draftCommandsImpl) SelectEmployee(ctx context.Context, customerID, draftID uuid.UUID, name string) (*DraftView, error) {
	return c.update(ctx, customerID, draftID, func(d *booking.Draft) error {
		names, err := c.employeeNames(ctx, d.ProviderID())
		if err != nil {
			return err
		}
		if err := d.SelectEmployee(name); err != nil {
			return err
		}
		if !slices.Contains(names, d.Employee()) {
			return ErrEmployeeNotFound
		}
		return nil
	})
}

func (c *draftCommandsImpl) SelectTime(ctx context.Context, customerID, draftID uuid.UUID, label string) (*DraftView, error) {
	return c.update(ctx, customerID, draftID, func(d *booking.Draft) error {
		if d.Date() == nil {
			return ErrDateRequired
		}
		offered, err := c.offeredLabel(ctx, d, label)
		if err != nil {
			return err
		}
		booked, err := c.booked(ctx, d)
		if err != nil {
			return err
		}
		return d.SelectTime(offered, booked)
	})
}

func (c *draftCommandsImpl) ToggleAddOn(ctx context.Context, customerID, draftID, serviceID uuid.UUID) (*DraftView, error) {
	return c.update(ctx, customerID, draftID, func(d *booking.Draft) error {
		line, err := c.serviceLine(ctx, d, serviceID)
		if err != nil {
			return err
		}
		booked, err := c.booked(ctx, d)
		if err != nil {
			return err
		}
		return d.ToggleAddOn(line, booked)
	})
}

func (c *draftCommandsImpl) AcceptTerms(ctx context.Context, customerID, draftID uuid.UUID, version string) (*DraftView, error) {
	current, err := c.currentTerms(ctx)
	if err != nil {
		return nil, err
	}
	if version != current {
		return nil, ErrTermsOutdated
	}
	return c.update(ctx, customerID, draftID, func(d *booking.Draft) error {
		return d.AcceptTerms(version)
	})
}

// Checkout validates the draft, holds the slot with a booking awaiting payment and opens a
// gateway order for it. Calling it again after a failed or abandoned payment replaces the
// previous booking and cancels its order. The hold is released after holdTTL unless the
// booking is paid.
func (c *draftCommandsImpl) Checkout(ctx context.Context, customerID, draftID uuid.UUID) (*CheckoutResult, error) {
	d, err := c.load(ctx, customerID, draftID)
	if err != nil {
		return nil, err
	}
	names, err := c.employeeNames(ctx, d.ProviderID())
	if err != nil {
		return nil, err
	}
	termsVersion, err := c.currentTerms(ctx)
	if err != nil {
		return nil, err
	}
	previous, linked, err := c.drafts.LinkedBooking(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if linked {
		if err := c.cancelPreviousOrder(ctx, previous); err != nil {
			return nil, err
		}
	}

	in := booking.ValidateInput{
		EmployeesExist: len(names) > 0,
		TermsVersion:   termsVersion,
		Today:          c.today(),
	}
	if d.Date() == nil {
		// reports the first missing field, date at the latest
		return nil, d.Validate(in)
	}
	date := *d.Date()

	var b *booking.Booking
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().LockEmployeeDay(ctx, d.ProviderID(), d.Employee(), date); err != nil {
			return err
		}
		if linked {
			if err := c.releasePrevious(ctx, tx, previous); err != nil {
				return err
			}
		}
		booked, err := tx.Bookings().BookedIntervals(ctx, d.ProviderID(), d.Employee(), date)
		if err != nil {
			return err
		}
		in.Booked = booked
		if err := d.Validate(in); err != nil {
			return err
		}
		out, err := d.Checkout()
		if err != nil {
			return err
		}
		nb, err := booking.New(booking.NewParams{
			CustomerID:   out.CustomerID,
			ProviderID:   out.ProviderID,
			CustomerName: out.CustomerName,
			EmployeeName: out.EmployeeName,
			Date:         out.Date,
			Start:        out.Start,
			Services:     out.Services,
			Booked:       booked,
			Now:          c.clock.Now(),
		})
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, nb); err != nil {
			return err
		}
		b = nb
		return nil
	})
	if err != nil {
		if errors.Is(err, booking.ErrSlotOverlap) || infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if err := c.queue.EnqueueHoldExpiry(ctx, b.ID(), c.holdTTL); err != nil {
		c.abandon(ctx, b.ID(), "")
		return nil, err
	}
	if err := c.drafts.LinkBooking(ctx, draftID, b.ID()); err != nil {
		return nil, err
	}
	if err := c.drafts.Save(ctx, d.Snapshot()); err != nil {
		return nil, err
	}

	order, err := c.gateway.CreateOrder(ctx, OrderRequest{
		BookingID:   b.ID(),
		CustomerID:  customerID,
		Amount:      b.Price(),
		Description: b.ServiceName(),
	})
	if err != nil {
		c.abandon(ctx, b.ID(), "")
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		held, err := tx.Bookings().FindByID(ctx, b.ID())
		if err != nil {
			return err
		}
		if err := held.AttachOrder(order.OrderID, c.clock.Now()); err != nil {
			return err
		}
		return tx.Bookings().Save(ctx, held)
	})
	if err != nil {
		c.abandon(ctx, b.ID(), order.OrderID)
		return nil, err
	}

	return &CheckoutResult{
		BookingID:    b.ID(),
		OrderID:      order.OrderID,
		ClientSecret: order.ClientSecret,
		Amount:       b.Price().Amount(),
		Currency:     b.Price().Currency(),
	}, nil
}

// releasePrevious cancels the booking left by an earlier checkout of the same draft.
func (c *draftCommandsImpl) releasePrevious(ctx context.Context, tx shared.Tx, id uuid.UUID) error {
	prev, err := tx.Bookings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	switch prev.Status() {
	case booking.StatusConfirmed:
		return ErrDraftAlreadyPaid
	case booking.StatusCancelled:
		return nil
	}
	if err := prev.Cancel(c.clock.Now()); err != nil {
		return err
	}
	return tx.Bookings().Save(ctx, prev)
}

// cancelPreviousOrder closes the gateway order of the booking an earlier checkout of the
// same draft left behind, so it cannot be paid once releasePrevious frees its slot.
func (c *draftCommandsImpl) cancelPreviousOrder(ctx context.Context, id uuid.UUID) error {
	prev, err := c.uow.Reads().Bookings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	switch prev.Status() {
	case booking.StatusConfirmed:
		return ErrDraftAlreadyPaid
	case booking.StatusCancelled:
		return nil
	}
	if prev.OrderID() == "" {
		return nil
	}
	err = c.gateway.CancelOrder(ctx, prev.OrderID())
	if errors.Is(err, payment.ErrOrderNotCancellable) {
		// the customer has to verify that payment before starting another one
		return ErrPaymentProcessing
	}
	if err != nil {
		return errs.Mark(err, ErrGatewayUnavailable)
	}
	return nil
}

// abandon frees the slot of a booking whose checkout could not be completed and cancels
// its order when one was opened.
func (c *draftCommandsImpl) abandon(ctx context.Context, bookingID uuid.UUID, orderID string) {
	ctx = context.WithoutCancel(ctx)
	if orderID != "" {
		if err := c.gateway.CancelOrder(ctx, orderID); err != nil {
			slog.Error("failed to cancel order of abandoned booking", "booking_id", bookingID, "order_id", orderID, "error", err.Error())
		}
	}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := b.Cancel(c.clock.Now()); err != nil {
			return err
		}
		return tx.Bookings().Save(ctx, b)
	})
	if err != nil {
		slog.Error("failed to cancel abandoned booking", "booking_id", bookingID, "error", err.Error())
	}
}

func (c *draftCommandsImpl) load(ctx context.Context, customerID, draftID uuid.UUID) (*booking.Draft, error) {
	snap, err := c.drafts.Load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	// other customers' drafts are reported as missing
	if snap.CustomerID != customerID {
		return nil, ErrDraftNotFound
	}
	return booking.RestoreDraft(snap)
}

// update applies fn to the stored draft and saves it only when fn succeeds.
func (c *draftCommandsImpl) update(ctx context.Context, customerID, draftID uuid.UUID, fn func(d *booking.Draft) error) (*DraftView, error) {
	d, err := c.load(ctx, customerID, draftID)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	if err := c.drafts.Save(ctx, d.Snapshot()); err != nil {
		return nil, err
	}
	return newDraftView(d), nil
}

func (c *draftCommandsImpl) serviceLine(ctx context.Context, d *booking.Draft, serviceID uuid.UUID) (catalog.Line, error) {
	s, err := c.uow.Reads().Services().FindByID(ctx, serviceID)
	if err != nil {
		return catalog.Line{}, mapNotFound(err, ErrServiceNotFound)
	}
	if s.ProviderID() != d.ProviderID() {
		return catalog.Line{}, ErrServiceNotFound
	}
	return s.Line(), nil
}

// booked returns nil until a date is chosen; without a date nothing can conflict yet.
func (c *draftCommandsImpl) booked(ctx context.Context, d *booking.Draft) ([]availability.Interval, error) {
	if d.Date() == nil {
		return nil, nil
	}
	return c.uow.Reads().Bookings().BookedIntervals(ctx, d.ProviderID(), d.Employee(), *d.Date())
}

// offeredLabel returns the canonical label of the offered slot matching label.
func (c *draftCommandsImpl) offeredLabel(ctx context.Context, d *booking.Draft, label string) (string, error) {
	start, end, err := availability.ParseSlotLabel(label)
	if err != nil {
		return "", err
	}
	p, err := c.uow.Reads().Providers().FindByID(ctx, d.ProviderID())
	if err != nil {
		return "", mapNotFound(err, ErrProviderNotFound)
	}
	hours := p.Hours()
	for s := range availability.Offerable(hours.Open, hours.Close, *d.Date(), c.clock.Now().In(c.loc)) {
		if s.Start == start && s.End == end {
			return s.Label(), nil
		}
	}
	return "", ErrSlotNotOffered
}

func (c *draftCommandsImpl) employeeNames(ctx context.Context, providerID uuid.UUID) ([]string, error) {
	employees, err := c.uow.Reads().Employees().ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(employees))
	for _, e := range employees {
		names = append(names, e.Name())
	}
	return names, nil
}

func (c *draftCommandsImpl) currentTerms(ctx context.Context) (string, error) {
	doc, err := c.uow.Reads().Terms().Current(ctx)
	if err != nil {
		return "", mapNotFound(err, ErrTermsNotPublished)
	}
	return doc.Version, nil
}

func (c *draftCommandsImpl) today() time.Time {
	now := c.clock.Now().In(c.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
}

func newDraftView(d *booking.Draft) *DraftView {
	v := &DraftView{
		ID:              d.ID(),
		ProviderID:      d.ProviderID(),
		State:           d.State().String(),
		CustomerName:    d.CustomerName(),
		AddOns:          []DraftLineView{},
		Employee:        d.Employee(),
		TimeSlot:        d.TimeSlot(),
		TermsVersion:    d.TermsVersion(),
		DurationMinutes: d.TotalDuration(),
		Amount:          d.TotalPrice().Amount(),
		Currency:        d.Currency(),
	}
	if s := d.Service(); s != nil {
		lv := lineView(*s)
		v.Service = &lv
	}
	for _, a := range d.AddOns() {
		v.AddOns = append(v.AddOns, lineView(a))
	}
	if date := d.Date(); date != nil {
		formatted := date.Format(time.DateOnly)
		v.Date = &formatted
	}
	return v
}

func lineView(l catalog.Line) DraftLineView {
	return DraftLineView{
		ServiceID:       l.ServiceID,
		Name:            l.Name,
		Style:           l.Style,
		Amount:          l.Price.Amount(),
		DurationMinutes: l.DurationMinutes,
	}
}

// mapNotFound replaces a repository not-found error with the usecase sentinel.
func mapNotFound(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}
