//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/payment"
	"salon-booking/internal/domain/provider"
	"salon-booking/internal/domain/terms"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/tests/common/builder"
	commandsmock "salon-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var draftPayment = config.PaymentConfig{Currency: "INR", HoldTTL: 30 * time.Minute}

type draftEnv struct {
	*fixture
	store    *memDraftStore
	gateway  *commandsmock.MockPaymentGateway
	queue    *commandsmock.MockTaskQueue
	cmds     commands.DraftCommands
	provider *provider.Provider
	haircut  *builder.ServiceBuilder
	color    *builder.ServiceBuilder
	customer uuid.UUID
	date     time.Time
}

func newDraftEnv(t *testing.T) *draftEnv {
	f := newFixture(t)
	e := &draftEnv{
		fixture:  f,
		store:    newMemDraftStore(),
		gateway:  commandsmock.NewMockPaymentGateway(f.ctrl),
		queue:    commandsmock.NewMockTaskQueue(f.ctrl),
		provider: builder.NewProviderBuilder().BuildDomain(),
		customer: uuid.New(),
		date:     time.Date(2026, 5, 5, 0, 0, 0, 0, ist),
	}
	e.haircut = builder.NewServiceBuilder(e.provider.ID())
	e.color = builder.NewServiceBuilder(e.provider.ID()).With(func(s *builder.ServiceBuilder) {
		s.Name, s.Style, s.Amount, s.DurationMinutes = "Hair colour", "", 120000, 90
	})
	e.cmds = commands.NewDraftCommands(f.uow, e.store, e.gateway, e.queue, f.clock, ist, draftPayment)

	f.providers.EXPECT().FindByID(gomock.Any(), e.provider.ID()).Return(e.provider, nil).AnyTimes()
	f.services.EXPECT().FindByID(gomock.Any(), e.haircut.ID).Return(e.haircut.BuildDomain(), nil).AnyTimes()
	f.services.EXPECT().FindByID(gomock.Any(), e.color.ID).Return(e.color.BuildDomain(), nil).AnyTimes()
	f.employees.EXPECT().ListByProvider(gomock.Any(), e.provider.ID()).Return(nil, nil).AnyTimes()
	f.terms.EXPECT().Current(gomock.Any()).Return(terms.Document{Version: "v1", Body: "..."}, nil).AnyTimes()
	return e
}

// expectHold expects the hold expiry of the booking created by the next checkout.
func (e *draftEnv) expectHold() {
	e.queue.EXPECT().EnqueueHoldExpiry(gomock.Any(), gomock.Any(), 30*time.Minute).Return(nil)
}

func (e *draftEnv) expectBooked(intervals ...availability.Interval) {
	e.bookings.EXPECT().BookedIntervals(gomock.Any(), e.provider.ID(), "", gomock.Any()).Return(intervals, nil).AnyTimes()
}

// readyDraft walks a draft through every form step.
func (e *draftEnv) readyDraft(t *testing.T) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	d, err := e.cmds.Create(ctx, e.customer, e.provider.ID())
	require.NoError(t, err)
	_, err = e.cmds.SetCustomer(ctx, e.customer, d.ID, "Asha Rao")
	require.NoError(t, err)
	_, err = e.cmds.SelectService(ctx, e.customer, d.ID, e.haircut.ID)
	require.NoError(t, err)
	_, err = e.cmds.SelectDate(ctx, e.customer, d.ID, e.date)
	require.NoError(t, err)
	_, err = e.cmds.SelectTime(ctx, e.customer, d.ID, "10:00-11:00")
	require.NoError(t, err)
	_, err = e.cmds.AcceptTerms(ctx, e.customer, d.ID, "v1")
	require.NoError(t, err)
	return d.ID
}

func TestDraftCreate(t *testing.T) {
	t.Run("pending provider is not bookable", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewProviderBuilder().Pending().BuildDomain()
		f.providers.EXPECT().FindByID(gomock.Any(), p.ID()).Return(p, nil)
		cmds := commands.NewDraftCommands(f.uow, newMemDraftStore(), nil, nil, f.clock, ist, draftPayment)

		_, err := cmds.Create(context.Background(), uuid.New(), p.ID())
		require.ErrorIs(t, err, commands.ErrProviderNotBookable)
	})

	t.Run("unknown provider", func(t *testing.T) {
		f := newFixture(t)
		f.providers.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})
		cmds := commands.NewDraftCommands(f.uow, newMemDraftStore(), nil, nil, f.clock, ist, draftPayment)

		_, err := cmds.Create(context.Background(), uuid.New(), uuid.New())
		require.ErrorIs(t, err, commands.ErrProviderNotFound)
	})
}

func TestDraftForm(t *testing.T) {
	ctx := context.Background()

	t.Run("drafts are private to their customer", func(t *testing.T) {
		e := newDraftEnv(t)
		d, err := e.cmds.Create(ctx, e.customer, e.provider.ID())
		require.NoError(t, err)

		_, err = e.cmds.Get(ctx, uuid.New(), d.ID)
		require.ErrorIs(t, err, commands.ErrDraftNotFound)
	})

	t.Run("date change clears the chosen slot", func(t *testing.T) {
		e := newDraftEnv(t)
		e.expectBooked()
		id := e.readyDraft(t)

		v, err := e.cmds.SelectDate(ctx, e.customer, id, e.date.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Empty(t, v.TimeSlot)
		require.NotNil(t, v.Date)
		assert.Equal(t, "2026-05-06", *v.Date)
	})

	t.Run("past date", func(t *testing.T) {
		e := newDraftEnv(t)
		d, err := e.cmds.Create(ctx, e.customer, e.provider.ID())
		require.NoError(t, err)

		_, err = e.cmds.SelectDate(ctx, e.customer, d.ID, e.date.AddDate(0, 0, -2))
		require.ErrorIs(t, err, commands.ErrDateInPast)
	})

	t.Run("time before date", func(t *testing.T) {
		e := newDraftEnv(t)
		d, err := e.cmds.Create(ctx, e.customer, e.provider.ID())
		require.NoError(t, err)

		_, err = e.cmds.SelectTime(ctx, e.customer, d.ID, "10:00-11:00")
		require.ErrorIs(t, err, commands.ErrDateRequired)
	})

	t.Run("slot outside opening hours", func(t *testing.T) {
		e := newDraftEnv(t)
		d, err := e.cmds.Create(ctx, e.customer, e.provider.ID())
		require.NoError(t, err)
		_, err = e.cmds.SelectDate(ctx, e.customer, d.ID, e.date)
		require.NoError(t, err)

		_, err = e.cmds.SelectTime(ctx, e.customer, d.ID, "20:00-21:00")
		require.ErrorIs(t, err, commands.ErrSlotNotOffered)
	})

	t.Run("slot label is normalized", func(t *testing.T) {
		e := newDraftEnv(t)
		e.expectBooked()
		d, err := e.cmds.Create(ctx, e.customer, e.provider.ID())
		require.NoError(t, err)
		_, err = e.cmds.SelectDate(ctx, e.customer, d.ID, e.date)
		require.NoError(t, err)

		v, err := e.cmds.SelectTime(ctx, e.customer, d.ID, "9:00-10:00")
		require.NoError(t, err)
		assert.Equal(t, "09:00-10:00", v.TimeSlot)
	})

	t.Run("rejected add-on leaves the draft unchanged", func(t *testing.T) {
		e := newDraftEnv(t)
		// 11:00 is taken, so a 90 minute add-on cannot follow a 10:00 haircut
		e.expectBooked(availability.Interval{Start: 660, Duration: 60})
		id := e.readyDraft(t)
		before, err := e.cmds.Get(ctx, e.customer, id)
		require.NoError(t, err)

		_, err = e.cmds.ToggleAddOn(ctx, e.customer, id, e.color.ID)
		require.ErrorIs(t, err, booking.ErrAddOnDoesNotFit)

		after, err := e.cmds.Get(ctx, e.customer, id)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("add-on toggles price and duration", func(t *testing.T) {
		e := newDraftEnv(t)
		e.expectBooked()
		id := e.readyDraft(t)

		v, err := e.cmds.ToggleAddOn(ctx, e.customer, id, e.color.ID)
		require.NoError(t, err)
		assert.Equal(t, 150, v.DurationMinutes)
		assert.Equal(t, int64(170000), v.Amount)
		require.Len(t, v.AddOns, 1)

		v, err = e.cmds.ToggleAddOn(ctx, e.customer, id, e.color.ID)
		require.NoError(t, err)
		assert.Equal(t, 60, v.DurationMinutes)
		assert.Empty(t, v.AddOns)
	})

	t.Run("service of another provider", func(t *testing.T) {
		e := newDraftEnv(t)
		other := builder.NewServiceBuilder(uuid.New())
		e.services.EXPECT().FindByID(gomock.Any(), other.ID).Return(other.BuildDomain(), nil)
		d, err := e.cmds.Create(ctx, e.customer, e.provider.ID())
		require.NoError(t, err)

		_, err = e.cmds.SelectService(ctx, e.customer, d.ID, other.ID)
		require.ErrorIs(t, err, commands.ErrServiceNotFound)
	})

	t.Run("outdated terms", func(t *testing.T) {
		e := newDraftEnv(t)
		d, err := e.cmds.Create(ctx, e.customer, e.provider.ID())
		require.NoError(t, err)

		_, err = e.cmds.AcceptTerms(ctx, e.customer, d.ID, "v0")
		require.ErrorIs(t, err, commands.ErrTermsOutdated)
	})

	t.Run("unknown employee", func(t *testing.T) {
		e := newDraftEnv(t)
		d, err := e.cmds.Create(ctx, e.customer, e.provider.ID())
		require.NoError(t, err)

		_, err = e.cmds.SelectEmployee(ctx, e.customer, d.ID, "Meera")
		require.ErrorIs(t, err, commands.ErrEmployeeNotFound)
	})
}

func TestDraftCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("holds the slot and opens an order", func(t *testing.T) {
		e := newDraftEnv(t)
		e.expectBooked()
		id := e.readyDraft(t)

		var held *booking.Booking
		e.bookings.EXPECT().LockEmployeeDay(gomock.Any(), e.provider.ID(), "", gomock.Any()).Return(nil)
		e.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				held = b
				return nil
			})
		e.queue.EXPECT().EnqueueHoldExpiry(gomock.Any(), gomock.Any(), 30*time.Minute).
			DoAndReturn(func(_ context.Context, id uuid.UUID, _ time.Duration) error {
				assert.Equal(t, held.ID(), id)
				return nil
			})
		e.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.OrderRequest) (payment.Order, error) {
				assert.Equal(t, held.ID(), req.BookingID)
				assert.Equal(t, e.customer, req.CustomerID)
				assert.Equal(t, int64(50000), req.Amount.Amount())
				return payment.Order{OrderID: "pi_1", ClientSecret: "secret_1", Amount: req.Amount}, nil
			})
		e.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, uuid.UUID) (*booking.Booking, error) { return held, nil })
		e.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				assert.Equal(t, "pi_1", b.OrderID())
				return nil
			})

		res, err := e.cmds.Checkout(ctx, e.customer, id)
		require.NoError(t, err)
		assert.Equal(t, "pi_1", res.OrderID)
		assert.Equal(t, "secret_1", res.ClientSecret)
		assert.Equal(t, int64(50000), res.Amount)
		assert.Equal(t, "INR", res.Currency)
		assert.Equal(t, booking.StatusAwaitingPayment, held.Status())
		assert.Equal(t, availability.Minute(600), held.Slot().Start)

		linked, ok, err := e.store.LinkedBooking(ctx, id)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, held.ID(), linked)

		v, err := e.cmds.Get(ctx, e.customer, id)
		require.NoError(t, err)
		assert.Equal(t, booking.StateReadyForPayment.String(), v.State)
	})

	t.Run("reports the first invalid field", func(t *testing.T) {
		e := newDraftEnv(t)
		e.expectBooked()
		d, err := e.cmds.Create(ctx, e.customer, e.provider.ID())
		require.NoError(t, err)
		_, err = e.cmds.SelectDate(ctx, e.customer, d.ID, e.date)
		require.NoError(t, err)
		e.bookings.EXPECT().LockEmployeeDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err = e.cmds.Checkout(ctx, e.customer, d.ID)
		var verr *booking.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, booking.FieldName, verr.Field)
	})

	t.Run("missing date is reported without a transaction", func(t *testing.T) {
		e := newDraftEnv(t)
		d, err := e.cmds.Create(ctx, e.customer, e.provider.ID())
		require.NoError(t, err)
		_, err = e.cmds.SetCustomer(ctx, e.customer, d.ID, "Asha Rao")
		require.NoError(t, err)

		_, err = e.cmds.Checkout(ctx, e.customer, d.ID)
		var verr *booking.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, booking.FieldDate, verr.Field)
	})

	t.Run("slot taken concurrently", func(t *testing.T) {
		e := newDraftEnv(t)
		e.expectBooked()
		id := e.readyDraft(t)
		e.bookings.EXPECT().LockEmployeeDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		e.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(infra.RepositoryError{Kind: infra.KindConflict})

		_, err := e.cmds.Checkout(ctx, e.customer, id)
		require.ErrorIs(t, err, commands.ErrSlotTaken)
	})

	t.Run("gateway failure releases the slot", func(t *testing.T) {
		e := newDraftEnv(t)
		e.expectBooked()
		id := e.readyDraft(t)

		var held *booking.Booking
		e.bookings.EXPECT().LockEmployeeDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		e.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				held = b
				return nil
			})
		e.expectHold()
		e.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(payment.Order{}, errors.New("stripe down"))
		e.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, uuid.UUID) (*booking.Booking, error) { return held, nil })
		e.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				assert.Equal(t, booking.StatusCancelled, b.Status())
				return nil
			})

		_, err := e.cmds.Checkout(ctx, e.customer, id)
		require.True(t, errs.Is(err, commands.ErrGatewayUnavailable), "got %v", err)
	})

	t.Run("retry replaces the unpaid booking", func(t *testing.T) {
		e := newDraftEnv(t)
		e.expectBooked()
		id := e.readyDraft(t)
		previous := builder.NewBookingBuilder().WithStatus(booking.StatusPaymentFailed).BuildDomain()
		require.NoError(t, e.store.LinkBooking(ctx, id, previous.ID()))

		var saved []booking.Status
		var held *booking.Booking
		e.bookings.EXPECT().LockEmployeeDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		e.bookings.EXPECT().FindByID(gomock.Any(), previous.ID()).Return(previous, nil).Times(2)
		cancelled := e.gateway.EXPECT().CancelOrder(gomock.Any(), previous.OrderID()).Return(nil)
		e.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				held = b
				return nil
			}).After(cancelled)
		e.expectHold()
		e.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(payment.Order{OrderID: "pi_2"}, nil)
		e.bookings.EXPECT().FindByID(gomock.Any(), gomock.Not(previous.ID())).
			DoAndReturn(func(context.Context, uuid.UUID) (*booking.Booking, error) { return held, nil })
		e.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				saved = append(saved, b.Status())
				return nil
			}).Times(2)

		res, err := e.cmds.Checkout(ctx, e.customer, id)
		require.NoError(t, err)
		assert.Equal(t, "pi_2", res.OrderID)
		assert.Equal(t, []booking.Status{booking.StatusCancelled, booking.StatusAwaitingPayment}, saved)
	})

	t.Run("paid draft cannot be checked out again", func(t *testing.T) {
		e := newDraftEnv(t)
		e.expectBooked()
		id := e.readyDraft(t)
		paid := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()
		require.NoError(t, e.store.LinkBooking(ctx, id, paid.ID()))
		e.bookings.EXPECT().FindByID(gomock.Any(), paid.ID()).Return(paid, nil)

		_, err := e.cmds.Checkout(ctx, e.customer, id)
		require.ErrorIs(t, err, commands.ErrDraftAlreadyPaid)
	})

	t.Run("previous order still being paid blocks the retry", func(t *testing.T) {
		e := newDraftEnv(t)
		e.expectBooked()
		id := e.readyDraft(t)
		previous := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, e.store.LinkBooking(ctx, id, previous.ID()))
		e.bookings.EXPECT().FindByID(gomock.Any(), previous.ID()).Return(previous, nil)
		e.gateway.EXPECT().CancelOrder(gomock.Any(), previous.OrderID()).Return(payment.ErrOrderNotCancellable)

		_, err := e.cmds.Checkout(ctx, e.customer, id)
		require.ErrorIs(t, err, commands.ErrPaymentProcessing)
	})

	t.Run("gateway down while cancelling the previous order", func(t *testing.T) {
		e := newDraftEnv(t)
		e.expectBooked()
		id := e.readyDraft(t)
		previous := builder.NewBookingBuilder().WithStatus(booking.StatusPaymentFailed).BuildDomain()
		require.NoError(t, e.store.LinkBooking(ctx, id, previous.ID()))
		e.bookings.EXPECT().FindByID(gomock.Any(), previous.ID()).Return(previous, nil)
		e.gateway.EXPECT().CancelOrder(gomock.Any(), previous.OrderID()).Return(errors.New("stripe down"))

		_, err := e.cmds.Checkout(ctx, e.customer, id)
		require.True(t, errs.Is(err, commands.ErrGatewayUnavailable), "got %v", err)
	})

	t.Run("hold expiry that cannot be scheduled releases the slot", func(t *testing.T) {
		e := newDraftEnv(t)
		e.expectBooked()
		id := e.readyDraft(t)

		var held *booking.Booking
		e.bookings.EXPECT().LockEmployeeDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		e.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				held = b
				return nil
			})
		e.queue.EXPECT().EnqueueHoldExpiry(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		e.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, uuid.UUID) (*booking.Booking, error) { return held, nil })
		e.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				assert.Equal(t, booking.StatusCancelled, b.Status())
				return nil
			})

		_, err := e.cmds.Checkout(ctx, e.customer, id)
		require.Error(t, err)
		_, linked, _ := e.store.LinkedBooking(ctx, id)
		assert.False(t, linked, "no order is opened for the released booking")
	})

	t.Run("order that cannot be attached is cancelled", func(t *testing.T) {
		e := newDraftEnv(t)
		e.expectBooked()
		id := e.readyDraft(t)

		var held *booking.Booking
		e.bookings.EXPECT().LockEmployeeDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		e.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				held = b
				return nil
			})
		e.expectHold()
		e.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(payment.Order{OrderID: "pi_3"}, nil)
		e.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, uuid.UUID) (*booking.Booking, error) { return held, nil }).Times(2)
		e.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
		e.gateway.EXPECT().CancelOrder(gomock.Any(), "pi_3").Return(nil)
		e.bookings.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				assert.Equal(t, booking.StatusCancelled, b.Status())
				return nil
			})

		_, err := e.cmds.Checkout(ctx, e.customer, id)
		require.Error(t, err)
	})
}
