package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/payment"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentResult struct {
	OrderID       string
	BookingID     uuid.UUID
	Outcome       string
	Attempts      int
	BookingStatus string
	FailureReason string
	// RefundRequired is set when the payment arrived after the booking's slot was given away.
	RefundRequired bool
}

type PaymentCommands interface {
	// Verify polls the gateway within the attempt budget and settles the booking.
	Verify(ctx context.Context, customerID uuid.UUID, orderID string) (*PaymentResult, error)
	// Refresh performs a single verification, used after Verify reported processing.
	Refresh(ctx context.Context, customerID uuid.UUID, orderID string) (*PaymentResult, error)
	Receipt(ctx context.Context, customerID uuid.UUID, orderID string, w io.Writer) error
	ArchiveReceipt(ctx context.Context, bookingID uuid.UUID) error
	// ExpireHold releases the slot of a booking that is still unpaid once its hold ran out.
	ExpireHold(ctx context.Context, bookingID uuid.UUID) error
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	poller   *payment.Poller
	drafts   DraftStore
	queue    TaskQueue
	receipts ReceiptStore
	metrics  PaymentMetrics
	clock    clock.Clock
}

// NewPaymentCommands accepts a nil receipts store; archiving is then skipped.
func NewPaymentCommands(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	drafts DraftStore,
	queue TaskQueue,
	receipts ReceiptStore,
	metrics PaymentMetrics,
	clk clock.Clock,
	cfg config.PaymentConfig,
) PaymentCommands {
	if metrics == nil {
		metrics = nopPaymentMetrics{}
	}
	return &paymentCommandsImpl{
		uow:      uow,
		gateway:  gateway,
		poller:   payment.NewPoller(gateway, clk, cfg.PollAttempts, cfg.PollDelay),
		drafts:   drafts,
		queue:    queue,
		receipts: receipts,
		metrics:  metrics,
		clock:    clk,
	}
}

func (p *paymentCommandsImpl) Verify(ctx context.Context, customerID uuid.UUID, orderID string) (*PaymentResult, error) {
	b, err := p.ownedBooking(ctx, customerID, orderID)
	if err != nil {
		return nil, err
	}
	res, err := p.poller.Poll(ctx, orderID)
	if err != nil {
		return nil, err
	}
	p.metrics.ObservePaymentPoll(res.Outcome.String(), res.Attempts)
	return p.settle(ctx, b.ID(), res)
}

func (p *paymentCommandsImpl) Refresh(ctx context.Context, customerID uuid.UUID, orderID string) (*PaymentResult, error) {
	b, err := p.ownedBooking(ctx, customerID, orderID)
	if err != nil {
		return nil, err
	}
	res, err := p.poller.Refresh(ctx, orderID)
	if err != nil {
		return nil, err
	}
	p.metrics.ObservePaymentPoll(res.Outcome.String(), res.Attempts)
	return p.settle(ctx, b.ID(), res)
}

func (p *paymentCommandsImpl) Receipt(ctx context.Context, customerID uuid.UUID, orderID string, w io.Writer) error {
	b, err := p.ownedBooking(ctx, customerID, orderID)
	if err != nil {
		return err
	}
	return p.render(ctx, b, w)
}

func (p *paymentCommandsImpl) ArchiveReceipt(ctx context.Context, bookingID uuid.UUID) error {
	if p.receipts == nil {
		return nil
	}
	b, err := p.uow.Reads().Bookings().FindByID(ctx, bookingID)
	if err != nil {
		return mapNotFound(err, ErrBookingNotFound)
	}
	var buf bytes.Buffer
	if err := p.render(ctx, b, &buf); err != nil {
		return err
	}
	return p.receipts.PutReceipt(ctx, bookingID, buf.Bytes())
}

func (p *paymentCommandsImpl) ExpireHold(ctx context.Context, bookingID uuid.UUID) error {
	b, err := p.uow.Reads().Bookings().FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if !expirable(b.Status()) {
		return nil
	}

	if b.OrderID() != "" {
		err := p.gateway.CancelOrder(ctx, b.OrderID())
		if errors.Is(err, payment.ErrOrderNotCancellable) {
			// paid or processing: settle from the gateway's answer instead of releasing
			res, err := p.poller.Refresh(ctx, b.OrderID())
			if err != nil {
				return err
			}
			if _, err := p.settle(ctx, bookingID, res); err != nil {
				return err
			}
			if res.Outcome == payment.OutcomeProcessing {
				return ErrPaymentProcessing
			}
			return nil
		}
		if err != nil {
			return err
		}
	}

	released := false
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		held, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if !expirable(held.Status()) {
			return nil
		}
		if err := held.Cancel(p.clock.Now()); err != nil {
			return err
		}
		released = true
		return tx.Bookings().Save(ctx, held)
	})
	if err != nil {
		return err
	}
	if released {
		slog.Info("unpaid booking released", "booking_id", bookingID, "order_id", b.OrderID())
	}
	return nil
}

func expirable(s booking.Status) bool {
	return s == booking.StatusAwaitingPayment || s == booking.StatusPaymentFailed
}

// settle moves the booking to the terminal status the gateway reported. A processing result
// leaves it awaiting payment. A payment for a booking that already released its slot
// confirms it again if the slot is still free, otherwise the result asks for a refund.
func (p *paymentCommandsImpl) settle(ctx context.Context, bookingID uuid.UUID, res payment.Result) (*PaymentResult, error) {
	var (
		status       booking.Status
		confirmedNow bool
		refund       bool
	)
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return err
		}
		before := b.Status()
		status = before
		switch res.Outcome {
		case payment.OutcomePaid:
			if before.HoldsSlot() {
				err = b.Confirm(p.clock.Now())
			} else {
				err = p.confirmLate(ctx, tx, b)
			}
		case payment.OutcomeFailed:
			if before != booking.StatusCancelled {
				err = b.MarkPaymentFailed(p.clock.Now())
			}
		}
		if errors.Is(err, booking.ErrSlotOverlap) {
			refund = true
			return nil
		}
		if err != nil {
			return err
		}
		status = b.Status()
		confirmedNow = before != booking.StatusConfirmed && status == booking.StatusConfirmed
		if before == status {
			return nil
		}
		return tx.Bookings().Save(ctx, b)
	})
	if err != nil {
		return nil, mapNotFound(err, ErrBookingNotFound)
	}

	if refund {
		slog.Error("payment received for a released slot, refund required",
			"booking_id", bookingID,
			"order_id", res.Record.OrderID,
			"transaction_id", res.Record.TransactionID)
	}
	if confirmedNow {
		if err := p.queue.EnqueueBookingConfirmed(ctx, bookingID, res.Record.OrderID); err != nil {
			// the booking is confirmed regardless; only the receipt archive is delayed
			slog.Error("failed to enqueue booking confirmation", "booking_id", bookingID, "error", err.Error())
		}
		p.discardDraft(ctx, bookingID)
	}

	return &PaymentResult{
		OrderID:        res.Record.OrderID,
		BookingID:      bookingID,
		Outcome:        res.Outcome.String(),
		Attempts:       res.Attempts,
		BookingStatus:  status.String(),
		FailureReason:  res.Record.FailureReason,
		RefundRequired: refund,
	}, nil
}

// confirmLate confirms a paid booking that had released its slot, under the same employee
// day lock checkout takes.
func (p *paymentCommandsImpl) confirmLate(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	if err := tx.Bookings().LockEmployeeDay(ctx, b.ProviderID(), b.EmployeeName(), b.Date()); err != nil {
		return err
	}
	booked, err := tx.Bookings().BookedIntervals(ctx, b.ProviderID(), b.EmployeeName(), b.Date())
	if err != nil {
		return err
	}
	return b.ConfirmLate(booked, p.clock.Now())
}

// discardDraft drops the draft a paid booking came from; it cannot be checked out again.
func (p *paymentCommandsImpl) discardDraft(ctx context.Context, bookingID uuid.UUID) {
	draftID, ok, err := p.drafts.LinkedDraft(ctx, bookingID)
	if err != nil {
		slog.Warn("failed to look up draft of paid booking", "booking_id", bookingID, "error", err.Error())
		return
	}
	if !ok {
		return
	}
	if err := p.drafts.Delete(ctx, draftID); err != nil {
		slog.Warn("failed to delete draft of paid booking", "booking_id", bookingID, "draft_id", draftID, "error", err.Error())
	}
}

func (p *paymentCommandsImpl) render(ctx context.Context, b *booking.Booking, w io.Writer) error {
	res, err := p.poller.Refresh(ctx, b.OrderID())
	if err != nil {
		return err
	}
	prov, err := p.uow.Reads().Providers().FindByID(ctx, b.ProviderID())
	if err != nil {
		return mapNotFound(err, ErrProviderNotFound)
	}

	lines := make([]payment.ReceiptLine, 0, len(b.Services()))
	for _, l := range b.Services() {
		lines = append(lines, payment.ReceiptLine{
			Name:            l.Name,
			DurationMinutes: l.DurationMinutes,
			Price:           l.Price.String(),
		})
	}
	slot := b.Slot()
	return payment.WriteReceipt(w, payment.Receipt{
		BookingID:    b.ID().String(),
		ProviderName: prov.Name(),
		CustomerName: b.CustomerName(),
		EmployeeName: b.EmployeeName(),
		Date:         b.Date(),
		TimeSlot:     slot.Start.String() + "-" + slot.End().String(),
		Services:     lines,
		Record:       res.Record,
		IssuedAt:     p.clock.Now(),
	})
}

func (p *paymentCommandsImpl) ownedBooking(ctx context.Context, customerID uuid.UUID, orderID string) (*booking.Booking, error) {
	if orderID == "" {
		return nil, payment.ErrNoOrderID
	}
	b, err := p.uow.Reads().Bookings().FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, mapNotFound(err, ErrBookingNotFound)
	}
	if b.CustomerID() != customerID {
		return nil, ErrBookingAccess
	}
	return b, nil
}
