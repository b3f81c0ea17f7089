package commands

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/money"
	"salon-booking/internal/domain/payment"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDraftNotFound = errs.New("draft not found")

// DraftStore keeps drafts between requests. Load returns ErrDraftNotFound for unknown or expired drafts.
type DraftStore interface {
	Save(ctx context.Context, snap booking.DraftSnapshot) error
	Load(ctx context.Context, id uuid.UUID) (booking.DraftSnapshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// LinkBooking remembers the booking created by the draft's latest checkout.
	LinkBooking(ctx context.Context, draftID, bookingID uuid.UUID) error
	LinkedBooking(ctx context.Context, draftID uuid.UUID) (uuid.UUID, bool, error)
	// LinkedDraft is the reverse of LinkedBooking.
	LinkedDraft(ctx context.Context, bookingID uuid.UUID) (uuid.UUID, bool, error)
}

type OrderRequest struct {
	BookingID   uuid.UUID
	CustomerID  uuid.UUID
	Amount      money.Money
	Description string
}

type PaymentGateway interface {
	payment.Verifier
	CreateOrder(ctx context.Context, req OrderRequest) (payment.Order, error)
	// CancelOrder makes the order unpayable. It returns payment.ErrOrderNotCancellable when
	// the order was paid or is being processed.
	CancelOrder(ctx context.Context, orderID string) error
}

type TaskQueue interface {
	EnqueueBookingConfirmed(ctx context.Context, bookingID uuid.UUID, orderID string) error
	EnqueueHoldExpiry(ctx context.Context, bookingID uuid.UUID, hold time.Duration) error
}

// PriorityOverlay holds provider priorities that were accepted but not yet flushed.
type PriorityOverlay interface {
	SetPriority(ctx context.Context, providerID uuid.UUID, priority int) error
	// ClearPriority removes the overlay only while it still holds priority.
	ClearPriority(ctx context.Context, providerID uuid.UUID, priority int) error
}

type ReceiptStore interface {
	PutReceipt(ctx context.Context, bookingID uuid.UUID, body []byte) error
}

type PaymentMetrics interface {
	ObservePaymentPoll(outcome string, attempts int)
}

type nopPaymentMetrics struct{}

func (nopPaymentMetrics) ObservePaymentPoll(string, int) {}
