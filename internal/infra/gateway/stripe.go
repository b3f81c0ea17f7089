package gateway

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"salon-booking/internal/domain/money"
	"salon-booking/internal/domain/payment"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Stripe creates and inspects PaymentIntents. An intent is the order; its id is the order id.
type Stripe struct {
	api    *client.API
	logger *slog.Logger
}

func NewStripe(secretKey string, logger *slog.Logger) *Stripe {
	return &Stripe{api: client.New(secretKey, nil), logger: logger}
}

// NewStripeWithBackend points the client at another API host. Tests use it with httptest.
func NewStripeWithBackend(secretKey, url string, logger *slog.Logger) *Stripe {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(url),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return &Stripe{
		api:    client.New(secretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend}),
		logger: logger,
	}
}

func (s *Stripe) CreateOrder(ctx context.Context, req commands.OrderRequest) (payment.Order, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.Amount.Amount()),
		Currency:    stripe.String(strings.ToLower(req.Amount.Currency())),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("booking_id", req.BookingID.String())
	params.AddMetadata("customer_id", req.CustomerID.String())
	params.SetIdempotencyKey("booking-" + req.BookingID.String())

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		s.logger.Error("failed to create payment intent", "booking_id", req.BookingID, "error", err.Error())
		return payment.Order{}, errs.Wrap(err, "stripe: create payment intent")
	}
	amount, err := money.New(pi.Amount, strings.ToUpper(string(pi.Currency)))
	if err != nil {
		return payment.Order{}, err
	}
	return payment.Order{OrderID: pi.ID, ClientSecret: pi.ClientSecret, Amount: amount}, nil
}

func (s *Stripe) Verify(ctx context.Context, orderID string) (payment.Record, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := s.api.PaymentIntents.Get(orderID, params)
	if err != nil {
		return payment.Record{}, errs.Wrap(err, "stripe: retrieve payment intent")
	}
	return recordOf(pi)
}

// CancelOrder cancels the intent so the customer can no longer pay it. An intent that was
// already cancelled or failed is fine; one that succeeded or is processing returns
// payment.ErrOrderNotCancellable.
func (s *Stripe) CancelOrder(ctx context.Context, orderID string) error {
	params := &stripe.PaymentIntentCancelParams{
		CancellationReason: stripe.String(string(stripe.PaymentIntentCancellationReasonAbandoned)),
	}
	params.Context = ctx
	_, err := s.api.PaymentIntents.Cancel(orderID, params)
	if err == nil {
		return nil
	}

	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) || stripeErr.Code != stripe.ErrorCodePaymentIntentUnexpectedState {
		return errs.Wrap(err, "stripe: cancel payment intent")
	}
	rec, verr := s.Verify(ctx, orderID)
	if verr != nil {
		return verr
	}
	if rec.Status == payment.StatusFailed {
		return nil
	}
	s.logger.Warn("payment intent can no longer be cancelled", "order_id", orderID, "status", string(rec.Status))
	return payment.ErrOrderNotCancellable
}

func recordOf(pi *stripe.PaymentIntent) (payment.Record, error) {
	amount, err := money.New(pi.Amount, strings.ToUpper(string(pi.Currency)))
	if err != nil {
		return payment.Record{}, err
	}
	rec := payment.Record{OrderID: pi.ID, Status: payment.StatusPending, Amount: amount}
	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		rec.Status = payment.StatusPaid
		if pi.LatestCharge != nil {
			rec.TransactionID = pi.LatestCharge.ID
		}
	case stripe.PaymentIntentStatusCanceled:
		rec.Status = payment.StatusFailed
		rec.FailureReason = string(pi.CancellationReason)
	case stripe.PaymentIntentStatusRequiresPaymentMethod:
		// a declined attempt returns the intent to this state with the decline attached
		if pi.LastPaymentError != nil {
			rec.Status = payment.StatusFailed
			rec.FailureReason = pi.LastPaymentError.Msg
		}
	}
	return rec, nil
}
