package gateway

import (
	"log/slog"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/commands"
)

// New picks Stripe when a secret key is configured and the in-memory fake otherwise.
func New(cfg config.PaymentConfig, logger *slog.Logger) commands.PaymentGateway {
	if cfg.StripeSecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY not set, using the fake payment gateway")
		return NewFake()
	}
	return NewStripe(cfg.StripeSecretKey, logger)
}
