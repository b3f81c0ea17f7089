package bootstrap

import (
	"time"

	"salon-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBookingLocation,
	),
)

// NewBookingLocation is the zone dates, slots and opening hours are interpreted in.
func NewBookingLocation(cfg config.Config) *time.Location {
	return cfg.Booking.Location()
}
