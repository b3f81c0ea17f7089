package components

import (
	"salon-booking/internal/pkg/clock"

	"go.uber.org/fx"
)

// WorkerModule provides the payment commands behind the receipt and hold expiry tasks,
// without the HTTP surface.
var WorkerModule = fx.Module("worker",
	fx.Provide(
		clock.NewRealClock,
		newPaymentCommands,
	),
)
