package bootstrap

import (
	"log/slog"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/logging"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger also installs the logger as the slog default for packages that log without injection.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := logging.New(cfg.Log)
	slog.SetDefault(logger)
	return logger
}
