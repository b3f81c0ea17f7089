package components

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewEnquiryCommands,
		commands.NewReviewCommands,
		commands.NewTermsCommands,
		newDraftCommands,
		newProviderCommands,
		newPriorityCommands,
		newPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewProviderQueries,
		queries.NewCatalogQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewEnquiryQueries,
		queries.NewTermsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newDraftCommands(uow shared.UnitOfWork, drafts commands.DraftStore, gateway commands.PaymentGateway, queue commands.TaskQueue, clk clock.Clock, loc *time.Location, cfg config.Config) commands.DraftCommands {
	return commands.NewDraftCommands(uow, drafts, gateway, queue, clk, loc, cfg.Payment)
}

func newProviderCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.ProviderCommands {
	return commands.NewProviderCommands(uow, clk, cfg.Payment.Currency)
}

// newPriorityCommands flushes pending priority edits before the pool closes.
func newPriorityCommands(lc fx.Lifecycle, uow shared.UnitOfWork, overlay commands.PriorityOverlay, clk clock.Clock, cfg config.Config, logger *slog.Logger) commands.PriorityCommands {
	cmds := commands.NewPriorityCommands(uow, overlay, clk, cfg.Booking.PriorityDebounce, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return cmds.Close(ctx)
		},
	})
	return cmds
}

func newPaymentCommands(
	uow shared.UnitOfWork,
	gateway commands.PaymentGateway,
	drafts commands.DraftStore,
	queue commands.TaskQueue,
	receipts commands.ReceiptStore,
	metrics commands.PaymentMetrics,
	clk clock.Clock,
	cfg config.Config,
) commands.PaymentCommands {
	return commands.NewPaymentCommands(uow, gateway, drafts, queue, receipts, metrics, clk, cfg.Payment)
}
