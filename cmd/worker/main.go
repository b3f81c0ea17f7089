package main

import (
	"context"
	"log/slog"
	"os"

	"salon-booking/cmd/bootstrap"
	"salon-booking/internal/infra/queue"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/commands"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

// startWorker archives receipts of confirmed bookings and releases unpaid holds.
func startWorker(lc fx.Lifecycle, cfg config.Config, payments commands.PaymentCommands, logger *slog.Logger) {
	srv := asynq.NewServer(queue.RedisOpt(cfg.Redis), asynq.Config{
		Concurrency: 4,
		Logger:      queue.NewLogger(logger),
	})
	mux := queue.NewServeMux(payments, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting worker", "redis", cfg.Redis.Addr, "db", cfg.Redis.QueueDB)
			return srv.Start(mux)
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping worker")
			srv.Shutdown()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.WorkerModule,
		fx.Invoke(startWorker),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start worker", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop worker cleanly", "error", err)
	}
}
