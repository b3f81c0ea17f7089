package bootstrap

import (
	"context"
	"log/slog"

	"salon-booking/internal/infra/cache"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/gateway"
	"salon-booking/internal/infra/metrics"
	"salon-booking/internal/infra/queue"
	"salon-booking/internal/infra/receipts"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		NewDraftStore,
		fx.Annotate(
			cache.NewPriorityOverlay,
			fx.As(new(commands.PriorityOverlay)),
			fx.As(new(queries.PriorityOverlay)),
		),
	),
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewAsynqClient,
		fx.Annotate(
			queue.NewClient,
			fx.As(new(commands.TaskQueue)),
		),
	),
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
		NewReceiptStore,
	),
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			NewRegistry,
			fx.As(new(prometheus.Registerer)),
			fx.As(new(prometheus.Gatherer)),
		),
		metrics.New,
		func(m *metrics.Metrics) commands.PaymentMetrics { return m },
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, errs.Wrap(err, "connect postgres")
	}
	logger.Info("postgres connected", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)
	lc.Append(fx.StopHook(closePool))
	return pool, nil
}

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := cache.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func NewDraftStore(client *redis.Client, cfg config.Config, logger *slog.Logger) commands.DraftStore {
	return cache.NewDraftStore(client, cfg.Booking.DraftTTL, logger)
}

func NewAsynqClient(lc fx.Lifecycle, cfg config.Config) queue.Enqueuer {
	client := asynq.NewClient(queue.RedisOpt(cfg.Redis))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) commands.PaymentGateway {
	return gateway.New(cfg.Payment, logger)
}

// NewReceiptStore returns a nil store when no bucket is configured.
func NewReceiptStore(cfg config.Config, logger *slog.Logger) (commands.ReceiptStore, error) {
	store, err := receipts.NewS3Store(context.Background(), cfg.Receipts, logger)
	if err != nil {
		return nil, err
	}
	if store == nil {
		logger.Warn("RECEIPTS_BUCKET not set, receipts will not be archived")
		return nil, nil
	}
	return store, nil
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
