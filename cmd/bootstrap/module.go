package bootstrap

import (
	"salon-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// infraModule is shared by the API server and the worker.
var infraModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	QueueModule,
	PaymentModule,
	MetricsModule,
	components.PersistenceModule,
)

var Module = fx.Options(
	infraModule,
	AuthModule,
	components.UseCaseModule,
	components.HandlerModule,
)

var WorkerModule = fx.Options(
	infraModule,
	components.WorkerModule,
)
