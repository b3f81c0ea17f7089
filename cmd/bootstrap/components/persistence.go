package components

import (
	"log/slog"

	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/readstore"
	"salon-booking/internal/infra/repository"
	"salon-booking/internal/infra/uow"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	NewUoWPool,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewProviderReadStore,
			fx.As(new(queries.ProviderReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewEnquiryReadStore,
			fx.As(new(queries.EnquiryReadStore)),
		),
		fx.Annotate(
			readstore.NewTermsReadStore,
			fx.As(new(queries.TermsReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work. Only the lookups used
// by availability are bound to the pool directly.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		NewBookedIntervalSource,
		NewEmployeeSource,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewUoWPool(pool *pgxpool.Pool) uow.Pool {
	return pool
}

func NewBookedIntervalSource(dbtx db.DBTX, logger *slog.Logger) queries.BookedIntervalSource {
	return repository.NewBookingRepository(dbtx, logger)
}

func NewEmployeeSource(dbtx db.DBTX, logger *slog.Logger) queries.EmployeeSource {
	return repository.NewEmployeeRepository(dbtx, logger)
}
