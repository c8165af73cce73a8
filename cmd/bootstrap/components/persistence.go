package components

import (
	"bookingcore/internal/infra"
	"bookingcore/internal/infra/cache"
	"bookingcore/internal/infra/identity"
	"bookingcore/internal/infra/notify"
	"bookingcore/internal/infra/readstore"
	"bookingcore/internal/infra/uow"
	"bookingcore/internal/pkg/config"
	"bookingcore/internal/usecase/commands"
	"bookingcore/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Schedule
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		// Appointment
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		// Entitlement
		fx.Annotate(
			readstore.NewEntitlementReadStore,
			fx.As(new(queries.EntitlementReadStore)),
		),
		// Catalog
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork (constructor already returns the port type)
		uow.NewPostgresUoW,
		// Customer identity
		fx.Annotate(
			identity.NewResolver,
			fx.As(new(commands.IdentityResolver)),
		),
		// Notification outbox
		fx.Annotate(
			notify.NewOutboxNotifier,
			fx.As(new(commands.Notifier)),
		),
		// Availability cache
		fx.Annotate(
			NewAvailabilityCache,
			fx.As(new(commands.AvailabilityCache)),
			fx.As(new(queries.SlotCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

func NewAvailabilityCache(rdb *redis.Client, cfg config.Config) *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(rdb, cfg.Redis.CacheTTL)
}
