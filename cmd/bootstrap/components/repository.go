package components

import (
	"dogcatify-core/internal/infra/db"
	repo_impl "dogcatify-core/internal/infra/repository"
	"dogcatify-core/internal/usecase/commands"
	"dogcatify-core/internal/usecase/jobs"
	"dogcatify-core/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(jobs.OrderSweepRepository)),
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(jobs.BookingSweepRepository)),
		),
		fx.Annotate(
			repo_impl.NewPartnerRepository,
			fx.As(new(commands.PartnerRepository)),
			fx.As(new(jobs.PartnerTokenStore)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(jobs.NotificationStore)),
		),
		fx.Annotate(
			repo_impl.NewDeviceTokenRepository,
			fx.As(new(jobs.DeviceTokenStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
