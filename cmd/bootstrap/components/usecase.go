package components

import (
	"dogcatify-core/internal/pkg/clock"
	"dogcatify-core/internal/pkg/config"
	"dogcatify-core/internal/usecase/commands"
	"dogcatify-core/internal/usecase/jobs"
	"dogcatify-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseJobsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutUseCase,
		commands.NewPartnerUseCase,
		commands.NewWebhookUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
	),
)

var usecaseJobsModule = fx.Module("usecase/jobs",
	fx.Provide(
		func(cfg config.Config) config.JobsConfig { return cfg.Jobs },
		jobs.NewExpirationSweeper,
		fx.Annotate(
			jobs.NewNotificationDispatcher,
			fx.ParamTags(``, ``, `name:"expo"`, `name:"fcm"`, ``, ``),
		),
	),
)
