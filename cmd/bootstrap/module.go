package bootstrap

import (
	"dogcatify-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.GatewayModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	JobsModule,
)
