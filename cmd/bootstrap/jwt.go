package bootstrap

import (
	"dogcatify-core/internal/pkg/config"
	"dogcatify-core/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewSchedulerJWTService,
	),
)

func NewSchedulerJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Scheduler.Secret, cfg.Scheduler.TokenTTL)
}
