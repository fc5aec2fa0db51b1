package components

import (
	"dogcatify-core/internal/infra/mercadopago"
	"dogcatify-core/internal/infra/push"
	"dogcatify-core/internal/pkg/config"
	"dogcatify-core/internal/usecase/commands"
	"dogcatify-core/internal/usecase/jobs"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) config.GatewayConfig { return cfg.Gateway },
		func(cfg config.Config) config.PushConfig { return cfg.Push },
		fx.Annotate(
			mercadopago.NewClient,
			fx.As(new(commands.PaymentGateway)),
			fx.As(new(jobs.SweepGateway)),
		),
		fx.Annotate(
			push.NewExpoSender,
			fx.As(new(jobs.PushSender)),
			fx.ResultTags(`name:"expo"`),
		),
		fx.Annotate(
			push.NewFCMSender,
			fx.As(new(jobs.PushSender)),
			fx.ResultTags(`name:"fcm"`),
		),
	),
)
