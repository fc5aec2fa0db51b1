package components

import (
	"dogcatify-core/internal/handler"
	"dogcatify-core/internal/handler/api"
	"dogcatify-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewWebhookHandler,
		api.NewJobsHandler,
		middleware.NewSchedulerAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
