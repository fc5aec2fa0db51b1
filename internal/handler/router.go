package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dogcatify-core/internal/handler/api"
	"dogcatify-core/internal/handler/middleware"
	"dogcatify-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	checkoutHandler *api.CheckoutHandler,
	orderHandler *api.OrderHandler,
	webhookHandler *api.WebhookHandler,
	jobsHandler *api.JobsHandler,
	schedulerAuth *middleware.SchedulerAuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, checkoutHandler, orderHandler, webhookHandler, jobsHandler, schedulerAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	checkoutHandler *api.CheckoutHandler,
	orderHandler *api.OrderHandler,
	webhookHandler *api.WebhookHandler,
	jobsHandler *api.JobsHandler,
	schedulerAuth *middleware.SchedulerAuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/checkout", Handler: checkoutHandler.Checkout},
			{Method: http.MethodPost, Path: "/partners/:id/connect", Handler: checkoutHandler.ConnectPartner},
			{Method: http.MethodGet, Path: "/orders", Handler: orderHandler.List},
			{Method: http.MethodGet, Path: "/orders/:id", Handler: orderHandler.Get},
			{Method: http.MethodPost, Path: "/webhooks/mercadopago", Handler: webhookHandler.HandleMercadoPago},
		})

		jobsGroup := apiGroup.Group("/jobs")
		jobsGroup.Use(schedulerAuth.RequireSchedulerToken())
		{
			addRoutes(jobsGroup, []route{
				{Method: http.MethodPost, Path: "/expire-orders", Handler: jobsHandler.ExpireOrders},
				{Method: http.MethodPost, Path: "/dispatch-notifications", Handler: jobsHandler.DispatchNotifications},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
