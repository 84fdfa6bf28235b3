package routes

import (
	"net/http"

	_ "oficina_xpto/docs"
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/http/middleware"
	"oficina_xpto/internal/adapter/http/validators"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Clients   *handlers.ClientHandler
	Vehicles  *handlers.VehicleHandler
	Catalog   *handlers.CatalogHandler
	Budgets   *handlers.BudgetHandler
	Orders    *handlers.ServiceOrderHandler
	Invoices  *handlers.InvoiceHandler
	Payments  *handlers.InvoicePaymentHandler
	Dashboard *handlers.DashboardHandler
}

type Options struct {
	Verifier   middleware.TokenVerifier
	Metrics    middleware.RequestObserver
	Gatherer   prometheus.Gatherer
	CORSOrigin string
}

// NewRouter builds the gin engine. Everything under /v1 except auth and ping requires a token.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	if err := validators.Register(); err != nil {
		log.Error().Err(err).Msg("[http][routes] custom validators not registered")
	}

	router := gin.New()
	router.Use(middleware.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.CORS(opts.CORSOrigin))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, h.Auth)

	// Rotas protegidas
	private := v1.Group("")
	private.Use(middleware.RequireAuth(opts.Verifier))
	addPartyRoutes(private, h.Clients, h.Vehicles)
	addCatalogRoutes(private, h.Catalog)
	addWorkflowRoutes(private, h)
	addDashboardRoutes(private, h.Dashboard)

	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}
}
