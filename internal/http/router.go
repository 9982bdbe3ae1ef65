package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boxcalc-service/internal/logger"
	"github.com/guttosm/boxcalc-service/internal/metrics"
	"github.com/guttosm/boxcalc-service/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Paths served outside /api.
const (
	LivenessPath  = "/healthz"
	ReadinessPath = "/readyz"
	MetricsPath   = "/metrics"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string

	EnableIdempotency bool
	// IdempotencyCache and RateLimiter are created by NewRouter when nil.
	// Callers that pass their own are responsible for stopping them.
	IdempotencyCache *middleware.IdempotencyCache
	RateLimiter      *middleware.RateLimiter
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    30 * time.Second,
		EnableIdempotency: true,
	}
}

// NewRouter creates and configures the Gin router for the box calculator service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	if err := RegisterValidators(); err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("Failed to register binding validators")
	}

	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	if handler != nil {
		registerRouteGroups(api, NewProductRoutes(handler), NewOrderRoutes(handler))
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(MetricsPath),
		middleware.RequestLogger(LivenessPath, ReadinessPath, MetricsPath),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		if cfg.RateLimiter == nil {
			cfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		}
		router.Use(cfg.RateLimiter.Middleware())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET(MetricsPath, gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	if cfg.EnableIdempotency {
		if cfg.IdempotencyCache == nil {
			cfg.IdempotencyCache = middleware.NewIdempotencyCache(middleware.IdempotencyKeyTTL, middleware.DefaultIdempotencyMaxEntries)
		}
		api.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Cache:   cfg.IdempotencyCache,
			Enabled: true,
		}))
	}
}

func registerRouteGroups(api *gin.RouterGroup, groups ...PublicRouteGroup) {
	for _, g := range groups {
		g.RegisterPublicRoutes(api)
	}
}
