// Package app provides router configuration.
package app

import (
	"github.com/guttosm/boxcalc-service/config"
	"github.com/guttosm/boxcalc-service/internal/http"
	"github.com/guttosm/boxcalc-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
// The idempotency cache and rate limiter are created here so Stop can release them.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(services.Products, services.Quotes, http.WithShippingEstimator(services.Shipping))
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		}
		if dbComponents.ProductsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker(ProductsBreakerName, dbComponents.ProductsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker(LogsBreakerName, dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		EnableIdempotency: true,
		IdempotencyCache:  middleware.NewIdempotencyCache(middleware.IdempotencyKeyTTL, middleware.DefaultIdempotencyMaxEntries),
	}
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// Stop releases the background workers of the router middleware.
func (r *RouterComponents) Stop() {
	if r.Config.IdempotencyCache != nil {
		r.Config.IdempotencyCache.Stop()
	}
	if r.Config.RateLimiter != nil {
		r.Config.RateLimiter.Stop()
	}
}
