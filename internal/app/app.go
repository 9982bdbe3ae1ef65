// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boxcalc-service/config"
	"github.com/guttosm/boxcalc-service/internal/http"
	"github.com/guttosm/boxcalc-service/internal/middleware"
	"github.com/rs/zerolog/log"
)

// App is the wired application: the router plus what must be released on shutdown.
type App struct {
	Router *gin.Engine

	services *ServiceComponents
	database *DatabaseComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	// Logger first, every other component logs.
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)
	if dbComponents != nil {
		InitializeAuditLog(dbComponents.LoggingService, cfg.Log)
	}

	serviceComponents := InitializeServices(cfg, dbComponents)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		services: serviceComponents,
		database: dbComponents,
		router:   routerComponents,
	}
}

// Close stops background workers, flushes audit entries and disconnects from MongoDB.
// Call it after the HTTP server has stopped.
func (a *App) Close(ctx context.Context) {
	a.router.Stop()
	a.services.Products.Close()
	middleware.StopAsyncLogger()

	if err := a.database.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}
