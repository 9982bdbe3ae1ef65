// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/boxcalc-service/config"
	"github.com/guttosm/boxcalc-service/internal/circuitbreaker"
	"github.com/guttosm/boxcalc-service/internal/metrics"
	"github.com/guttosm/boxcalc-service/internal/repository"
	"github.com/guttosm/boxcalc-service/internal/service"
	"github.com/rs/zerolog/log"
)

// Circuit breaker names, also used as health check and metric labels.
const (
	ProductsBreakerName = "mongodb_products"
	LogsBreakerName     = "mongodb_logs"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	ProductsRepo           repository.ProductRepositoryInterface
	LoggingService         service.LoggingService
	ProductsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the products and logs repositories.
// Returns nil if the database is disabled or the connection fails; the service then
// runs the calculators without a catalog.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	productsCB := newCircuitBreaker(cfg, ProductsBreakerName)
	logsCB := newCircuitBreaker(cfg, LogsBreakerName)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	productsRepo := repository.NewProductsRepositoryWithCircuitBreaker(repository.NewProductsRepository(db), productsCB)

	return &DatabaseComponents{
		DB:                     db,
		ProductsRepo:           productsRepo,
		LoggingService:         service.NewLoggingService(logsRepo),
		ProductsCircuitBreaker: productsCB,
		LogsCircuitBreaker:     logsCB,
	}
}

// newCircuitBreaker builds a breaker whose state is exported as a gauge.
func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
