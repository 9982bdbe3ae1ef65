// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/boxcalc-service/config"
	"github.com/guttosm/boxcalc-service/internal/logger"
	"github.com/guttosm/boxcalc-service/internal/middleware"
	"github.com/guttosm/boxcalc-service/internal/service"
)

// InitializeLogger initializes the JSON logger.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}

// InitializeAuditLog starts the async audit writer when a logging service is available.
// It reports whether audit entries will be persisted.
func InitializeAuditLog(loggingService service.LoggingService, cfg config.LogConfig) bool {
	if loggingService == nil {
		return false
	}
	middleware.InitAsyncLogger(loggingService, middleware.AsyncLoggerConfig{
		BufferSize:   cfg.AsyncBufferSize,
		NumWorkers:   cfg.AsyncWorkers,
		WriteTimeout: cfg.AsyncWriteTimeout,
	})
	return true
}
