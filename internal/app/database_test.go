//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/boxcalc-service/config"
	"github.com/guttosm/boxcalc-service/internal/circuitbreaker"
	"github.com/guttosm/boxcalc-service/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})

	assert.Nil(t, components)
}

func TestDatabaseComponents_CloseNil(t *testing.T) {
	var components *DatabaseComponents

	assert.NoError(t, components.Close(context.Background()))
	assert.NoError(t, (&DatabaseComponents{}).Close(context.Background()))
}

func TestNewCircuitBreaker_ExportsState(t *testing.T) {
	const name = "test_breaker_state"
	cb := newCircuitBreaker(config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 1,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Minute,
	}, name)

	assert.Equal(t, name, cb.Name())
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(name)))

	err := cb.Execute(context.Background(), func() error { return errors.New("connection refused") })

	assert.Error(t, err)
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())
	assert.Equal(t, float64(circuitbreaker.StateOpen), testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(name)))
}
