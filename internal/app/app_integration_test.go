//go:build integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/boxcalc-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func integrationConfig(t *testing.T) config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 10 * time.Second,
		},
		Log:   config.LogConfig{Level: "error", AsyncWorkers: 1},
		Cache: config.CacheConfig{Size: 100, TTL: time.Minute},
		Database: config.DatabaseConfig{
			URI:                            getSharedContainerURI(),
			DatabaseName:                   sanitizeDBNameForApp(t.Name()),
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
	}
}

func TestInitializeApp_Integration(t *testing.T) {
	application := InitializeApp(integrationConfig(t))
	t.Cleanup(func() { application.Close(context.Background()) })
	require.NotNil(t, application.database)
	t.Cleanup(func() { _ = application.database.DB.Database.Drop(context.Background()) })

	t.Run("readiness reports MongoDB", func(t *testing.T) {
		w := httptest.NewRecorder()
		application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "mongodb")
		assert.Contains(t, w.Body.String(), ProductsBreakerName+"_circuit")
	})

	t.Run("prepare stores the product", func(t *testing.T) {
		body := `{"sku":"MUG-11-WHT","supplier_id":"supplier-01","box_info":{"weight_kg":20,"pieces_per_box":10,` +
			`"dimensions":{"length_cm":40,"width_cm":30,"height_cm":20},"price_per_box":150}}`
		req := httptest.NewRequest(http.MethodPost, "/api/products/prepare", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		application.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), `"is_valid":true`)
	})
}

func TestInitializeApp_Integration_UnreachableDatabase(t *testing.T) {
	cfg := integrationConfig(t)
	cfg.Database.URI = "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200"

	application := InitializeApp(cfg)
	t.Cleanup(func() { application.Close(context.Background()) })

	assert.Nil(t, application.database)
	assert.NotNil(t, application.Router)
}
