//go:build integration

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boxcalc-service/internal/circuitbreaker"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/guttosm/boxcalc-service/internal/middleware"
	"github.com/guttosm/boxcalc-service/internal/repository"
	"github.com/guttosm/boxcalc-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMongoRouter wires the full stack against a per-test database.
func setupMongoRouter(t *testing.T) (*gin.Engine, *repository.MongoDB) {
	t.Helper()
	ctx := context.Background()

	db, err := repository.NewMongoDB(getSharedContainerURI(), sanitizeDBNameForHTTP(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Database.Drop(ctx)
		_ = db.Close(ctx)
	})

	productsRepo := repository.NewProductsRepositoryWithCircuitBreaker(
		repository.NewProductsRepository(db), circuitbreaker.New(circuitbreaker.DefaultConfig()))
	products := service.NewProductService(productsRepo, service.WithProductCache(100, time.Minute))
	t.Cleanup(products.Close)

	health := NewHealthHandler()
	health.RegisterChecker("mongodb", db)

	cfg := RouterConfig{RequestTimeout: 10 * time.Second}
	return NewRouter(NewHandler(products, service.NewQuoteService(products)), health, cfg), db
}

func TestIntegration_PrepareThenQuote(t *testing.T) {
	router, _ := setupMongoRouter(t)

	w := doRequest(router, http.MethodPost, "/api/products/prepare", mugJSON)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var prepared model.BoxProduct
	decodeData(t, w, &prepared)
	require.NotEmpty(t, prepared.ID)
	assert.True(t, prepared.IsValid)

	w = doRequest(router, http.MethodGet, "/api/products/"+prepared.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/api/quotes",
		`{"product_id":"`+prepared.ID+`","quantity":20,"shipping_method":"standard"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			Pricing map[string]string `json:"pricing"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "500", body.Data.Pricing["total"])
}

func TestIntegration_PrepareUpsertsBySKU(t *testing.T) {
	router, _ := setupMongoRouter(t)

	w := doRequest(router, http.MethodPost, "/api/products/prepare", mugJSON)
	require.Equal(t, http.StatusOK, w.Code)
	var first model.BoxProduct
	decodeData(t, w, &first)

	w = doRequest(router, http.MethodPost, "/api/products/prepare", mugJSON)
	require.Equal(t, http.StatusOK, w.Code)
	var second model.BoxProduct
	decodeData(t, w, &second)

	assert.Equal(t, first.ID, second.ID)
}

func TestIntegration_ImportAndReviewQueue(t *testing.T) {
	router, _ := setupMongoRouter(t)

	w := doRequest(router, http.MethodPost, "/api/products/import",
		`{"products":[`+mugJSON+`,`+brokenJSON+`]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var summary model.ImportSummary
	decodeData(t, w, &summary)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Valid)
	assert.Equal(t, 1, summary.NeedsReview)
	assert.Zero(t, summary.Failed)

	w = doRequest(router, http.MethodGet, "/api/products?requires_review=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	var page model.ProductPage
	decodeData(t, w, &page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "BROKEN-1", page.Items[0].SKU)
	assert.Equal(t, int64(1), page.Total)

	w = doRequest(router, http.MethodPost, "/api/orders/calculate",
		`{"product_id":"`+page.Items[0].ID+`","quantity":5}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestIntegration_UnknownProduct(t *testing.T) {
	router, _ := setupMongoRouter(t)

	w := doRequest(router, http.MethodGet, "/api/products/does-not-exist", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntegration_Readiness(t *testing.T) {
	router, _ := setupMongoRouter(t)

	w := doRequest(router, http.MethodGet, ReadinessPath, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mongodb")
}

func TestIntegration_AuditLogPersisted(t *testing.T) {
	ctx := context.Background()
	router, db := setupMongoRouter(t)

	logsRepo := repository.NewLogsRepository(db)
	middleware.InitAsyncLogger(service.NewLoggingService(logsRepo), middleware.DefaultAsyncLoggerConfig())
	t.Cleanup(middleware.StopAsyncLogger)

	w := doRequest(router, http.MethodPost, "/api/orders/calculate", `{"product":`+mugJSON+`,"quantity":27}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Stop drains the queue.
	middleware.StopAsyncLogger()

	logs, err := logsRepo.Query(ctx, repository.LogQueryOptions{ActionType: model.ActionOrderCalculated})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "/api/orders/calculate", logs[0].Path)
}
