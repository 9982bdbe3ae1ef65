package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/guttosm/boxcalc-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func auditContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/products/import", nil)
	c.Request.Header.Set("User-Agent", "catalog-sync/1.0")
	c.Set(string(RequestIDKey), "req-audit-1")
	return c
}

func TestAuditLog(t *testing.T) {
	tests := []struct {
		name   string
		record func(*gin.Context)
		match  func(*model.LogEntry) bool
	}{
		{
			name: "info entry",
			record: func(c *gin.Context) {
				AuditLog(c, model.ActionProductsImported, "Products imported", map[string]interface{}{"total": 3})
			},
			match: func(e *model.LogEntry) bool {
				return e.Level == "info" &&
					e.ActionType == model.ActionProductsImported &&
					e.RequestID == "req-audit-1" &&
					e.Path == "/api/v1/products/import" &&
					e.UserAgent == "catalog-sync/1.0" &&
					e.Fields["total"] == 3 &&
					e.Error == ""
			},
		},
		{
			name: "error entry",
			record: func(c *gin.Context) {
				AuditLogError(c, model.ActionQuoteCreated, "Quote failed", errors.New("product requires manual review"), nil)
			},
			match: func(e *model.LogEntry) bool {
				return e.Level == "error" &&
					e.ActionType == model.ActionQuoteCreated &&
					e.Error == "product requires manual review"
			},
		},
		{
			name: "error entry without error value",
			record: func(c *gin.Context) {
				AuditLogError(c, model.ActionQuoteCreated, "Quote failed", nil, nil)
			},
			match: func(e *model.LogEntry) bool {
				return e.Level == "error" && e.Error == ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockLoggingService(t)
			svc.On("CreateLog", mock.Anything, mock.MatchedBy(tt.match)).Return(nil).Once()
			InitAsyncLogger(svc, DefaultAsyncLoggerConfig())

			tt.record(auditContext(t))

			// Stop drains the queue so the expectation is met deterministically.
			StopAsyncLogger()
		})
	}
}

func TestAuditLog_WithoutAsyncLogger(t *testing.T) {
	StopAsyncLogger()
	require.Nil(t, GetAsyncLogger())

	assert.NotPanics(t, func() {
		c := auditContext(t)
		AuditLog(c, model.ActionOrderCalculated, "Order calculated", nil)
		AuditLogError(c, model.ActionOrderCalculated, "Order failed", errors.New("boom"), nil)
	})
}
