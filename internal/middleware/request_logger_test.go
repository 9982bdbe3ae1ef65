//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/guttosm/boxcalc-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   string
	}{
		{name: "2xx returns info", statusCode: 200, expected: "info"},
		{name: "3xx returns info", statusCode: 301, expected: "info"},
		{name: "4xx returns warn", statusCode: 400, expected: "warn"},
		{name: "422 returns warn", statusCode: 422, expected: "warn"},
		{name: "5xx returns error", statusCode: 500, expected: "error"},
		{name: "503 returns error", statusCode: 503, expected: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.statusCode))
		})
	}
}

func newLoggedRouter(status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger("/healthz"))
	router.GET("/api/boxes/breakdown", func(c *gin.Context) {
		c.Status(status)
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequestLogger_PersistsEntries(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantLevel  string
	}{
		{name: "success", statusCode: http.StatusOK, wantLevel: "info"},
		{name: "client error", statusCode: http.StatusBadRequest, wantLevel: "warn"},
		{name: "server error", statusCode: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			written := make(chan *model.LogEntry, 1)
			svc := mocks.NewMockLoggingService(t)
			svc.On("CreateLog", mock.Anything, mock.AnythingOfType("*model.LogEntry")).
				Run(func(args mock.Arguments) {
					written <- args.Get(1).(*model.LogEntry)
				}).
				Return(nil).Once()
			InitAsyncLogger(svc, DefaultAsyncLoggerConfig())
			defer StopAsyncLogger()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/boxes/breakdown?quantity=27", nil)
			req.Header.Set("User-Agent", "boxcalc-test")
			newLoggedRouter(tt.statusCode).ServeHTTP(w, req)

			select {
			case entry := <-written:
				assert.Equal(t, tt.wantLevel, entry.Level)
				assert.Equal(t, tt.statusCode, entry.StatusCode)
				assert.Equal(t, http.MethodGet, entry.Method)
				assert.Equal(t, "/api/boxes/breakdown", entry.Path)
				assert.Equal(t, "boxcalc-test", entry.UserAgent)
				assert.Equal(t, w.Header().Get(RequestIDHeader), entry.RequestID)
			case <-time.After(2 * time.Second):
				t.Fatal("log entry was not written")
			}
		})
	}
}

func TestRequestLogger_SkipsConfiguredPaths(t *testing.T) {
	// The mock fails the test on any unexpected CreateLog call.
	InitAsyncLogger(mocks.NewMockLoggingService(t), DefaultAsyncLoggerConfig())

	w := httptest.NewRecorder()
	newLoggedRouter(http.StatusOK).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	StopAsyncLogger()

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger_WithoutAsyncLogger(t *testing.T) {
	assert.Nil(t, GetAsyncLogger())

	w := httptest.NewRecorder()
	newLoggedRouter(http.StatusOK).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/boxes/breakdown", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
