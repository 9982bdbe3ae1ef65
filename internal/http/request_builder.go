package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boxcalc-service/internal/domain/dto"
	"github.com/guttosm/boxcalc-service/internal/i18n"
	"github.com/guttosm/boxcalc-service/internal/middleware"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// BuildRequest binds the JSON body of c into a new T, running its binding tags.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildQuery binds the query string of c into a new T, running its binding tags.
func BuildQuery[T any](c *gin.Context) (*T, error) {
	var q T
	if err := c.ShouldBindQuery(&q); err != nil {
		return nil, err
	}
	return &q, nil
}

// ResponseBuilder writes the success and error envelopes.
// Uses sync.Pool for DTO reuse to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

func (b *ResponseBuilder) translate(key string) string {
	return i18n.GetTranslator().Translate(key, i18n.GetLocale(b.c))
}

// Success sends a successful response with the given data and translated message key.
// An empty key sends no message.
func (b *ResponseBuilder) Success(statusCode int, messageKey string, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()
	if messageKey != "" {
		resp.Message = b.translate(messageKey)
	}

	// Gin serializes synchronously, so the response can go back to the pool.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(messageKey string, data interface{}) {
	b.Success(http.StatusOK, messageKey, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(messageKey string, data interface{}) {
	b.Success(http.StatusCreated, messageKey, data)
}

// Error sends an error response with the given status code and message key.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, err, nil)
}

// ErrorWithDetails is Error with per-field or per-check details.
// err is recorded on the gin context for the error handler and request logger.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, err error, details map[string]string) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = b.translate(messageKey)
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()
	if len(details) > 0 {
		resp.Details = details
	}

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}
