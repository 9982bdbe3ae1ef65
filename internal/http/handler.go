// Package http exposes the box calculator over a gin HTTP API.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/boxcalc-service/internal/circuitbreaker"
	"github.com/guttosm/boxcalc-service/internal/domain/dto"
	"github.com/guttosm/boxcalc-service/internal/i18n"
	"github.com/guttosm/boxcalc-service/internal/repository"
	"github.com/guttosm/boxcalc-service/internal/service"
)

// Handler provides HTTP handlers for the catalog, order, breakdown, shipping and quote routes.
type Handler struct {
	products service.ProductService
	quotes   service.QuoteService
	shipping *service.ShippingEstimator
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithShippingEstimator sets the estimator used by the shipping estimate endpoint.
// Quotes use the estimator their QuoteService was built with.
func WithShippingEstimator(e *service.ShippingEstimator) HandlerOption {
	return func(h *Handler) {
		if e != nil {
			h.shipping = e
		}
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(products service.ProductService, quotes service.QuoteService, opts ...HandlerOption) *Handler {
	h := &Handler{
		products: products,
		quotes:   quotes,
		shipping: service.DefaultShippingEstimator,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// respondServiceError maps service errors to their status and message key.
func respondServiceError(b *ResponseBuilder, err error) {
	var review *service.ProductReviewError
	switch {
	case errors.As(err, &review):
		b.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.ErrKeyProductNeedsReview, err, dto.ReviewDetails(review.Errors))
	case errors.Is(err, service.ErrInvalidQuantity):
		b.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantity, err)
	case errors.Is(err, service.ErrProductRequired):
		b.Error(http.StatusBadRequest, i18n.ErrKeyProductRequired, err)
	case errors.Is(err, service.ErrUnknownShippingMethod):
		b.Error(http.StatusBadRequest, i18n.ErrKeyUnknownShippingMethod, err)
	case errors.Is(err, service.ErrEmptyBatch):
		b.Error(http.StatusBadRequest, i18n.ErrKeyEmptyBatch, err)
	case errors.Is(err, service.ErrBatchTooLarge):
		b.Error(http.StatusBadRequest, i18n.ErrKeyBatchTooLarge, err)
	case errors.Is(err, repository.ErrMissingSKU):
		b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err, map[string]string{"sku": "is required"})
	case errors.Is(err, service.ErrProductNotFound):
		b.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		b.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// respondBindError answers a request whose body or query failed to bind.
func respondBindError(b *ResponseBuilder, err error) {
	key := i18n.ErrKeyInvalidRequestBody
	if dto.HasTag(err, dto.TagShippingMethod) {
		key = i18n.ErrKeyUnknownShippingMethod
	}
	b.ErrorWithDetails(http.StatusBadRequest, key, err, dto.ValidationDetails(err))
}
