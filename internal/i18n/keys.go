// Package i18n provides internationalization support for the box calculator service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyServiceUnavailable indicates storage is down or not configured.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyValidationQuantity indicates a quantity that is not a positive integer.
	ErrKeyValidationQuantity = "error.validation.quantity"
	// ErrKeyValidationPiecesPerBox indicates a non-positive pieces per box.
	ErrKeyValidationPiecesPerBox = "error.validation.pieces_per_box"
	// ErrKeyUnknownShippingMethod indicates a shipping method outside the supported set.
	ErrKeyUnknownShippingMethod = "error.validation.shipping_method"
	// ErrKeyProductRequired indicates neither product_id nor product was sent.
	ErrKeyProductRequired = "error.product_required"
	// ErrKeyProductNotFound indicates no stored product matches.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyProductNeedsReview indicates packaging data unusable for orders.
	ErrKeyProductNeedsReview = "error.product_needs_review"
	// ErrKeyEmptyBatch indicates an import without products.
	ErrKeyEmptyBatch = "error.import.empty"
	// ErrKeyBatchTooLarge indicates an import above the batch limit.
	ErrKeyBatchTooLarge = "error.import.too_large"
)

// Success message translation keys.
const (
	SuccessKeyProductValidated    = "success.product_validated"
	SuccessKeyProductPrepared     = "success.product_prepared"
	SuccessKeyProductsImported    = "success.products_imported"
	SuccessKeyOrderCalculated     = "success.order_calculated"
	SuccessKeyBreakdownCalculated = "success.breakdown_calculated"
	SuccessKeyShippingEstimated   = "success.shipping_estimated"
	SuccessKeyQuoteCreated        = "success.quote_created"
)
