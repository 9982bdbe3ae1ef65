package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/guttosm/boxcalc-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnprocessable indicates well-formed input that cannot be processed,
	// such as a product whose packaging data needs review.
	ErrCodeUnprocessable = "unprocessable_entity"
	// ErrCodeServiceUnavailable indicates storage is down or not configured.
	ErrCodeServiceUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	// Example: {"completeBoxes": 2, "loosePieces": 7, "is_complete_boxes": false}
	Data interface{} `json:"data" swaggertype:"object"`
	// Message is a translated confirmation of the action
	Message string `json:"message,omitempty" example:"Quote created successfully"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"quantity: must be a positive integer"`
	// Details maps a field or validation check to its problem
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches per-field details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	if len(details) > 0 {
		e.Details = details
	}
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusUnprocessableEntity:
		return ErrCodeUnprocessable
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusServiceUnavailable:
		return ErrCodeServiceUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// ReviewDetails numbers validation errors so they fit ErrorResponse.Details in order.
func ReviewDetails(errs []string) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	details := make(map[string]string, len(errs))
	for i, msg := range errs {
		details[fmt.Sprintf("check_%d", i+1)] = msg
	}
	return details
}

// BreakdownResponse describes how a quantity splits into boxes.
//
// @Description Full boxes and loose pieces for a quantity
// @Example {"quantity": 27, "pieces_per_box": 10, "completeBoxes": 2, "loosePieces": 7, "is_complete_boxes": false, "summary": "2 boxes + 7 loose pieces"}
type BreakdownResponse struct {
	Quantity     int `json:"quantity" example:"27"`
	PiecesPerBox int `json:"pieces_per_box" example:"10"`
	model.BoxBreakdown
	IsCompleteBoxes bool   `json:"is_complete_boxes" example:"false"`
	Summary         string `json:"summary" example:"2 boxes + 7 loose pieces"`
} // @name BreakdownResponse

// NewBreakdownResponse builds the response for quantity split into boxes of piecesPerBox.
func NewBreakdownResponse(quantity, piecesPerBox int, b model.BoxBreakdown, complete bool) BreakdownResponse {
	return BreakdownResponse{
		Quantity:        quantity,
		PiecesPerBox:    piecesPerBox,
		BoxBreakdown:    b,
		IsCompleteBoxes: complete,
		Summary:         BreakdownSummary(b),
	}
}

// BreakdownSummary renders a breakdown as "2 boxes + 7 loose pieces".
func BreakdownSummary(b model.BoxBreakdown) string {
	boxes := plural(b.CompleteBoxes, "box", "boxes")
	switch {
	case b.LoosePieces == 0:
		return boxes
	case b.CompleteBoxes == 0:
		return plural(b.LoosePieces, "loose piece", "loose pieces")
	default:
		return boxes + " + " + plural(b.LoosePieces, "loose piece", "loose pieces")
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// OrderResponse is the order calculation with a readable breakdown.
//
// @Description Order calculation with box breakdown
type OrderResponse struct {
	model.OrderSummary
	Summary string `json:"summary" example:"2 boxes + 7 loose pieces"`
} // @name OrderResponse

// NewOrderResponse wraps s with its breakdown summary.
func NewOrderResponse(s model.OrderSummary) OrderResponse {
	return OrderResponse{OrderSummary: s, Summary: BreakdownSummary(s.Breakdown)}
}
