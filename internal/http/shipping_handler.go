package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/boxcalc-service/internal/domain/dto"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/guttosm/boxcalc-service/internal/i18n"
	"github.com/guttosm/boxcalc-service/internal/metrics"
	"github.com/guttosm/boxcalc-service/internal/middleware"
)

// EstimateShipping handles POST /api/shipping/estimate requests.
//
// @Summary      Estimate shipping cost
// @Description  Bills the larger of actual weight and volumetric weight (volume × 200 kg/m³) at the method's rate per kg.
// @Tags         Shipping
// @Accept       json
// @Produce      json
// @Param        request body dto.ShippingEstimateRequest true "Shipment totals"
// @Success      200 {object} dto.SuccessResponse{data=model.ShippingEstimate} "Shipping estimate"
// @Failure      400 {object} dto.ErrorResponse "Negative totals or unknown method"
// @Router       /api/shipping/estimate [post]
func (h *Handler) EstimateShipping(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ShippingEstimateRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	estimate, err := h.shipping.Estimate(req.TotalWeightKg, req.TotalVolumeM3, req.Method)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	metrics.RecordShippingEstimate(string(req.Method))
	builder.SuccessOK(i18n.SuccessKeyShippingEstimated, estimate)
}

// CreateQuote handles POST /api/quotes requests.
//
// @Summary      Quote an order line
// @Description  Combines the order calculation, the shipping estimate and, when the product has a box price, the merchandise subtotal. Money amounts are decimal strings rounded to cents.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Product, quantity and shipping method"
// @Success      200 {object} dto.SuccessResponse{data=model.Quote} "Quote"
// @Failure      400 {object} dto.ErrorResponse "Missing product, non-positive quantity or unknown method"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      422 {object} dto.ErrorResponse "Product needs review"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/quotes [post]
func (h *Handler) CreateQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.QuoteRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	quote, err := h.quotes.Quote(c.Request.Context(), req.ToInput())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	middleware.AuditLog(c, model.ActionQuoteCreated, "Quote created", map[string]interface{}{
		"sku":      quote.SKU,
		"quantity": quote.Quantity,
		"method":   string(quote.Shipping.Method),
		"total":    quote.Pricing.Total.String(),
	})
	builder.SuccessOK(i18n.SuccessKeyQuoteCreated, quote)
}
