package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boxcalc-service/internal/domain/dto"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/guttosm/boxcalc-service/internal/i18n"
	"github.com/guttosm/boxcalc-service/internal/middleware"
	"github.com/guttosm/boxcalc-service/internal/service"
)

var (
	errPiecesPerBox     = errors.New("pieces_per_box must be positive")
	errNegativeQuantity = errors.New("quantity must not be negative")
)

// CalculateOrder handles POST /api/orders/calculate requests.
//
// @Summary      Calculate an order line
// @Description  Computes unit weight, total weight, boxes needed, volume and the box breakdown for a quantity of a stored or inline product. Products with bad packaging data, or stored products flagged for review, are rejected with 422 and the failed checks.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body dto.CalculateOrderRequest true "Product and quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderResponse} "Order calculation"
// @Failure      400 {object} dto.ErrorResponse "Missing product or non-positive quantity"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      422 {object} dto.ErrorResponse "Product needs review"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/orders/calculate [post]
func (h *Handler) CalculateOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CalculateOrderRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	summary, err := h.quotes.CalculateOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	middleware.AuditLog(c, model.ActionOrderCalculated, "Order calculated", map[string]interface{}{
		"sku":          summary.SKU,
		"quantity":     summary.Quantity,
		"boxes_needed": summary.Order.BoxesNeeded,
	})
	builder.SuccessOK(i18n.SuccessKeyOrderCalculated, dto.NewOrderResponse(*summary))
}

// BoxBreakdown handles GET /api/boxes/breakdown requests.
//
// @Summary      Split a quantity into boxes
// @Description  Returns complete boxes, loose pieces and whether the quantity fills whole boxes.
// @Tags         Orders
// @Produce      json
// @Param        quantity query int true "Units ordered (zero or more)"
// @Param        pieces_per_box query int true "Units per box (positive)"
// @Success      200 {object} dto.SuccessResponse{data=dto.BreakdownResponse} "Box breakdown"
// @Failure      400 {object} dto.ErrorResponse "Invalid quantity or pieces per box"
// @Router       /api/boxes/breakdown [get]
func (h *Handler) BoxBreakdown(c *gin.Context) {
	builder := NewResponseBuilder(c)

	q, err := BuildQuery[dto.BreakdownQuery](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}
	if q.PiecesPerBox <= 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationPiecesPerBox, errPiecesPerBox)
		return
	}
	if q.Quantity < 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantity, errNegativeQuantity)
		return
	}

	breakdown := service.GetBoxBreakdown(q.Quantity, q.PiecesPerBox)
	complete := service.IsCompleteBoxes(q.Quantity, q.PiecesPerBox)
	builder.SuccessOK(i18n.SuccessKeyBreakdownCalculated,
		dto.NewBreakdownResponse(q.Quantity, q.PiecesPerBox, breakdown, complete))
}
