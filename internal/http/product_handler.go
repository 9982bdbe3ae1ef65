package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boxcalc-service/internal/domain/dto"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/guttosm/boxcalc-service/internal/i18n"
	"github.com/guttosm/boxcalc-service/internal/middleware"
	"github.com/guttosm/boxcalc-service/internal/service"
)

// ValidateProduct handles POST /api/products/validate requests.
//
// @Summary      Validate product packaging data
// @Description  Runs the packaging checks on a product without storing it. Failed checks are listed in order; the request itself still succeeds.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        request body dto.ProductPayload true "Product to validate"
// @Success      200 {object} dto.SuccessResponse{data=model.ValidationResult} "Validation result"
// @Failure      400 {object} dto.ErrorResponse "Malformed body"
// @Router       /api/products/validate [post]
func (h *Handler) ValidateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ProductPayload](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	builder.SuccessOK(i18n.SuccessKeyProductValidated, service.ValidateProduct(req.ToModel()))
}

// PrepareProduct handles POST /api/products/prepare requests.
//
// @Summary      Prepare and store a product
// @Description  Derives unit weight and review flags, then upserts the product by SKU when the database is enabled. Products with bad packaging data are stored flagged for manual review.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.ProductPayload true "Raw product"
// @Success      200 {object} dto.SuccessResponse{data=model.BoxProduct} "Prepared product"
// @Failure      400 {object} dto.ErrorResponse "Malformed body or missing SKU"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products/prepare [post]
func (h *Handler) PrepareProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ProductPayload](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	prepared, err := h.products.Prepare(c.Request.Context(), req.ToModel())
	if err != nil {
		middleware.AuditLogError(c, model.ActionProductPrepared, "Product preparation failed", err, map[string]interface{}{
			"sku": req.SKU,
		})
		respondServiceError(builder, err)
		return
	}

	middleware.AuditLog(c, model.ActionProductPrepared, "Product prepared", map[string]interface{}{
		"sku":                    prepared.SKU,
		"product_id":             prepared.ID,
		"requires_manual_review": prepared.RequiresManualReview,
	})
	builder.SuccessOK(i18n.SuccessKeyProductPrepared, prepared)
}

// ImportProducts handles POST /api/products/import requests.
//
// @Summary      Import a batch of products
// @Description  Prepares and stores every product. Invalid records are stored flagged for review; records that cannot be stored are counted as failed without stopping the batch.
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.ImportProductsRequest true "Products to import"
// @Success      200 {object} dto.SuccessResponse{data=model.ImportSummary} "Import summary"
// @Failure      400 {object} dto.ErrorResponse "Empty or oversized batch"
// @Failure      503 {object} dto.ErrorResponse "Database not configured"
// @Router       /api/products/import [post]
func (h *Handler) ImportProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ImportProductsRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	summary, err := h.products.ImportBatch(c.Request.Context(), req.ToModels())
	if err != nil {
		middleware.AuditLogError(c, model.ActionProductsImported, "Product import rejected", err, map[string]interface{}{
			"total": len(req.Products),
		})
		respondServiceError(builder, err)
		return
	}

	middleware.AuditLog(c, model.ActionProductsImported, "Products imported", map[string]interface{}{
		"total":        summary.Total,
		"valid":        summary.Valid,
		"needs_review": summary.NeedsReview,
		"failed":       summary.Failed,
	})
	builder.SuccessOK(i18n.SuccessKeyProductsImported, summary)
}

// GetProduct handles GET /api/products/:id requests.
//
// @Summary      Get a product
// @Tags         Products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse{data=model.BoxProduct} "Stored product"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK("", product)
}

// ListProducts handles GET /api/products requests.
//
// @Summary      List products
// @Description  Lists stored products, newest first. Use requires_review=true to get the manual review queue.
// @Tags         Products
// @Produce      json
// @Param        requires_review query bool false "Filter by review flag"
// @Param        supplier_id query string false "Filter by supplier"
// @Param        limit query int false "Page size (default 50, max 500)"
// @Param        skip query int false "Records to skip"
// @Success      200 {object} dto.SuccessResponse{data=model.ProductPage} "Product page"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	q, err := BuildQuery[dto.ListProductsQuery](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	page, err := h.products.List(c.Request.Context(), q.ToQuery())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.Success(http.StatusOK, "", page)
}
