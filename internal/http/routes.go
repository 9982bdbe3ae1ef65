package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines routes that can be registered on a router group.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProductRoutes registers the catalog endpoints.
type ProductRoutes struct {
	handler *Handler
}

// NewProductRoutes creates a new ProductRoutes instance.
func NewProductRoutes(handler *Handler) *ProductRoutes {
	return &ProductRoutes{handler: handler}
}

// RegisterPublicRoutes registers the /products routes.
func (r *ProductRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.POST("/validate", r.handler.ValidateProduct)
	products.POST("/prepare", r.handler.PrepareProduct)
	products.POST("/import", r.handler.ImportProducts)
	products.GET("", r.handler.ListProducts)
	products.GET("/:id", r.handler.GetProduct)
}

// OrderRoutes registers the calculation, shipping and quote endpoints.
type OrderRoutes struct {
	handler *Handler
}

// NewOrderRoutes creates a new OrderRoutes instance.
func NewOrderRoutes(handler *Handler) *OrderRoutes {
	return &OrderRoutes{handler: handler}
}

// RegisterPublicRoutes registers the order, breakdown, shipping and quote routes.
func (r *OrderRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders/calculate", r.handler.CalculateOrder)
	rg.GET("/boxes/breakdown", r.handler.BoxBreakdown)
	rg.POST("/shipping/estimate", r.handler.EstimateShipping)
	rg.POST("/quotes", r.handler.CreateQuote)
}
