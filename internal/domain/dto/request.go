// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/guttosm/boxcalc-service/internal/domain/model"
)

// DimensionsPayload carries box dimensions in centimetres.
//
// @Description Box dimensions in centimetres
type DimensionsPayload struct {
	LengthCm float64 `json:"length_cm" example:"40"`
	WidthCm  float64 `json:"width_cm" example:"30"`
	HeightCm float64 `json:"height_cm" example:"20"`
} // @name DimensionsPayload

// BoxInfoPayload carries the supplier packaging data of one box.
// Missing or non-positive values are reported by validation, not rejected by binding.
//
// @Description Supplier packaging data for one full box
type BoxInfoPayload struct {
	WeightKg     float64           `json:"weight_kg" example:"20"`
	PiecesPerBox int               `json:"pieces_per_box" example:"10"`
	Dimensions   DimensionsPayload `json:"dimensions"`
	PricePerBox  *float64          `json:"price_per_box,omitempty" binding:"omitempty,gte=0" example:"150"`
} // @name BoxInfoPayload

// ProductPayload is a product as sent by a supplier feed or the catalog admin.
//
// @Description Catalog product with box packaging data
// @Example {"name": "Taza cerámica 11oz", "sku": "MUG-11-WHT", "supplier_id": "supplier-01", "box_info": {"weight_kg": 20, "pieces_per_box": 10, "dimensions": {"length_cm": 40, "width_cm": 30, "height_cm": 20}, "price_per_box": 150}}
type ProductPayload struct {
	Name          string                 `json:"name" binding:"max=200" example:"Taza cerámica 11oz"`
	SKU           string                 `json:"sku" binding:"max=64" example:"MUG-11-WHT"`
	SupplierID    string                 `json:"supplier_id" binding:"max=64" example:"supplier-01"`
	BoxInfo       BoxInfoPayload         `json:"box_info"`
	TechnicalInfo map[string]interface{} `json:"technical_info,omitempty" swaggertype:"object"`
} // @name ProductPayload

// ToModel converts the payload to a domain product without derived fields.
func (p ProductPayload) ToModel() model.BoxProduct {
	product := model.BoxProduct{
		Name:       p.Name,
		SKU:        p.SKU,
		SupplierID: p.SupplierID,
		BoxInfo: model.BoxInfo{
			WeightKg:     p.BoxInfo.WeightKg,
			PiecesPerBox: p.BoxInfo.PiecesPerBox,
			Dimensions: model.Dimensions{
				LengthCm: p.BoxInfo.Dimensions.LengthCm,
				WidthCm:  p.BoxInfo.Dimensions.WidthCm,
				HeightCm: p.BoxInfo.Dimensions.HeightCm,
			},
		},
		TechnicalInfo: p.TechnicalInfo,
	}
	if p.BoxInfo.PricePerBox != nil {
		price := *p.BoxInfo.PricePerBox
		product.BoxInfo.PricePerBox = &price
	}
	return product
}

// ImportProductsRequest is the body of a batch import.
//
// @Description Batch of supplier products to prepare and store
type ImportProductsRequest struct {
	Products []ProductPayload `json:"products" binding:"dive"`
} // @name ImportProductsRequest

// ToModels converts every payload in order.
func (r ImportProductsRequest) ToModels() []model.BoxProduct {
	products := make([]model.BoxProduct, len(r.Products))
	for i, p := range r.Products {
		products[i] = p.ToModel()
	}
	return products
}

// CalculateOrderRequest identifies a product and a unit quantity.
// Product takes precedence over ProductID when both are sent.
//
// @Description Order line to calculate, by stored product ID or inline product
// @Example {"product_id": "9b2f6f0e-8a43-4c55-9d0a-7f8a1c5e2b10", "quantity": 27}
type CalculateOrderRequest struct {
	ProductID string          `json:"product_id,omitempty" example:"9b2f6f0e-8a43-4c55-9d0a-7f8a1c5e2b10"`
	Product   *ProductPayload `json:"product,omitempty"`
	// Quantity is checked by the service so a non-positive value gets a specific message.
	Quantity int `json:"quantity" example:"27"`
} // @name CalculateOrderRequest

// ToInput converts the request to a service input.
func (r CalculateOrderRequest) ToInput() model.QuoteInput {
	in := model.QuoteInput{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
	}
	if r.Product != nil {
		p := r.Product.ToModel()
		in.Product = &p
	}
	return in
}

// QuoteRequest is an order line plus the shipping method to price it with.
//
// @Description Order line and shipping method to quote
// @Example {"product_id": "9b2f6f0e-8a43-4c55-9d0a-7f8a1c5e2b10", "quantity": 20, "shipping_method": "standard"}
type QuoteRequest struct {
	CalculateOrderRequest
	ShippingMethod model.ShippingMethod `json:"shipping_method" binding:"required,shipping_method" example:"standard" enums:"standard,express,freight"`
} // @name QuoteRequest

// ToInput converts the request to a service input.
func (r QuoteRequest) ToInput() model.QuoteInput {
	in := r.CalculateOrderRequest.ToInput()
	in.Method = r.ShippingMethod
	return in
}

// ShippingEstimateRequest prices a shipment from its totals.
//
// @Description Shipment totals and method to price
// @Example {"total_weight_kg": 50, "total_volume_m3": 0.1, "method": "standard"}
type ShippingEstimateRequest struct {
	TotalWeightKg float64              `json:"total_weight_kg" binding:"gte=0" example:"50"`
	TotalVolumeM3 float64              `json:"total_volume_m3" binding:"gte=0" example:"0.1"`
	Method        model.ShippingMethod `json:"method" binding:"required,shipping_method" example:"standard" enums:"standard,express,freight"`
} // @name ShippingEstimateRequest

// BreakdownQuery holds the query parameters of the box breakdown endpoint.
// Both values are checked by the handler.
type BreakdownQuery struct {
	Quantity     int `form:"quantity"`
	PiecesPerBox int `form:"pieces_per_box"`
}

// ListProductsQuery holds the query parameters of the product listing.
type ListProductsQuery struct {
	RequiresReview *bool  `form:"requires_review"`
	SupplierID     string `form:"supplier_id"`
	Limit          int    `form:"limit" binding:"gte=0,lte=500"`
	Skip           int    `form:"skip" binding:"gte=0"`
}

// ToQuery converts the parameters to a repository query.
func (q ListProductsQuery) ToQuery() model.ProductQuery {
	return model.ProductQuery{
		RequiresReview: q.RequiresReview,
		SupplierID:     q.SupplierID,
		Limit:          q.Limit,
		Skip:           q.Skip,
	}
}
