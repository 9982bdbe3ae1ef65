package model

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ShippingMethod is the carrier service level used to price a shipment.
type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
	ShippingFreight  ShippingMethod = "freight"
)

// ShippingMethods lists every supported method in display order.
var ShippingMethods = []ShippingMethod{ShippingStandard, ShippingExpress, ShippingFreight}

// Valid reports whether m is one of the supported methods.
func (m ShippingMethod) Valid() bool {
	switch m {
	case ShippingStandard, ShippingExpress, ShippingFreight:
		return true
	}
	return false
}

// ParseShippingMethod normalizes s and returns the matching method.
func ParseShippingMethod(s string) (ShippingMethod, bool) {
	m := ShippingMethod(strings.ToLower(strings.TrimSpace(s)))
	return m, m.Valid()
}

// UnmarshalJSON accepts any case and surrounding spaces, so "Standard" decodes
// to ShippingStandard. Unknown values are kept lower-cased for validation to reject.
func (m *ShippingMethod) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m, _ = ParseShippingMethod(s)
	return nil
}

// ShippingEstimate breaks down how a shipping cost was obtained.
//
// @Description Shipping cost estimate with billable weight details
// @Example {"method": "standard", "actual_weight_kg": 50, "volumetric_weight_kg": 20, "chargeable_weight_kg": 50, "rate_per_kg": 5, "cost": 250}
type ShippingEstimate struct {
	Method             ShippingMethod `json:"method" example:"standard"`
	ActualWeightKg     float64        `json:"actual_weight_kg" example:"50"`
	VolumetricWeightKg float64        `json:"volumetric_weight_kg" example:"20"`
	ChargeableWeightKg float64        `json:"chargeable_weight_kg" example:"50"`
	RatePerKg          float64        `json:"rate_per_kg" example:"5"`
	Cost               float64        `json:"cost" example:"250"`
}

// QuotePricing holds the money amounts of a quote, rounded to cents.
// Merchandise fields are absent when the product has no box price.
type QuotePricing struct {
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty" swaggertype:"string" example:"15"`
	Merchandise *decimal.Decimal `json:"merchandise,omitempty" swaggertype:"string" example:"300"`
	Shipping    decimal.Decimal  `json:"shipping" swaggertype:"string" example:"200"`
	Total       decimal.Decimal  `json:"total" swaggertype:"string" example:"500"`
}

// OrderSummary is the logistics view of one order line.
//
// @Description Order calculation with box breakdown for an order line
type OrderSummary struct {
	ProductID string               `json:"product_id,omitempty" example:"9b2f6f0e-8a43-4c55-9d0a-7f8a1c5e2b10"`
	SKU       string               `json:"sku,omitempty" example:"MUG-11-WHT"`
	Quantity  int                  `json:"quantity" example:"27"`
	Order     OrderItemCalculation `json:"order"`
	Breakdown BoxBreakdown         `json:"breakdown"`
}

// Quote is the price and logistics summary shown for a product and quantity.
//
// @Description Price and logistics summary for an order line
type Quote struct {
	OrderSummary
	Shipping ShippingEstimate `json:"shipping"`
	Pricing  QuotePricing     `json:"pricing"`
}

// QuoteInput identifies the product to quote, either by stored ID or inline.
// Product takes precedence when both are given.
type QuoteInput struct {
	ProductID string
	Product   *BoxProduct
	Quantity  int
	Method    ShippingMethod
}
