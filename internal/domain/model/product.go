// Package model defines the core domain entities for the box calculator service.
package model

import "time"

// Dimensions holds the outer measurements of one shipping box in centimetres.
//
// @Description Box dimensions in centimetres
type Dimensions struct {
	LengthCm float64 `json:"length_cm" bson:"length_cm" example:"40"`
	WidthCm  float64 `json:"width_cm" bson:"width_cm" example:"30"`
	HeightCm float64 `json:"height_cm" bson:"height_cm" example:"20"`
}

// BoxInfo holds the packaging facts of one full box as shipped by the supplier.
//
// @Description Supplier packaging data for one full box
type BoxInfo struct {
	// WeightKg is the weight of one full box
	WeightKg float64 `json:"weight_kg" bson:"weight_kg" example:"20"`
	// PiecesPerBox is the number of units in one box
	PiecesPerBox int        `json:"pieces_per_box" bson:"pieces_per_box" example:"10"`
	Dimensions   Dimensions `json:"dimensions" bson:"dimensions"`
	PricePerBox  *float64   `json:"price_per_box,omitempty" bson:"price_per_box,omitempty" example:"150"`
}

// BoxProduct is a catalog product sold by the unit but stocked by the box.
//
// UnitWeightKg, IsValid, RequiresManualReview and ValidationErrors are derived
// by PrepareProductForDB and must not be trusted without re-validation.
//
// @Description Catalog product with box packaging data
type BoxProduct struct {
	ID                   string                 `json:"id" bson:"_id,omitempty" example:"9b2f6f0e-8a43-4c55-9d0a-7f8a1c5e2b10"`
	Name                 string                 `json:"name" bson:"name" example:"Taza cerámica 11oz"`
	SKU                  string                 `json:"sku" bson:"sku" example:"MUG-11-WHT"`
	BoxInfo              BoxInfo                `json:"box_info" bson:"box_info"`
	TechnicalInfo        map[string]interface{} `json:"technical_info,omitempty" bson:"technical_info,omitempty" swaggertype:"object"`
	UnitWeightKg         *float64               `json:"unit_weight_kg,omitempty" bson:"unit_weight_kg,omitempty" example:"2"`
	IsValid              bool                   `json:"is_valid" bson:"is_valid"`
	RequiresManualReview bool                   `json:"requires_manual_review" bson:"requires_manual_review"`
	ValidationErrors     []string               `json:"validation_errors,omitempty" bson:"validation_errors,omitempty"`
	SupplierID           string                 `json:"supplier_id" bson:"supplier_id" example:"supplier-01"`
	CreatedAt            time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at" bson:"updated_at"`
}

// Clone returns a deep copy of p. Nested values in TechnicalInfo are shared.
func (p BoxProduct) Clone() BoxProduct {
	c := p
	if p.BoxInfo.PricePerBox != nil {
		price := *p.BoxInfo.PricePerBox
		c.BoxInfo.PricePerBox = &price
	}
	if p.UnitWeightKg != nil {
		w := *p.UnitWeightKg
		c.UnitWeightKg = &w
	}
	if p.TechnicalInfo != nil {
		c.TechnicalInfo = make(map[string]interface{}, len(p.TechnicalInfo))
		for k, v := range p.TechnicalInfo {
			c.TechnicalInfo[k] = v
		}
	}
	if p.ValidationErrors != nil {
		c.ValidationErrors = append([]string(nil), p.ValidationErrors...)
	}
	return c
}

// ValidationResult is the outcome of checking a product's packaging data.
// Errors keeps the order in which the checks ran.
//
// @Description Packaging data validation result
type ValidationResult struct {
	IsValid bool     `json:"isValid" example:"false"`
	Errors  []string `json:"errors"`
}

// OrderItemCalculation holds the figures derived for one (product, quantity) pair.
//
// @Description Order-level weight, box count and volume for a requested quantity
// @Example {"unit_weight_kg": 2, "total_weight_kg": 40, "boxes_needed": 2, "is_complete_boxes": true, "volume_m3": 0.048}
type OrderItemCalculation struct {
	UnitWeightKg    float64 `json:"unit_weight_kg" example:"2"`
	TotalWeightKg   float64 `json:"total_weight_kg" example:"40"`
	BoxesNeeded     int     `json:"boxes_needed" example:"2"`
	IsCompleteBoxes bool    `json:"is_complete_boxes" example:"true"`
	VolumeM3        float64 `json:"volume_m3" example:"0.048"`
}

// BoxBreakdown splits a unit quantity into full boxes plus loose pieces.
//
// @Description Full boxes and loose pieces for a quantity
// @Example {"completeBoxes": 2, "loosePieces": 7}
type BoxBreakdown struct {
	CompleteBoxes int `json:"completeBoxes" example:"2"`
	LoosePieces   int `json:"loosePieces" example:"7"`
}

// Total returns the unit quantity the breakdown represents.
func (b BoxBreakdown) Total(piecesPerBox int) int {
	return b.CompleteBoxes*piecesPerBox + b.LoosePieces
}

// ProductQuery filters catalog listings.
type ProductQuery struct {
	RequiresReview *bool
	SupplierID     string
	Limit          int
	Skip           int
}

// ImportSummary reports the outcome of a batch product import.
// Products needing review are stored and counted, not rejected.
//
// @Description Batch import outcome
type ImportSummary struct {
	Total       int          `json:"total" example:"3"`
	Valid       int          `json:"valid" example:"2"`
	NeedsReview int          `json:"needs_review" example:"1"`
	Failed      int          `json:"failed" example:"0"`
	Errors      []string     `json:"errors,omitempty"`
	Products    []BoxProduct `json:"products"`
}

// ProductPage is one page of a product listing.
//
// @Description Paged product listing
type ProductPage struct {
	Items []BoxProduct `json:"items"`
	Total int64        `json:"total" example:"42"`
	Limit int          `json:"limit" example:"50"`
	Skip  int          `json:"skip" example:"0"`
}
