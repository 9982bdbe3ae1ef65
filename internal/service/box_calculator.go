// Package service contains the business logic for the box calculator service.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/boxcalc-service/internal/domain/model"
)

// Validation messages, in the order the checks run.
const (
	MsgInvalidWeight = "Peso de caja inválido o faltante"
	MsgInvalidPieces = "Piezas por caja inválido o faltante"
	MsgInvalidLength = "Largo de caja inválido o faltante"
	MsgInvalidWidth  = "Ancho de caja inválido o faltante"
	MsgInvalidHeight = "Alto de caja inválido o faltante"
)

// cm3PerM3 converts cubic centimetres to cubic metres.
const cm3PerM3 = 1_000_000

// ErrInvalidQuantity is returned when an order quantity is not a positive integer.
var ErrInvalidQuantity = errors.New("invalid quantity: must be a positive integer")

// ValidateProduct checks the packaging data of p.
// Every check runs so the result lists all problems at once.
func ValidateProduct(p model.BoxProduct) model.ValidationResult {
	box := p.BoxInfo
	errs := make([]string, 0, 5)

	if !(box.WeightKg > 0) {
		errs = append(errs, MsgInvalidWeight)
	}
	if box.PiecesPerBox <= 0 {
		errs = append(errs, MsgInvalidPieces)
	}
	if !(box.Dimensions.LengthCm > 0) {
		errs = append(errs, MsgInvalidLength)
	}
	if !(box.Dimensions.WidthCm > 0) {
		errs = append(errs, MsgInvalidWidth)
	}
	if !(box.Dimensions.HeightCm > 0) {
		errs = append(errs, MsgInvalidHeight)
	}

	return model.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// CalculateUnitWeight returns the weight of a single unit, or false when the
// product's packaging data is invalid. The value is not rounded.
func CalculateUnitWeight(p model.BoxProduct) (float64, bool) {
	if !ValidateProduct(p).IsValid {
		return 0, false
	}
	return p.BoxInfo.WeightKg / float64(p.BoxInfo.PiecesPerBox), true
}

// CalculateOrderInfo derives order-level figures for quantity units of p.
//
// A non-positive quantity is a caller bug and yields ErrInvalidQuantity.
// Invalid packaging data is an expected condition and yields (nil, nil);
// callers should flag the product for review instead of failing.
// Volume is charged per box shipped, so a partial box counts as a full one.
func CalculateOrderInfo(p model.BoxProduct, quantity int) (*model.OrderItemCalculation, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	unitWeight, ok := CalculateUnitWeight(p)
	if !ok {
		return nil, nil
	}

	piecesPerBox := p.BoxInfo.PiecesPerBox
	// Ceiling division without quantity+piecesPerBox-1, which overflows near math.MaxInt.
	boxesNeeded := quantity / piecesPerBox
	if quantity%piecesPerBox != 0 {
		boxesNeeded++
	}

	return &model.OrderItemCalculation{
		UnitWeightKg:    unitWeight,
		TotalWeightKg:   unitWeight * float64(quantity),
		BoxesNeeded:     boxesNeeded,
		IsCompleteBoxes: IsCompleteBoxes(quantity, piecesPerBox),
		VolumeM3:        CalculateBoxVolume(p) * float64(boxesNeeded),
	}, nil
}

// CalculateBoxVolume returns the volume of one box in cubic metres.
// It does not validate the dimensions.
func CalculateBoxVolume(p model.BoxProduct) float64 {
	d := p.BoxInfo.Dimensions
	return (d.LengthCm * d.WidthCm * d.HeightCm) / cm3PerM3
}

// IsCompleteBoxes reports whether quantity fills whole boxes exactly.
// It panics if piecesPerBox is not positive.
func IsCompleteBoxes(quantity, piecesPerBox int) bool {
	mustPositivePieces(piecesPerBox)
	return quantity%piecesPerBox == 0
}

// GetBoxBreakdown splits quantity into complete boxes and loose pieces.
// It panics if piecesPerBox is not positive.
func GetBoxBreakdown(quantity, piecesPerBox int) model.BoxBreakdown {
	mustPositivePieces(piecesPerBox)
	return model.BoxBreakdown{
		CompleteBoxes: quantity / piecesPerBox,
		LoosePieces:   quantity % piecesPerBox,
	}
}

func mustPositivePieces(piecesPerBox int) {
	if piecesPerBox <= 0 {
		panic(fmt.Sprintf("service: pieces per box must be positive, got %d", piecesPerBox))
	}
}

// PrepareProductForDB returns a copy of raw with its derived fields recomputed
// and UpdatedAt stamped with the current UTC time.
func PrepareProductForDB(raw model.BoxProduct) model.BoxProduct {
	return PrepareProductForDBAt(raw, time.Now().UTC())
}

// PrepareProductForDBAt is PrepareProductForDB with an explicit timestamp.
// CreatedAt is left untouched.
func PrepareProductForDBAt(raw model.BoxProduct, now time.Time) model.BoxProduct {
	prepared := raw.Clone()

	result := ValidateProduct(raw)
	prepared.IsValid = result.IsValid
	prepared.RequiresManualReview = !result.IsValid
	prepared.UnitWeightKg = nil
	prepared.ValidationErrors = nil

	if unitWeight, ok := CalculateUnitWeight(raw); ok {
		prepared.UnitWeightKg = &unitWeight
	}
	if len(result.Errors) > 0 {
		prepared.ValidationErrors = result.Errors
	}

	prepared.UpdatedAt = now
	return prepared
}
