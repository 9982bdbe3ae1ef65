package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/guttosm/boxcalc-service/internal/domain/model"
)

// DefaultVolumetricFactor is the carrier convention in kg per cubic metre.
const DefaultVolumetricFactor = 200.0

// DefaultShippingRates are the per-kg rates for each shipping method.
var DefaultShippingRates = map[model.ShippingMethod]float64{
	model.ShippingStandard: 5.0,
	model.ShippingExpress:  8.5,
	model.ShippingFreight:  3.2,
}

// ErrUnknownShippingMethod is returned for a method outside the supported set.
var ErrUnknownShippingMethod = errors.New("unknown shipping method")

// DefaultShippingEstimator uses DefaultVolumetricFactor and DefaultShippingRates.
var DefaultShippingEstimator = NewShippingEstimator()

// ShippingOption configures a ShippingEstimator.
type ShippingOption func(*ShippingEstimator)

// ShippingEstimator prices shipments by chargeable weight.
// It is immutable after construction and safe for concurrent use.
type ShippingEstimator struct {
	volumetricFactor float64
	rates            map[model.ShippingMethod]float64
}

// NewShippingEstimator creates a ShippingEstimator with the given options.
func NewShippingEstimator(opts ...ShippingOption) *ShippingEstimator {
	e := &ShippingEstimator{
		volumetricFactor: DefaultVolumetricFactor,
		rates:            copyRates(DefaultShippingRates),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithVolumetricFactor overrides the kg per cubic metre factor.
// Non-positive values are ignored.
func WithVolumetricFactor(factor float64) ShippingOption {
	return func(e *ShippingEstimator) {
		if factor > 0 {
			e.volumetricFactor = factor
		}
	}
}

// WithRates overrides the per-kg rate of the listed methods.
// Unknown methods and non-positive rates are ignored.
func WithRates(rates map[model.ShippingMethod]float64) ShippingOption {
	return func(e *ShippingEstimator) {
		for method, rate := range rates {
			if method.Valid() && rate > 0 {
				e.rates[method] = rate
			}
		}
	}
}

// VolumetricFactor returns the configured kg per cubic metre factor.
func (e *ShippingEstimator) VolumetricFactor() float64 {
	return e.volumetricFactor
}

// Rate returns the per-kg rate for method.
func (e *ShippingEstimator) Rate(method model.ShippingMethod) (float64, error) {
	rate, ok := e.rates[method]
	if !ok || !method.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownShippingMethod, string(method))
	}
	return rate, nil
}

// VolumetricWeight converts a volume in cubic metres into a billable weight.
func (e *ShippingEstimator) VolumetricWeight(volumeM3 float64) float64 {
	return volumeM3 * e.volumetricFactor
}

// Estimate prices a shipment, billing the larger of actual and volumetric weight.
func (e *ShippingEstimator) Estimate(totalWeightKg, totalVolumeM3 float64, method model.ShippingMethod) (model.ShippingEstimate, error) {
	rate, err := e.Rate(method)
	if err != nil {
		return model.ShippingEstimate{}, err
	}

	volumetric := e.VolumetricWeight(totalVolumeM3)
	chargeable := math.Max(totalWeightKg, volumetric)

	return model.ShippingEstimate{
		Method:             method,
		ActualWeightKg:     totalWeightKg,
		VolumetricWeightKg: volumetric,
		ChargeableWeightKg: chargeable,
		RatePerKg:          rate,
		Cost:               chargeable * rate,
	}, nil
}

// Cost returns only the price of a shipment.
func (e *ShippingEstimator) Cost(totalWeightKg, totalVolumeM3 float64, method model.ShippingMethod) (float64, error) {
	estimate, err := e.Estimate(totalWeightKg, totalVolumeM3, method)
	if err != nil {
		return 0, err
	}
	return estimate.Cost, nil
}

// CalculateVolumetricWeight converts volumeM3 using the default factor of 200 kg/m³.
func CalculateVolumetricWeight(volumeM3 float64) float64 {
	return DefaultShippingEstimator.VolumetricWeight(volumeM3)
}

// CalculateShippingCost prices a shipment with the default rates.
// An unsupported method returns ErrUnknownShippingMethod.
func CalculateShippingCost(totalWeightKg, totalVolumeM3 float64, method model.ShippingMethod) (float64, error) {
	return DefaultShippingEstimator.Cost(totalWeightKg, totalVolumeM3, method)
}

func copyRates(src map[model.ShippingMethod]float64) map[model.ShippingMethod]float64 {
	dst := make(map[model.ShippingMethod]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
