//go:build !integration

package app

import (
	"context"
	"testing"

	"github.com/guttosm/boxcalc-service/config"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/guttosm/boxcalc-service/internal/mocks"
	"github.com/guttosm/boxcalc-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewShippingEstimator(t *testing.T) {
	tests := []struct {
		name           string
		cfg            config.ShippingConfig
		method         model.ShippingMethod
		expectedFactor float64
		expectedRate   float64
	}{
		{
			name:           "reference values",
			cfg:            config.ShippingConfig{VolumetricFactor: 200, StandardRate: 5, ExpressRate: 8.5, FreightRate: 3.2},
			method:         model.ShippingExpress,
			expectedFactor: 200,
			expectedRate:   8.5,
		},
		{
			name:           "overridden values",
			cfg:            config.ShippingConfig{VolumetricFactor: 250, StandardRate: 6, ExpressRate: 9, FreightRate: 4},
			method:         model.ShippingFreight,
			expectedFactor: 250,
			expectedRate:   4,
		},
		{
			name:           "zero values fall back to defaults",
			cfg:            config.ShippingConfig{},
			method:         model.ShippingStandard,
			expectedFactor: service.DefaultVolumetricFactor,
			expectedRate:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimator := NewShippingEstimator(tt.cfg)

			assert.Equal(t, tt.expectedFactor, estimator.VolumetricFactor())
			rate, err := estimator.Rate(tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedRate, rate)
		})
	}
}

func TestInitializeServices(t *testing.T) {
	t.Run("without database", func(t *testing.T) {
		components := InitializeServices(testConfig(), nil)
		t.Cleanup(components.Products.Close)

		require.NotNil(t, components.Quotes)
		_, err := components.Products.Get(context.Background(), "prod-1")
		assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)

		_, cached := components.Products.CacheMetrics()
		assert.True(t, cached)
	})

	t.Run("cache disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Cache.Size = 0

		components := InitializeServices(cfg, nil)

		_, cached := components.Products.CacheMetrics()
		assert.False(t, cached)
	})

	t.Run("quotes use the configured estimator", func(t *testing.T) {
		cfg := testConfig()
		cfg.Shipping.StandardRate = 10

		components := InitializeServices(cfg, nil)
		t.Cleanup(components.Products.Close)

		estimate, err := components.Shipping.Estimate(10, 0, model.ShippingStandard)
		require.NoError(t, err)
		assert.Equal(t, 100.0, estimate.Cost)

		quote, err := components.Quotes.Quote(context.Background(), model.QuoteInput{
			Product: &model.BoxProduct{
				SKU: "MUG-11-WHT",
				BoxInfo: model.BoxInfo{
					WeightKg:     20,
					PiecesPerBox: 10,
					Dimensions:   model.Dimensions{LengthCm: 40, WidthCm: 30, HeightCm: 20},
				},
			},
			Quantity: 10,
			Method:   model.ShippingStandard,
		})
		require.NoError(t, err)
		assert.Equal(t, 200.0, quote.Shipping.Cost)
	})

	t.Run("with database", func(t *testing.T) {
		repo := mocks.NewMockProductRepositoryInterface(t)
		repo.On("GetByID", mock.Anything, "prod-1").Return(nil, service.ErrProductNotFound).Once()

		components := InitializeServices(testConfig(), &DatabaseComponents{ProductsRepo: repo})
		t.Cleanup(components.Products.Close)

		_, err := components.Products.Get(context.Background(), "prod-1")
		assert.ErrorIs(t, err, service.ErrProductNotFound)
	})
}
