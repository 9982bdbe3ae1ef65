// Package app provides service initialization.
package app

import (
	"github.com/guttosm/boxcalc-service/config"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/guttosm/boxcalc-service/internal/repository"
	"github.com/guttosm/boxcalc-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Products *service.ProductServiceImpl
	Quotes   service.QuoteService
	Shipping *service.ShippingEstimator
}

// InitializeServices builds the catalog, shipping and quote services.
// dbComponents may be nil, in which case only inline products can be quoted.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	var repo repository.ProductRepositoryInterface
	if dbComponents != nil {
		repo = dbComponents.ProductsRepo
	}

	var opts []service.ProductOption
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithProductCache(cfg.Cache.Size, cfg.Cache.TTL))
	}
	products := service.NewProductService(repo, opts...)

	shipping := NewShippingEstimator(cfg.Shipping)

	return &ServiceComponents{
		Products: products,
		Quotes:   service.NewQuoteService(products, service.WithShippingEstimator(shipping)),
		Shipping: shipping,
	}
}

// NewShippingEstimator builds the estimator from configuration.
// Zero values keep the reference factor and rates.
func NewShippingEstimator(cfg config.ShippingConfig) *service.ShippingEstimator {
	return service.NewShippingEstimator(
		service.WithVolumetricFactor(cfg.VolumetricFactor),
		service.WithRates(map[model.ShippingMethod]float64{
			model.ShippingStandard: cfg.StandardRate,
			model.ShippingExpress:  cfg.ExpressRate,
			model.ShippingFreight:  cfg.FreightRate,
		}),
	)
}
