package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/guttosm/boxcalc-service/internal/metrics"
	"github.com/shopspring/decimal"
)

var (
	// ErrProductRequired is returned when a quote names neither a product ID nor an inline product.
	ErrProductRequired = errors.New("product id or product data is required")
	// ErrProductNeedsReview is matched by every *ProductReviewError.
	ErrProductNeedsReview = errors.New("product requires manual review")
)

// ProductReviewError reports a product whose packaging data cannot be used for orders.
type ProductReviewError struct {
	SKU    string
	Errors []string
}

func (e *ProductReviewError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("product %q requires manual review", e.SKU)
	}
	return fmt.Sprintf("product %q requires manual review: %s", e.SKU, strings.Join(e.Errors, "; "))
}

// Is makes errors.Is(err, ErrProductNeedsReview) hold.
func (e *ProductReviewError) Is(target error) bool {
	return target == ErrProductNeedsReview
}

// QuoteService turns a product and a quantity into order figures and prices.
type QuoteService interface {
	// CalculateOrder returns the box and weight figures for an order line.
	CalculateOrder(ctx context.Context, in model.QuoteInput) (*model.OrderSummary, error)

	// Quote adds the shipping estimate and pricing to CalculateOrder.
	Quote(ctx context.Context, in model.QuoteInput) (*model.Quote, error)
}

// QuoteOption configures a QuoteServiceImpl.
type QuoteOption func(*QuoteServiceImpl)

// QuoteServiceImpl implements QuoteService.
type QuoteServiceImpl struct {
	products  ProductService
	estimator *ShippingEstimator
}

// NewQuoteService creates a quote service. products resolves stored product IDs
// and may be nil when only inline products are quoted.
func NewQuoteService(products ProductService, opts ...QuoteOption) *QuoteServiceImpl {
	s := &QuoteServiceImpl{
		products:  products,
		estimator: DefaultShippingEstimator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithShippingEstimator overrides the estimator used to price shipping.
func WithShippingEstimator(e *ShippingEstimator) QuoteOption {
	return func(s *QuoteServiceImpl) {
		if e != nil {
			s.estimator = e
		}
	}
}

// CalculateOrder implements QuoteService.
func (s *QuoteServiceImpl) CalculateOrder(ctx context.Context, in model.QuoteInput) (*model.OrderSummary, error) {
	summary, _, err := s.calculate(ctx, in)
	return summary, err
}

// Quote implements QuoteService.
func (s *QuoteServiceImpl) Quote(ctx context.Context, in model.QuoteInput) (*model.Quote, error) {
	if !in.Method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShippingMethod, in.Method)
	}

	summary, product, err := s.calculate(ctx, in)
	if err != nil {
		return nil, err
	}

	estimate, err := s.estimator.Estimate(summary.Order.TotalWeightKg, summary.Order.VolumeM3, in.Method)
	if err != nil {
		return nil, err
	}
	metrics.RecordShippingEstimate(string(in.Method))

	return &model.Quote{
		OrderSummary: *summary,
		Shipping:     estimate,
		Pricing:      priceQuote(*product, in.Quantity, estimate.Cost),
	}, nil
}

func (s *QuoteServiceImpl) calculate(ctx context.Context, in model.QuoteInput) (*model.OrderSummary, *model.BoxProduct, error) {
	start := time.Now()
	summary, product, err := s.calculateOrder(ctx, in)
	metrics.RecordBoxCalculation(time.Since(start), calculationStatus(err))
	return summary, product, err
}

func (s *QuoteServiceImpl) calculateOrder(ctx context.Context, in model.QuoteInput) (*model.OrderSummary, *model.BoxProduct, error) {
	if in.Quantity <= 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, in.Quantity)
	}

	product, err := s.resolve(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	if err := checkQuotable(*product, in.Product != nil); err != nil {
		return nil, nil, err
	}

	order, err := CalculateOrderInfo(*product, in.Quantity)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, &ProductReviewError{SKU: product.SKU, Errors: ValidateProduct(*product).Errors}
	}

	return &model.OrderSummary{
		ProductID: product.ID,
		SKU:       product.SKU,
		Quantity:  in.Quantity,
		Order:     *order,
		Breakdown: GetBoxBreakdown(in.Quantity, product.BoxInfo.PiecesPerBox),
	}, product, nil
}

func (s *QuoteServiceImpl) resolve(ctx context.Context, in model.QuoteInput) (*model.BoxProduct, error) {
	if in.Product != nil {
		return in.Product, nil
	}
	if in.ProductID == "" {
		return nil, ErrProductRequired
	}
	if s.products == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.products.Get(ctx, in.ProductID)
}

// checkQuotable rejects products with broken packaging data. A stored product
// flagged for review stays blocked until it is prepared again.
func checkQuotable(p model.BoxProduct, inline bool) error {
	result := ValidateProduct(p)
	if !result.IsValid {
		return &ProductReviewError{SKU: p.SKU, Errors: result.Errors}
	}
	if !inline && p.RequiresManualReview {
		return &ProductReviewError{SKU: p.SKU, Errors: p.ValidationErrors}
	}
	return nil
}

func calculationStatus(err error) string {
	switch {
	case err == nil:
		return metrics.StatusSuccess
	case errors.Is(err, ErrInvalidQuantity):
		return metrics.StatusInvalidQuantity
	case errors.Is(err, ErrProductNeedsReview):
		return metrics.StatusNeedsReview
	default:
		return metrics.StatusError
	}
}

// priceQuote derives money amounts from the box price. Amounts are rounded to
// cents only at the end so the unit price keeps full precision.
func priceQuote(p model.BoxProduct, quantity int, shippingCost float64) model.QuotePricing {
	shipping := decimal.NewFromFloat(shippingCost).Round(2)
	pricing := model.QuotePricing{
		Shipping: shipping,
		Total:    shipping,
	}

	if p.BoxInfo.PricePerBox == nil || *p.BoxInfo.PricePerBox <= 0 {
		return pricing
	}

	unit := decimal.NewFromFloat(*p.BoxInfo.PricePerBox).
		Div(decimal.NewFromInt(int64(p.BoxInfo.PiecesPerBox)))
	merchandise := unit.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	unitRounded := unit.Round(2)

	pricing.UnitPrice = &unitRounded
	pricing.Merchandise = &merchandise
	pricing.Total = merchandise.Add(shipping)
	return pricing
}
