package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/guttosm/boxcalc-service/internal/logger"
	"github.com/guttosm/boxcalc-service/internal/metrics"
	"github.com/guttosm/boxcalc-service/internal/repository"
	"github.com/guttosm/boxcalc-service/internal/service/cache"
	"go.uber.org/multierr"
)

// MaxImportBatch is the largest number of records ImportBatch accepts at once.
const MaxImportBatch = 1000

var (
	// ErrRepositoryNotConfigured is returned by operations that need storage when
	// the service runs without a database.
	ErrRepositoryNotConfigured = errors.New("product repository not configured")
	// ErrProductNotFound is returned when no stored product matches.
	ErrProductNotFound = errors.New("product not found")
	// ErrEmptyBatch is returned by ImportBatch for an empty input.
	ErrEmptyBatch = errors.New("import batch is empty")
	// ErrBatchTooLarge is returned by ImportBatch above MaxImportBatch records.
	ErrBatchTooLarge = fmt.Errorf("import batch exceeds %d records", MaxImportBatch)
)

// ProductService manages the product catalog.
type ProductService interface {
	// Prepare recomputes the derived fields of raw and stores the result when a
	// repository is configured. Invalid products are stored flagged for review.
	Prepare(ctx context.Context, raw model.BoxProduct) (*model.BoxProduct, error)

	// Get returns the stored product with id.
	Get(ctx context.Context, id string) (*model.BoxProduct, error)

	// List returns one page of stored products.
	List(ctx context.Context, q model.ProductQuery) (*model.ProductPage, error)

	// ImportBatch prepares and stores every record. A record that cannot be
	// stored is counted as failed without aborting the rest of the batch.
	ImportBatch(ctx context.Context, raws []model.BoxProduct) (*model.ImportSummary, error)
}

// ProductOption configures a ProductServiceImpl.
type ProductOption func(*ProductServiceImpl)

// ProductServiceImpl implements ProductService on top of a ProductRepositoryInterface.
type ProductServiceImpl struct {
	repo  repository.ProductRepositoryInterface
	cache cache.CacheWithMetrics
	now   func() time.Time
}

// NewProductService creates a product service. repo may be nil, in which case
// Prepare only computes and the storage operations return ErrRepositoryNotConfigured.
func NewProductService(repo repository.ProductRepositoryInterface, opts ...ProductOption) *ProductServiceImpl {
	s := &ProductServiceImpl{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithProductCache caches product lookups by ID.
func WithProductCache(capacity int, ttl time.Duration) ProductOption {
	return func(s *ProductServiceImpl) {
		if capacity > 0 && ttl > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithProductCacheInterface injects a custom cache implementation.
func WithProductCacheInterface(c cache.CacheWithMetrics) ProductOption {
	return func(s *ProductServiceImpl) {
		s.cache = c
	}
}

// WithClock overrides the time source used to stamp UpdatedAt.
func WithClock(now func() time.Time) ProductOption {
	return func(s *ProductServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// Close stops the cache sweeper.
func (s *ProductServiceImpl) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// CacheMetrics reports cache counters, or false when caching is disabled.
func (s *ProductServiceImpl) CacheMetrics() (cache.Metrics, bool) {
	if s.cache == nil {
		return cache.Metrics{}, false
	}
	return s.cache.Metrics(), true
}

// Prepare implements ProductService.
func (s *ProductServiceImpl) Prepare(ctx context.Context, raw model.BoxProduct) (*model.BoxProduct, error) {
	prepared := PrepareProductForDBAt(raw, s.now())
	metrics.RecordProductPrepared(prepared.IsValid)

	if s.repo == nil {
		return &prepared, nil
	}

	stored, err := s.repo.Upsert(ctx, &prepared)
	if err != nil {
		return nil, err
	}
	s.invalidate(stored.ID)

	if stored.RequiresManualReview {
		log := logger.FromContext(ctx)
		log.Warn().
			Str("sku", stored.SKU).
			Strs("validation_errors", stored.ValidationErrors).
			Msg("Product stored for manual review")
	}
	return stored, nil
}

// Get implements ProductService.
func (s *ProductServiceImpl) Get(ctx context.Context, id string) (*model.BoxProduct, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	if s.cache != nil {
		if p, ok := s.cache.Get(id); ok {
			return &p, nil
		}
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}

	if s.cache != nil {
		s.cache.Set(id, *p)
	}
	return p, nil
}

// List implements ProductService.
func (s *ProductServiceImpl) List(ctx context.Context, q model.ProductQuery) (*model.ProductPage, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	items, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, q)
	if err != nil {
		return nil, err
	}

	return &model.ProductPage{
		Items: items,
		Total: total,
		Limit: repository.ClampLimit(q.Limit),
		Skip:  q.Skip,
	}, nil
}

// ImportBatch implements ProductService.
func (s *ProductServiceImpl) ImportBatch(ctx context.Context, raws []model.BoxProduct) (*model.ImportSummary, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if len(raws) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(raws) > MaxImportBatch {
		return nil, ErrBatchTooLarge
	}

	summary := &model.ImportSummary{
		Total:    len(raws),
		Products: make([]model.BoxProduct, 0, len(raws)),
	}
	var errs error
	now := s.now()

	for i, raw := range raws {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if raw.SKU == "" {
			summary.Failed++
			errs = multierr.Append(errs, fmt.Errorf("record %d: %w", i, repository.ErrMissingSKU))
			continue
		}

		prepared := PrepareProductForDBAt(raw, now)
		metrics.RecordProductPrepared(prepared.IsValid)

		stored, err := s.repo.Upsert(ctx, &prepared)
		if err != nil {
			summary.Failed++
			errs = multierr.Append(errs, fmt.Errorf("record %d (%s): %w", i, raw.SKU, err))
			continue
		}
		s.invalidate(stored.ID)

		if stored.IsValid {
			summary.Valid++
		} else {
			summary.NeedsReview++
		}
		summary.Products = append(summary.Products, *stored)
	}

	for _, err := range multierr.Errors(errs) {
		summary.Errors = append(summary.Errors, err.Error())
	}

	log := logger.FromContext(ctx)
	event := log.Info()
	if errs != nil {
		event = log.Warn().Err(errs)
	}
	event.
		Int("total", summary.Total).
		Int("valid", summary.Valid).
		Int("needs_review", summary.NeedsReview).
		Int("failed", summary.Failed).
		Msg("Product import finished")

	return summary, nil
}

func (s *ProductServiceImpl) invalidate(id string) {
	if s.cache != nil && id != "" {
		s.cache.Invalidate(id)
	}
}
