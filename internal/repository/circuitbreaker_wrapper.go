package repository

import (
	"context"
	"errors"

	"github.com/guttosm/boxcalc-service/internal/circuitbreaker"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
)

// ProductsRepositoryWithCircuitBreaker wraps a product store with circuit breaker protection.
// An open circuit surfaces as circuitbreaker.ErrCircuitOpen so callers can answer 503.
type ProductsRepositoryWithCircuitBreaker struct {
	repo           ProductRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewProductsRepositoryWithCircuitBreaker(repo ProductRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ProductsRepositoryWithCircuitBreaker {
	return &ProductsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Upsert stores p with circuit breaker protection.
// ErrMissingSKU is a caller error and does not count against the breaker.
func (r *ProductsRepositoryWithCircuitBreaker) Upsert(ctx context.Context, p *model.BoxProduct) (*model.BoxProduct, error) {
	if p.SKU == "" {
		return nil, ErrMissingSKU
	}
	var result *model.BoxProduct
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Upsert(ctx, p)
		return cbErr
	})
	return result, err
}

// GetByID looks up a product with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*model.BoxProduct, error) {
	var result *model.BoxProduct
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// GetBySKU looks up a product with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) GetBySKU(ctx context.Context, sku string) (*model.BoxProduct, error) {
	var result *model.BoxProduct
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetBySKU(ctx, sku)
		return cbErr
	})
	return result, err
}

// List returns products with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) List(ctx context.Context, q model.ProductQuery) ([]model.BoxProduct, error) {
	var result []model.BoxProduct
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, q)
		return cbErr
	})
	return result, err
}

// Count counts products with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) Count(ctx context.Context, q model.ProductQuery) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, q)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a log store with circuit breaker protection.
// Writes are dropped silently while the circuit is open; audit logging must never fail a request.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
