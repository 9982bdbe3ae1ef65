package repository

import (
	"context"

	"github.com/guttosm/boxcalc-service/internal/domain/model"
)

// ProductRepositoryInterface defines the product store used by the catalog service.
// Lookups return (nil, nil) when no product matches.
type ProductRepositoryInterface interface {
	Upsert(ctx context.Context, p *model.BoxProduct) (*model.BoxProduct, error)
	GetByID(ctx context.Context, id string) (*model.BoxProduct, error)
	GetBySKU(ctx context.Context, sku string) (*model.BoxProduct, error)
	List(ctx context.Context, q model.ProductQuery) ([]model.BoxProduct, error)
	Count(ctx context.Context, q model.ProductQuery) (int64, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ ProductRepositoryInterface = (*ProductsRepository)(nil)
	_ ProductRepositoryInterface = (*ProductsRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface    = (*LogsRepository)(nil)
	_ LogsRepositoryInterface    = (*LogsRepositoryWithCircuitBreaker)(nil)
)
