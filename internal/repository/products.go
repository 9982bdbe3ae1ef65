package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultListLimit caps product listings when the caller gives no limit.
const DefaultListLimit = 50

// MaxListLimit is the largest page a listing returns.
const MaxListLimit = 500

// ErrMissingSKU is returned when upserting a product without a SKU.
var ErrMissingSKU = errors.New("product sku is required")

// ProductsRepository stores catalog products keyed by SKU.
type ProductsRepository struct {
	collection *mongo.Collection
}

// NewProductsRepository creates a new products repository.
func NewProductsRepository(db *MongoDB) *ProductsRepository {
	return &ProductsRepository{
		collection: db.Products,
	}
}

// Upsert inserts or replaces the product with p.SKU and returns the stored document.
// The _id and created_at of an existing record are preserved.
// Derived fields that are absent on p are removed from the stored record.
func (r *ProductsRepository) Upsert(ctx context.Context, p *model.BoxProduct) (*model.BoxProduct, error) {
	if p.SKU == "" {
		return nil, ErrMissingSKU
	}

	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	set := bson.M{
		"name":                   p.Name,
		"box_info":               p.BoxInfo,
		"is_valid":               p.IsValid,
		"requires_manual_review": p.RequiresManualReview,
		"supplier_id":            p.SupplierID,
		"updated_at":             updatedAt,
	}
	unset := bson.M{}

	if p.UnitWeightKg != nil {
		set["unit_weight_kg"] = *p.UnitWeightKg
	} else {
		unset["unit_weight_kg"] = ""
	}
	if len(p.ValidationErrors) > 0 {
		set["validation_errors"] = p.ValidationErrors
	} else {
		unset["validation_errors"] = ""
	}
	if p.TechnicalInfo != nil {
		set["technical_info"] = p.TechnicalInfo
	} else {
		unset["technical_info"] = ""
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":        id,
			"created_at": createdAt,
		},
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored model.BoxProduct
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"sku": p.SKU}, update, opts).Decode(&stored)
	if err != nil {
		return nil, fmt.Errorf("upsert product %q: %w", p.SKU, err)
	}
	return &stored, nil
}

// GetByID returns the product with id, or nil when none exists.
func (r *ProductsRepository) GetByID(ctx context.Context, id string) (*model.BoxProduct, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetBySKU returns the product with sku, or nil when none exists.
func (r *ProductsRepository) GetBySKU(ctx context.Context, sku string) (*model.BoxProduct, error) {
	return r.findOne(ctx, bson.M{"sku": sku})
}

func (r *ProductsRepository) findOne(ctx context.Context, filter bson.M) (*model.BoxProduct, error) {
	var product model.BoxProduct
	err := r.collection.FindOne(ctx, filter).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns products matching q, most recently updated first.
func (r *ProductsRepository) List(ctx context.Context, q model.ProductQuery) ([]model.BoxProduct, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}, {Key: "sku", Value: 1}}).
		SetLimit(int64(ClampLimit(q.Limit)))
	if q.Skip > 0 {
		findOptions.SetSkip(int64(q.Skip))
	}

	cursor, err := r.collection.Find(ctx, productFilter(q), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	products := make([]model.BoxProduct, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Count returns the number of products matching q, ignoring paging.
func (r *ProductsRepository) Count(ctx context.Context, q model.ProductQuery) (int64, error) {
	return r.collection.CountDocuments(ctx, productFilter(q))
}

func productFilter(q model.ProductQuery) bson.M {
	filter := bson.M{}
	if q.RequiresReview != nil {
		filter["requires_manual_review"] = *q.RequiresReview
	}
	if q.SupplierID != "" {
		filter["supplier_id"] = q.SupplierID
	}
	return filter
}

// ClampLimit returns the page size List applies for limit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
