//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/boxcalc-service/internal/circuitbreaker"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMongoDown = errors.New("server selection timeout")

// stubProducts fails every call while err is set.
type stubProducts struct {
	err   error
	calls int
}

func (s *stubProducts) Upsert(_ context.Context, p *model.BoxProduct) (*model.BoxProduct, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	stored := *p
	stored.ID = "stored-" + p.SKU
	return &stored, nil
}

func (s *stubProducts) GetByID(_ context.Context, id string) (*model.BoxProduct, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &model.BoxProduct{ID: id}, nil
}

func (s *stubProducts) GetBySKU(_ context.Context, sku string) (*model.BoxProduct, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &model.BoxProduct{SKU: sku}, nil
}

func (s *stubProducts) List(_ context.Context, _ model.ProductQuery) ([]model.BoxProduct, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []model.BoxProduct{{SKU: "A"}, {SKU: "B"}}, nil
}

func (s *stubProducts) Count(_ context.Context, _ model.ProductQuery) (int64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return 2, nil
}

type stubLogs struct {
	err     error
	created int
}

func (s *stubLogs) Create(_ context.Context, _ *LogEntryDocument) error {
	if s.err != nil {
		return s.err
	}
	s.created++
	return nil
}

func (s *stubLogs) CreateMany(_ context.Context, entries []*LogEntryDocument) error {
	if s.err != nil {
		return s.err
	}
	s.created += len(entries)
	return nil
}

func (s *stubLogs) Query(_ context.Context, _ LogQueryOptions) ([]*LogEntryDocument, error) {
	return nil, s.err
}

func (s *stubLogs) Count(_ context.Context, _ LogQueryOptions) (int64, error) {
	return int64(s.created), s.err
}

func testBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
		Name:             "test",
	})
}

func TestProductsRepositoryWithCircuitBreaker_PassesThrough(t *testing.T) {
	ctx := context.Background()
	wrapped := NewProductsRepositoryWithCircuitBreaker(&stubProducts{}, testBreaker())

	stored, err := wrapped.Upsert(ctx, &model.BoxProduct{SKU: "MUG-11"})
	require.NoError(t, err)
	assert.Equal(t, "stored-MUG-11", stored.ID)

	byID, err := wrapped.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", byID.ID)

	bySKU, err := wrapped.GetBySKU(ctx, "MUG-11")
	require.NoError(t, err)
	assert.Equal(t, "MUG-11", bySKU.SKU)

	list, err := wrapped.List(ctx, model.ProductQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	count, err := wrapped.Count(ctx, model.ProductQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestProductsRepositoryWithCircuitBreaker_OpensOnFailures(t *testing.T) {
	ctx := context.Background()
	stub := &stubProducts{err: errMongoDown}
	cb := testBreaker()
	wrapped := NewProductsRepositoryWithCircuitBreaker(stub, cb)

	_, err := wrapped.GetByID(ctx, "p1")
	assert.ErrorIs(t, err, errMongoDown)
	_, err = wrapped.List(ctx, model.ProductQuery{})
	assert.ErrorIs(t, err, errMongoDown)

	require.True(t, cb.IsOpen())

	_, err = wrapped.GetBySKU(ctx, "MUG-11")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, 2, stub.calls)
	assert.Same(t, cb, wrapped.GetCircuitBreaker())
}

func TestProductsRepositoryWithCircuitBreaker_MissingSKUDoesNotTrip(t *testing.T) {
	stub := &stubProducts{}
	cb := testBreaker()
	wrapped := NewProductsRepositoryWithCircuitBreaker(stub, cb)

	for i := 0; i < 3; i++ {
		_, err := wrapped.Upsert(context.Background(), &model.BoxProduct{})
		assert.ErrorIs(t, err, ErrMissingSKU)
	}

	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
	assert.Zero(t, stub.calls)
}

func TestLogsRepositoryWithCircuitBreaker_DropsWritesWhenOpen(t *testing.T) {
	ctx := context.Background()
	stub := &stubLogs{err: errMongoDown}
	cb := testBreaker()
	wrapped := NewLogsRepositoryWithCircuitBreaker(stub, cb)

	assert.ErrorIs(t, wrapped.Create(ctx, &LogEntryDocument{}), errMongoDown)
	assert.ErrorIs(t, wrapped.CreateMany(ctx, []*LogEntryDocument{{}}), errMongoDown)
	require.True(t, cb.IsOpen())

	assert.NoError(t, wrapped.Create(ctx, &LogEntryDocument{}))
	assert.NoError(t, wrapped.CreateMany(ctx, []*LogEntryDocument{{}, {}}))

	_, err := wrapped.Query(ctx, LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	_, err = wrapped.Count(ctx, LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Same(t, cb, wrapped.GetCircuitBreaker())
}

func TestLogsRepositoryWithCircuitBreaker_PassesThrough(t *testing.T) {
	ctx := context.Background()
	stub := &stubLogs{}
	wrapped := NewLogsRepositoryWithCircuitBreaker(stub, testBreaker())

	require.NoError(t, wrapped.Create(ctx, &LogEntryDocument{Message: "order_calculated"}))
	require.NoError(t, wrapped.CreateMany(ctx, []*LogEntryDocument{{}, {}}))

	count, err := wrapped.Count(ctx, LogQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
