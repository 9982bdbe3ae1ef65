//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/boxcalc-service/internal/circuitbreaker"
	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	require.NoError(t, db.SetLogsTTL(ctx, 30))

	repo := NewLogsRepository(db)

	t.Run("create log entry", func(t *testing.T) {
		entry := &LogEntryDocument{
			Level:      "info",
			Message:    "Order calculated",
			RequestID:  "req-calc",
			Method:     "POST",
			Path:       "/api/orders/calculate",
			StatusCode: 200,
			Duration:   3,
			ActionType: model.ActionOrderCalculated,
			Fields:     map[string]interface{}{"sku": "MUG-11-WHT", "quantity": 25},
		}

		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.Timestamp.IsZero())
	})

	t.Run("create many log entries", func(t *testing.T) {
		entries := []*LogEntryDocument{
			{Level: "info", Message: "Product prepared", RequestID: "req-1", ActionType: model.ActionProductPrepared},
			{Level: "warn", Message: "Product prepared", RequestID: "req-2", ActionType: model.ActionProductPrepared},
			{Level: "error", Message: "Quote failed", RequestID: "req-3"},
		}

		require.NoError(t, repo.CreateMany(ctx, entries))
		assert.NoError(t, repo.CreateMany(ctx, nil))
	})

	t.Run("query by request ID", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{RequestID: "req-calc"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, model.ActionOrderCalculated, entries[0].ActionType)
		assert.Equal(t, "MUG-11-WHT", entries[0].Fields["sku"])
	})

	t.Run("query by action type", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{ActionType: model.ActionProductPrepared, Limit: 1})
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("query by time window", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		entries, err := repo.Query(ctx, LogQueryOptions{StartTime: &future})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("count logs", func(t *testing.T) {
		count, err := repo.Count(ctx, LogQueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		count, err = repo.Count(ctx, LogQueryOptions{ActionType: model.ActionProductPrepared})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestLogsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(NewLogsRepository(db), cb)

	require.NoError(t, wrappedRepo.Create(ctx, &LogEntryDocument{Level: "info", Message: "Quote created", RequestID: "q-1"}))

	entries, err := wrappedRepo.Query(ctx, LogQueryOptions{RequestID: "q-1"})
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
}
