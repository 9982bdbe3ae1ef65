//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/guttosm/boxcalc-service/internal/mocks"
	"github.com/guttosm/boxcalc-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewLoggingService(t *testing.T) {
	svc := NewLoggingService(mocks.NewMockLogsRepositoryInterface(t))

	assert.IsType(t, &LoggingServiceImpl{}, svc)
}

func TestLoggingService_CreateLog(t *testing.T) {
	existingID := primitive.NewObjectID()

	tests := []struct {
		name      string
		entry     *model.LogEntry
		setupMock func(*mocks.MockLogsRepositoryInterface)
		wantError bool
	}{
		{
			name:  "new entry gets an ID",
			entry: &model.LogEntry{Level: "info", Message: "Order calculated", ActionType: model.ActionOrderCalculated},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
					return !doc.ID.IsZero() && doc.ActionType == model.ActionOrderCalculated
				})).Return(nil).Once()
			},
		},
		{
			name:  "existing ID is kept",
			entry: &model.LogEntry{ID: existingID, Level: "info", Message: "Quote created"},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
					return doc.ID == existingID
				})).Return(nil).Once()
			},
		},
		{
			name:  "repository error",
			entry: &model.LogEntry{Level: "error", Message: "Import failed"},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockLogsRepositoryInterface(t)
			tt.setupMock(repo)
			svc := NewLoggingService(repo)

			err := svc.CreateLog(context.Background(), tt.entry)

			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.False(t, tt.entry.ID.IsZero())
			assert.False(t, tt.entry.Timestamp.IsZero())
		})
	}
}

func TestLoggingService_CreateLogs(t *testing.T) {
	t.Run("empty slice is a no-op", func(t *testing.T) {
		svc := NewLoggingService(mocks.NewMockLogsRepositoryInterface(t))

		assert.NoError(t, svc.CreateLogs(context.Background(), nil))
	})

	t.Run("bulk insert", func(t *testing.T) {
		repo := mocks.NewMockLogsRepositoryInterface(t)
		repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
			return len(docs) == 2 && docs[0].Message == "a" && docs[1].Message == "b"
		})).Return(nil).Once()
		svc := NewLoggingService(repo)

		err := svc.CreateLogs(context.Background(), []*model.LogEntry{{Message: "a"}, {Message: "b"}})

		assert.NoError(t, err)
	})

	t.Run("bulk insert error", func(t *testing.T) {
		repo := mocks.NewMockLogsRepositoryInterface(t)
		repo.On("CreateMany", mock.Anything, mock.Anything).Return(errors.New("bulk failed")).Once()
		svc := NewLoggingService(repo)

		err := svc.CreateLogs(context.Background(), []*model.LogEntry{{Message: "a"}})

		assert.EqualError(t, err, "bulk failed")
	})
}

func TestLoggingService_QueryLogs(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	opts := model.LogQueryOptions{RequestID: "req-1", ActionType: model.ActionQuoteCreated, StartTime: &start, Limit: 10}

	repo := mocks.NewMockLogsRepositoryInterface(t)
	repo.On("Query", mock.Anything, repository.LogQueryOptions{
		RequestID:  "req-1",
		ActionType: model.ActionQuoteCreated,
		StartTime:  &start,
		Limit:      10,
	}).Return([]*repository.LogEntryDocument{
		{Level: "info", Message: "Quote created", RequestID: "req-1", ActionType: model.ActionQuoteCreated, Fields: map[string]interface{}{"sku": "MUG-11-WHT"}},
	}, nil).Once()
	svc := NewLoggingService(repo)

	entries, err := svc.QueryLogs(context.Background(), opts)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1", entries[0].RequestID)
	assert.Equal(t, "MUG-11-WHT", entries[0].Fields["sku"])
}

func TestLoggingService_QueryLogs_Error(t *testing.T) {
	repo := mocks.NewMockLogsRepositoryInterface(t)
	repo.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("query failed")).Once()
	svc := NewLoggingService(repo)

	entries, err := svc.QueryLogs(context.Background(), model.LogQueryOptions{})

	assert.Nil(t, entries)
	assert.EqualError(t, err, "query failed")
}

func TestLoggingService_CountLogs(t *testing.T) {
	repo := mocks.NewMockLogsRepositoryInterface(t)
	repo.On("Count", mock.Anything, repository.LogQueryOptions{Level: "error"}).Return(int64(4), nil).Once()
	svc := NewLoggingService(repo)

	count, err := svc.CountLogs(context.Background(), model.LogQueryOptions{Level: "error"})

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestLogDocumentRoundTrip(t *testing.T) {
	entry := &model.LogEntry{
		Level:      "info",
		Message:    "Order calculated",
		RequestID:  "req-1",
		Method:     "POST",
		Path:       "/api/v1/orders/calculate",
		StatusCode: 200,
		Duration:   12,
		ActionType: model.ActionOrderCalculated,
	}

	doc := toLogDocument(entry)
	back := fromLogDocument(doc)

	assert.Equal(t, *entry, back)
}
