// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockQuoteService struct {
	mock.Mock
}

func NewMockQuoteService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuoteService {
	m := &MockQuoteService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockQuoteService) CalculateOrder(ctx context.Context, in model.QuoteInput) (*model.OrderSummary, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderSummary), args.Error(1)
}

func (m *MockQuoteService) Quote(ctx context.Context, in model.QuoteInput) (*model.Quote, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quote), args.Error(1)
}
