// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockProductService struct {
	mock.Mock
}

func NewMockProductService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductService {
	m := &MockProductService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProductService) Prepare(ctx context.Context, raw model.BoxProduct) (*model.BoxProduct, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BoxProduct), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id string) (*model.BoxProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BoxProduct), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, q model.ProductQuery) (*model.ProductPage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductPage), args.Error(1)
}

func (m *MockProductService) ImportBatch(ctx context.Context, raws []model.BoxProduct) (*model.ImportSummary, error) {
	args := m.Called(ctx, raws)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ImportSummary), args.Error(1)
}
