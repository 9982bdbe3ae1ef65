// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockProductRepositoryInterface struct {
	mock.Mock
}

func NewMockProductRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepositoryInterface {
	m := &MockProductRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProductRepositoryInterface) Upsert(ctx context.Context, p *model.BoxProduct) (*model.BoxProduct, error) {
	args := m.Called(ctx, p)
	if fn, ok := args.Get(0).(func(context.Context, *model.BoxProduct) (*model.BoxProduct, error)); ok {
		return fn(ctx, p)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BoxProduct), args.Error(1)
}

func (m *MockProductRepositoryInterface) GetByID(ctx context.Context, id string) (*model.BoxProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BoxProduct), args.Error(1)
}

func (m *MockProductRepositoryInterface) GetBySKU(ctx context.Context, sku string) (*model.BoxProduct, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BoxProduct), args.Error(1)
}

func (m *MockProductRepositoryInterface) List(ctx context.Context, q model.ProductQuery) ([]model.BoxProduct, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BoxProduct), args.Error(1)
}

func (m *MockProductRepositoryInterface) Count(ctx context.Context, q model.ProductQuery) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}
