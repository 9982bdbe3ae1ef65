// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/boxcalc-service/internal/domain/model"
	"github.com/guttosm/boxcalc-service/internal/service/cache"
	"github.com/stretchr/testify/mock"
)

type MockCache struct {
	mock.Mock
}

func NewMockCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCache {
	m := &MockCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCache) Get(key string) (model.BoxProduct, bool) {
	args := m.Called(key)
	return args.Get(0).(model.BoxProduct), args.Bool(1)
}

func (m *MockCache) Set(key string, value model.BoxProduct) {
	m.Called(key, value)
}

func (m *MockCache) Invalidate(key string) {
	m.Called(key)
}

func (m *MockCache) Clear() {
	m.Called()
}

func (m *MockCache) Stop() {
	m.Called()
}

func (m *MockCache) Metrics() cache.Metrics {
	args := m.Called()
	return args.Get(0).(cache.Metrics)
}
