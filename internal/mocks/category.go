package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/platebook/platebook-client/internal/types"
)

// MockCategoryService is a mock implementation of the category service
type MockCategoryService struct {
	mock.Mock
}

// List mocks the List method
func (m *MockCategoryService) List(ctx context.Context) ([]types.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Category), args.Error(1)
}

// Get mocks the Get method
func (m *MockCategoryService) Get(ctx context.Context, id string) (types.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(types.Category), args.Error(1)
}

// Create mocks the Create method
func (m *MockCategoryService) Create(ctx context.Context, name string) (types.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(types.Category), args.Error(1)
}
