package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/platebook/platebook-client/internal/service"
	"github.com/platebook/platebook-client/internal/types"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// List mocks the List method
func (m *MockRecipeService) List(ctx context.Context, filter service.RecipeFilter) ([]types.Recipe, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Recipe), args.Error(1)
}

// Get mocks the Get method
func (m *MockRecipeService) Get(ctx context.Context, id string) (types.Recipe, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(types.Recipe), args.Error(1)
}

// Create mocks the Create method
func (m *MockRecipeService) Create(ctx context.Context, input service.CreateRecipeInput) (types.Recipe, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(types.Recipe), args.Error(1)
}

// UploadImage mocks the UploadImage method
func (m *MockRecipeService) UploadImage(ctx context.Context, recipeID, filename string, data []byte) (string, error) {
	args := m.Called(ctx, recipeID, filename, data)
	return args.String(0), args.Error(1)
}
