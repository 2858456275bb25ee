package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/platebook/platebook-client/internal/service"
	"github.com/platebook/platebook-client/internal/types"
)

// MockLikeService is a mock implementation of the like service
type MockLikeService struct {
	mock.Mock
}

// List mocks the List method
func (m *MockLikeService) List(ctx context.Context, filter service.LikeFilter) ([]types.Like, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Like), args.Error(1)
}

// Counts mocks the Counts method
func (m *MockLikeService) Counts(ctx context.Context, recipeID string) (types.LikeCounts, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(types.LikeCounts), args.Error(1)
}

// Toggle mocks the Toggle method
func (m *MockLikeService) Toggle(ctx context.Context, recipeID, userID string, polarity types.LikeType) (*types.Like, error) {
	args := m.Called(ctx, recipeID, userID, polarity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Like), args.Error(1)
}
