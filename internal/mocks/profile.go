package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/platebook/platebook-client/internal/types"
)

// MockProfileService is a mock implementation of the profile service
type MockProfileService struct {
	mock.Mock
}

// Get mocks the Get method
func (m *MockProfileService) Get(ctx context.Context, userID string) (types.UserProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(types.UserProfile), args.Error(1)
}

// UploadAvatar mocks the UploadAvatar method
func (m *MockProfileService) UploadAvatar(ctx context.Context, userID, filename string, data []byte) (string, error) {
	args := m.Called(ctx, userID, filename, data)
	return args.String(0), args.Error(1)
}
