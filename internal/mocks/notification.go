package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/platebook/platebook-client/internal/types"
)

// MockNotificationService is a mock implementation of the notification service
type MockNotificationService struct {
	mock.Mock
}

// List mocks the List method
func (m *MockNotificationService) List(ctx context.Context, userID string) ([]types.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Notification), args.Error(1)
}

// MarkRead mocks the MarkRead method
func (m *MockNotificationService) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
