package service

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/adapter"
	"github.com/platebook/platebook-client/internal/apiclient"
	"github.com/platebook/platebook-client/internal/types"
)

// NotificationService handles the activity feed against /api/notifications.
type NotificationService struct {
	client *apiclient.Client
	logger *zap.Logger
}

// NewNotificationService creates a new NotificationService instance
func NewNotificationService(client *apiclient.Client, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{client: client, logger: logger}
}

// List fetches a user's notifications, newest first per the backend's
// ordering. A missing endpoint reads as empty.
func (s *NotificationService) List(ctx context.Context, userID string) ([]types.Notification, error) {
	query := url.Values{}
	if userID != "" {
		query.Set("user_id", userID)
	}

	payload, err := s.client.Get(ctx, "/api/notifications", query)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return adapter.Notifications(payload), nil
}

// MarkRead flips the read flag on one notification. The only mutation the
// client ever performs on this collection.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if _, err := s.client.Put(ctx, "/api/notifications/"+id, map[string]any{"read": true}); err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", id, err)
	}
	return nil
}
