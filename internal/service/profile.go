package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/platebook/platebook-client/internal/adapter"
	"github.com/platebook/platebook-client/internal/apiclient"
	"github.com/platebook/platebook-client/internal/normalize"
	"github.com/platebook/platebook-client/internal/types"
)

// ProfileService handles user records against /api/users. Name, bio and
// gender edits stay on the device; only the avatar upload persists.
type ProfileService struct {
	client *apiclient.Client
	logger *zap.Logger
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(client *apiclient.Client, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{client: client, logger: logger}
}

// Get fetches one user by id.
func (s *ProfileService) Get(ctx context.Context, userID string) (types.UserProfile, error) {
	payload, err := s.client.Get(ctx, "/api/users/"+userID, nil)
	if err != nil {
		return types.UserProfile{}, fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	return adapter.User(normalize.UnwrapObject(payload, "user"), s.client.BaseURL()), nil
}

// UploadAvatar sends a new profile picture as multipart form data and
// returns the normalized URL the backend stored it under.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID, filename string, data []byte) (string, error) {
	payload, err := s.client.Upload(ctx, "/api/users/"+userID+"/image", "image", filename, data)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	record := normalize.UnwrapObject(payload, "user")
	raw := normalize.String(record, "", "userProfilePicture", "profileImage", "avatar", "image")
	return normalize.ImageURL(raw, s.client.BaseURL()), nil
}
